package notify

import (
	"context"

	"github.com/TheSnakeWitcher/vesting-manager/logging"
)

type LogNotifier struct{}

func (LogNotifier) Name() string { return "log" }

func (LogNotifier) Notify(_ context.Context, event Event) error {
	logging.Info("vesting period "+string(event.Kind), logging.Notifications,
		"period_id", event.PeriodId,
		"tx", event.TxHash,
		"chain_id", event.ChainId,
		"height", event.Height,
		"delivery_id", event.DeliveryId,
	)
	return nil
}
