package notify

import (
	"context"
	"time"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// Event is a committed lifecycle change of a vesting period.
type Event struct {
	Kind       types.EventKind `json:"kind"`
	PeriodId   uint64          `json:"periodId"`
	TxHash     string          `json:"tx"`
	ChainId    string          `json:"chainId"`
	Height     int64           `json:"height"`
	Time       time.Time       `json:"time"`
	DeliveryId string          `json:"deliveryId"`
}

// Notifier is one sink for committed events. Errors are reported to the dispatcher, which logs
// them; they never reach the transaction that produced the event.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, event Event) error
}
