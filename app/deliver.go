package app

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	"github.com/cometbft/cometbft/crypto/tmhash"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/TheSnakeWitcher/vesting-manager/notify"
	vestingtypes "github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// Msg is anything the host can apply as a transaction.
type Msg interface {
	Type() string
	ValidateBasic() error
}

// TxResult describes a delivered transaction. Hash is set even when delivery failed.
type TxResult struct {
	Hash   string     `json:"hash"`
	Height int64      `json:"height"`
	Time   time.Time  `json:"time"`
	Events sdk.Events `json:"events,omitempty"`
}

type txEnvelope struct {
	ChainId string          `json:"chain_id"`
	Type    string          `json:"type"`
	Msg     json.RawMessage `json:"msg"`
	Height  int64           `json:"height"`
	Time    int64           `json:"time"`
}

func (a *App) CreatePeriod(msg *vestingtypes.MsgCreatePeriod) (*vestingtypes.MsgCreatePeriodResponse, TxResult, error) {
	return deliver(a, msg, func(ctx sdk.Context) (*vestingtypes.MsgCreatePeriodResponse, error) {
		return a.msgServer.CreatePeriod(ctx, msg)
	})
}

func (a *App) Release(msg *vestingtypes.MsgRelease) (*vestingtypes.MsgReleaseResponse, TxResult, error) {
	return deliver(a, msg, func(ctx sdk.Context) (*vestingtypes.MsgReleaseResponse, error) {
		return a.msgServer.Release(ctx, msg)
	})
}

func (a *App) SetFeeToken(msg *vestingtypes.MsgSetFeeToken) (TxResult, error) {
	_, result, err := deliver(a, msg, func(ctx sdk.Context) (*vestingtypes.MsgSetFeeTokenResponse, error) {
		return a.msgServer.SetFeeToken(ctx, msg)
	})
	return result, err
}

func (a *App) SetFeeAmount(msg *vestingtypes.MsgSetFeeAmount) (TxResult, error) {
	_, result, err := deliver(a, msg, func(ctx sdk.Context) (*vestingtypes.MsgSetFeeAmountResponse, error) {
		return a.msgServer.SetFeeAmount(ctx, msg)
	})
	return result, err
}

// deliver applies one message on a branch of the committed state under the write lock and
// commits it as a new version. Lifecycle notifications are dispatched after the lock is released.
func deliver[R any](a *App, msg Msg, handle func(ctx sdk.Context) (R, error)) (R, TxResult, error) {
	var zero R
	if err := msg.ValidateBasic(); err != nil {
		return zero, TxResult{}, err
	}

	res, result, err := a.execute(msg, func(ctx sdk.Context) (any, error) {
		return handle(ctx)
	})
	if err != nil {
		return zero, result, err
	}

	a.dispatch(result)
	return res.(R), result, nil
}

func (a *App) execute(msg Msg, handle func(ctx sdk.Context) (any, error)) (res any, result TxResult, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	height := a.cms.LastCommitID().Version + 1
	now := a.clock().UTC()
	result = TxResult{Height: height, Time: now}

	result.Hash, err = a.txHash(msg, height, now)
	if err != nil {
		return nil, result, err
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("transaction panicked", "tx", result.Hash, "type", msg.Type(), "panic", r)
			res = nil
			err = errorsmod.Wrapf(sdkerrors.ErrPanic, "%v", r)
		}
	}()

	cache := a.cms.CacheMultiStore()
	ctx := a.newContext(cache, height, now)
	res, err = handle(ctx)
	if err != nil {
		a.logger.Debug("transaction failed", "tx", result.Hash, "type", msg.Type(), "error", err)
		return nil, result, err
	}

	cache.Write()
	commitId := a.cms.Commit()
	result.Events = ctx.EventManager().Events()

	a.logger.Info("transaction committed",
		"tx", result.Hash,
		"type", msg.Type(),
		"height", commitId.Version,
		"app_hash", fmt.Sprintf("%X", commitId.Hash),
	)
	return res, result, nil
}

func (a *App) txHash(msg Msg, height int64, now time.Time) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	bz, err := json.Marshal(txEnvelope{
		ChainId: a.chainId,
		Type:    msg.Type(),
		Msg:     body,
		Height:  height,
		Time:    now.UnixNano(),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%X", tmhash.Sum(bz)), nil
}

func (a *App) newContext(ms storetypes.MultiStore, height int64, now time.Time) sdk.Context {
	header := cmtproto.Header{
		ChainID: a.chainId,
		Height:  height,
		Time:    now,
	}
	return sdk.NewContext(ms, header, false, a.logger)
}

func (a *App) dispatch(result TxResult) {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Enqueue(LifecycleEvents(a.chainId, result)...)
}

// LifecycleEvents extracts the vesting lifecycle notifications from a committed transaction.
func LifecycleEvents(chainId string, result TxResult) []notify.Event {
	var events []notify.Event
	for _, event := range result.Events {
		kind, ok := vestingtypes.EventKindFromType(event.Type)
		if !ok {
			continue
		}
		for _, attr := range event.Attributes {
			if attr.Key != vestingtypes.AttributeKeyPeriodId {
				continue
			}
			id, err := strconv.ParseUint(attr.Value, 10, 64)
			if err != nil {
				continue
			}
			events = append(events, notify.Event{
				Kind:     kind,
				PeriodId: id,
				TxHash:   result.Hash,
				ChainId:  chainId,
				Height:   result.Height,
				Time:     result.Time,
			})
		}
	}
	return events
}
