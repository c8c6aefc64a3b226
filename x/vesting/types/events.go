package types

// Event types
const (
	EventTypeVestingCreated = "vesting_created"
	EventTypeVestingClaimed = "vesting_claimed"
	EventTypeVestingEnded   = "vesting_ended"
	EventTypeFeeCharged     = "vesting_fee_charged"
	EventTypeParamsUpdated  = "vesting_params_updated"

	AttributeKeyPeriodId    = "period_id"
	AttributeKeyCreator     = "creator"
	AttributeKeyPayer       = "payer"
	AttributeKeyRecipient   = "recipient"
	AttributeKeyAmount      = "amount"
	AttributeKeyFeeToken    = "fee_token"
	AttributeKeyFeeAmount   = "fee_amount"
	AttributeKeyLastClaim   = "last_claim"
	AttributeKeyCycleNumber = "cycle_number"
)

// EventKind is a lifecycle notification emitted by the period store.
type EventKind string

const (
	Created EventKind = "created"
	Claimed EventKind = "claimed"
	Ended   EventKind = "ended"
)

// EventType maps a lifecycle kind to the sdk event type carrying it.
func (k EventKind) EventType() string {
	switch k {
	case Created:
		return EventTypeVestingCreated
	case Claimed:
		return EventTypeVestingClaimed
	case Ended:
		return EventTypeVestingEnded
	}
	return ""
}

// EventKindFromType is the inverse of EventKind.EventType.
func EventKindFromType(eventType string) (EventKind, bool) {
	switch eventType {
	case EventTypeVestingCreated:
		return Created, true
	case EventTypeVestingClaimed:
		return Claimed, true
	case EventTypeVestingEnded:
		return Ended, true
	}
	return "", false
}
