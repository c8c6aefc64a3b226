package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "vesting"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_vesting"
)

var (
	ParamsPrefix   = collections.NewPrefix(0)
	PeriodsPrefix  = collections.NewPrefix(1)
	PeriodIdPrefix = collections.NewPrefix(2)
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}
