package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

type coinsMatcher struct {
	expected sdk.Coins
}

// CoinsEq matches sdk.Coins by value rather than by their big.Int internals.
func CoinsEq(coins ...sdk.Coin) gomock.Matcher {
	return coinsMatcher{expected: sdk.NewCoins(coins...)}
}

func (m coinsMatcher) Matches(x any) bool {
	coins, ok := x.(sdk.Coins)
	if !ok {
		return false
	}
	return coins.Equal(m.expected)
}

func (m coinsMatcher) String() string {
	return fmt.Sprintf("coins equal to %s", m.expected)
}

type addrSetMatcher struct {
	set    []sdk.AccAddress
	member bool
}

// AddrIn matches any sdk.AccAddress contained in addrs.
func AddrIn(addrs ...sdk.AccAddress) gomock.Matcher {
	return addrSetMatcher{set: addrs, member: true}
}

// AddrNotIn matches any sdk.AccAddress missing from addrs.
func AddrNotIn(addrs ...sdk.AccAddress) gomock.Matcher {
	return addrSetMatcher{set: addrs, member: false}
}

func (m addrSetMatcher) Matches(x any) bool {
	addr, ok := x.(sdk.AccAddress)
	if !ok {
		return false
	}
	for _, candidate := range m.set {
		if candidate.Equals(addr) {
			return m.member
		}
	}
	return !m.member
}

func (m addrSetMatcher) String() string {
	if m.member {
		return fmt.Sprintf("address in %v", m.set)
	}
	return fmt.Sprintf("address not in %v", m.set)
}

func mustAddress(who string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(who)
	if err != nil {
		panic(err)
	}
	return addr
}

func (escrow *MockBankEscrowKeeper) ExpectFee(payer string, authority sdk.AccAddress, fee sdk.Coin) *gomock.Call {
	return escrow.EXPECT().SendCoins(gomock.Any(), mustAddress(payer), authority, CoinsEq(fee))
}

func (escrow *MockBankEscrowKeeper) ExpectEscrow(creator string, amount sdk.Coin) *gomock.Call {
	return escrow.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), mustAddress(creator), types.ModuleName, CoinsEq(amount))
}

func (escrow *MockBankEscrowKeeper) ExpectPayout(beneficiary string, amount sdk.Coin) *gomock.Call {
	return escrow.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, mustAddress(beneficiary), CoinsEq(amount))
}

// ExpectBlockedAddrs makes BlockedAddr report true for the given addresses and false otherwise.
func (escrow *MockBankEscrowKeeper) ExpectBlockedAddrs(blocked ...sdk.AccAddress) {
	escrow.EXPECT().BlockedAddr(AddrIn(blocked...)).Return(true).AnyTimes()
	escrow.EXPECT().BlockedAddr(AddrNotIn(blocked...)).Return(false).AnyTimes()
}
