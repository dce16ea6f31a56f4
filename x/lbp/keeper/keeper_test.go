package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/lbp-labs/lbp-chain/x/lbp/types"
)

// baseTime is the block time every test context starts at.
const baseTime = int64(1_700_000_000)

var (
	testOwner  = sdk.AccAddress([]byte("owner_______________")).String()
	testSender = sdk.AccAddress([]byte("sender______________")).String()
)

// mockBankKeeper tracks balances per bech32 address in memory
type mockBankKeeper struct {
	balances map[string]sdk.Coins
}

func newMockBankKeeper() *mockBankKeeper {
	return &mockBankKeeper{balances: make(map[string]sdk.Coins)}
}

func (m *mockBankKeeper) fund(addr string, coins sdk.Coins) {
	m.balances[addr] = m.balances[addr].Add(coins...)
}

func (m *mockBankKeeper) send(from, to string, amt sdk.Coins) error {
	have := m.balances[from]
	if !have.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds in %s: have %s, want %s", from, have, amt)
	}
	m.balances[from] = have.Sub(amt...)
	m.balances[to] = m.balances[to].Add(amt...)
	return nil
}

func (m *mockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

func (m *mockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.send(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

func (m *mockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

// setupKeeper creates a test keeper with an in-memory store
func setupKeeper(tb testing.TB) (*Keeper, *mockBankKeeper, sdk.Context) {
	tb.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), storemetrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		tb.Fatalf("failed to load store: %v", err)
	}

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	ctx = ctx.WithBlockTime(time.Unix(baseTime, 0))

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(interfaceRegistry)

	bank := newMockBankKeeper()
	keeper := NewKeeper(cdc, storeKey, bank, "", log.NewNopLogger())

	return keeper, bank, ctx
}

// mustWeights parses fraction strings or fails the test
func mustWeights(tb testing.TB, fractions ...string) types.WeightVector {
	tb.Helper()
	v, err := types.ParseWeightVector(fractions)
	if err != nil {
		tb.Fatalf("parse weights %v: %v", fractions, err)
	}
	return v
}

// createTestPool creates a two-asset 80/20 pool owned by testOwner
func createTestPool(tb testing.TB, k *Keeper, ctx sdk.Context) *types.Pool {
	tb.Helper()
	pool, err := k.CreatePool(ctx, testOwner, "lbp-test", []string{"unova", "uusdc"},
		mustWeights(tb, "0.8", "0.2"), math.LegacyMustNewDecFromStr("0.003"), false)
	if err != nil {
		tb.Fatalf("create pool: %v", err)
	}
	return pool
}

// atTime returns a context whose block time is baseTime + offset seconds
func atTime(ctx sdk.Context, offset int64) sdk.Context {
	return ctx.WithBlockTime(time.Unix(baseTime+offset, 0))
}
