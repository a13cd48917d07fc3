package payee

import (
	"arcilend/core"
	"arcilend/pkg/mtg"
	"context"
	"encoding/base64"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/fox-one/pkg/store/db"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

type fakeWalletStore struct {
	core.IWalletStore
	transfers []*core.Transfer
}

func (s *fakeWalletStore) CreateTransfers(ctx context.Context, tx *db.DB, transfers []*core.Transfer) error {
	s.transfers = append(s.transfers, transfers...)
	return nil
}

func TestDecodeMemo(t *testing.T) {
	raw, err := mtg.Encode(int(core.ActionTypeDeposit))
	require.Nil(t, err)

	assert.Equal(t, raw, decodeMemo(base64.StdEncoding.EncodeToString(raw)))
	assert.Equal(t, raw, decodeMemo(base64.URLEncoding.EncodeToString(raw)))
	assert.Equal(t, raw, decodeMemo(string(raw)))
}

func TestMemoDispatchLayout(t *testing.T) {
	follow, err := uuid.NewV4()
	require.Nil(t, err)

	raw, err := mtg.Encode(int(core.ActionTypeBorrow), follow, uint64(50_000))
	require.Nil(t, err)

	memo := base64.StdEncoding.EncodeToString(raw)
	message := decodeMemo(memo)

	var action int
	body, err := mtg.Scan(message, &action)
	require.Nil(t, err)
	assert.Equal(t, int(core.ActionTypeBorrow), action)

	var dfollow uuid.UUID
	body, err = mtg.Scan(body, &dfollow)
	require.Nil(t, err)
	assert.Equal(t, follow.String(), dfollow.String())

	var amount uint64
	_, err = mtg.Scan(body, &amount)
	require.Nil(t, err)
	assert.Equal(t, uint64(50_000), amount)
}

func TestMemoWithoutFollowID(t *testing.T) {
	raw, err := mtg.Encode(int(core.ActionTypeRequestCreditScore))
	require.Nil(t, err)

	var action int
	body, err := mtg.Scan(raw, &action)
	require.Nil(t, err)
	assert.Equal(t, int(core.ActionTypeRequestCreditScore), action)

	// no follow uuid in the memo: scan fails and the caller keeps the
	// nil uuid
	var follow uuid.UUID
	if b, err := mtg.Scan(body, &follow); err == nil {
		body = b
	}
	assert.Equal(t, uuid.Nil.String(), follow.String())
}

func TestTransferTraceDeterministic(t *testing.T) {
	store := &fakeWalletStore{}
	w := &Payee{walletStore: store}
	ctx := context.Background()

	const (
		userID        = "b6741b63-a1eb-4973-9bc9-54b5e78b8eb9"
		followID      = "4dd1dbe5-ffc3-45aa-95b2-2a5e0e28e093"
		outputTraceID = "9a0cc264-94e8-4f33-9a3a-b26523d1c28c"
	)

	payout := core.TransferAction{Source: core.ActionTypeBorrowTransfer, FollowID: followID}
	require.Nil(t, w.transferOut(ctx, nil, userID, followID, outputTraceID, 50_000, &payout))
	// a retried output must derive the same trace so the wallet store
	// dedupes instead of paying twice
	require.Nil(t, w.transferOut(ctx, nil, userID, followID, outputTraceID, 50_000, &payout))

	refund := core.TransferAction{Source: core.ActionTypeRefundTransfer, FollowID: followID}
	require.Nil(t, w.transferOut(ctx, nil, userID, followID, outputTraceID, 50_000, &refund))

	require.Equal(t, 3, len(store.transfers))
	assert.Equal(t, store.transfers[0].TraceID, store.transfers[1].TraceID)
	assert.NotEqual(t, store.transfers[0].TraceID, store.transfers[2].TraceID)

	_, err := uuid.FromString(store.transfers[0].TraceID)
	require.Nil(t, err)
}
