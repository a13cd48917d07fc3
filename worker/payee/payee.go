package payee

import (
	"arcilend/core"
	"arcilend/pkg/id"
	"arcilend/pkg/mtg"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	"github.com/gofrs/uuid"
)

const (
	checkpointKey = "outputs_checkpoint"
	limit         = 500
)

// Payee consumes authenticated outputs and applies them against the
// ledger, one db transaction per output.
type Payee struct {
	db            *db.DB
	system        *core.System
	propertyStore property.Store
	walletStore   core.IWalletStore
	poolStore     core.IPoolStore
	accountStore  core.IAccountStore
	loanStore     core.ILoanStore
	eventStore    core.IEventStore
	priceStore    core.IPriceStore
	poolz         core.IPoolService
	accountz      core.IAccountService
	loanz         core.ILoanService
}

// NewPayee new payee
func NewPayee(
	db *db.DB,
	system *core.System,
	propertyStore property.Store,
	walletStore core.IWalletStore,
	poolStore core.IPoolStore,
	accountStore core.IAccountStore,
	loanStore core.ILoanStore,
	eventStore core.IEventStore,
	priceStore core.IPriceStore,
	poolz core.IPoolService,
	accountz core.IAccountService,
	loanz core.ILoanService) *Payee {

	return &Payee{
		db:            db,
		system:        system,
		propertyStore: propertyStore,
		walletStore:   walletStore,
		poolStore:     poolStore,
		accountStore:  accountStore,
		loanStore:     loanStore,
		eventStore:    eventStore,
		priceStore:    priceStore,
		poolz:         poolz,
		accountz:      accountz,
		loanz:         loanz,
	}
}

// Run run worker
func (w *Payee) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "payee")
	ctx = logger.WithContext(ctx, log)

	dur := time.Millisecond
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
			if err := w.run(ctx); err == nil {
				dur = 100 * time.Millisecond
			} else {
				dur = 500 * time.Millisecond
			}
		}
	}
}

func (w *Payee) run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	v, err := w.propertyStore.Get(ctx, checkpointKey)
	if err != nil {
		log.WithError(err).Errorln("property.Get error")
		return err
	}

	outputs, err := w.walletStore.ListOutputs(ctx, uint64(v.Int64()), limit)
	if err != nil {
		log.WithError(err).Errorln("wallets.ListOutputs")
		return err
	}

	if len(outputs) <= 0 {
		return errors.New("no more outputs")
	}

	for _, output := range outputs {
		if err := w.handleOutput(ctx, output); err != nil {
			return err
		}

		if err := w.propertyStore.Save(ctx, checkpointKey, output.ID); err != nil {
			log.WithError(err).Errorln("property.Save:", output.ID)
			return err
		}
	}

	return nil
}

func (w *Payee) handleOutput(ctx context.Context, output *core.Output) error {
	log := logger.FromContext(ctx).WithField("output", output.TraceID)
	ctx = logger.WithContext(ctx, log)

	if output.Sender == "" {
		return nil
	}

	message := decodeMemo(output.Memo)

	var action int
	body, err := mtg.Scan(message, &action)
	if err != nil {
		log.WithError(err).Debugln("skip: scan action failed")
		return nil
	}

	var follow uuid.UUID
	if b, err := mtg.Scan(body, &follow); err == nil {
		body = b
	}

	userID := output.Sender
	followID := follow.String()

	switch core.ActionType(action) {
	case core.ActionTypeInitPool:
		return w.handleInitPoolEvent(ctx, output, userID, followID, body)
	case core.ActionTypeDeposit:
		return w.handleDepositEvent(ctx, output, userID, followID)
	case core.ActionTypeRequestCreditScore:
		return w.handleRequestCreditScoreEvent(ctx, output, userID, followID)
	case core.ActionTypeUpdateCreditScore:
		return w.handleUpdateCreditScoreEvent(ctx, output, userID, followID, body)
	case core.ActionTypeBorrow:
		return w.handleBorrowEvent(ctx, output, userID, followID, body)
	case core.ActionTypeRepay:
		return w.handleRepayEvent(ctx, output, userID, followID)
	case core.ActionTypeWithdraw:
		return w.handleWithdrawEvent(ctx, output, userID, followID, body)
	case core.ActionTypeLiquidate:
		return w.handleLiquidateEvent(ctx, output, userID, followID, body)
	case core.ActionTypeAccrue:
		return w.handleAccrueEvent(ctx, output, userID, followID, body)
	case core.ActionTypePushPrice:
		return w.handlePushPriceEvent(ctx, output, userID, followID, body)
	default:
		log.Debugln("skip: unknown action", action)
		return nil
	}
}

func (w *Payee) requirePool(ctx context.Context) (*core.Pool, error) {
	pool, err := w.poolStore.Find(ctx)
	if err != nil {
		return nil, err
	}

	if pool.ID == 0 {
		return nil, core.ErrPoolNotFound
	}

	return pool, nil
}

func (w *Payee) transferOut(ctx context.Context, tx *db.DB, userID, followID, outputTraceID string, amount uint64, action *core.TransferAction) error {
	memoStr, err := action.Format()
	if err != nil {
		return err
	}

	// deterministic per output and transfer source, so a retried output
	// dedupes on trace_id instead of paying twice
	transfer := core.Transfer{
		TraceID:  id.TraceIDFrom(fmt.Sprintf("%s.%s.%d", outputTraceID, followID, action.Source)),
		Opponent: userID,
		Amount:   amount,
		Memo:     memoStr,
	}

	if err := w.walletStore.CreateTransfers(ctx, tx, []*core.Transfer{&transfer}); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("wallets.CreateTransfers")
		return err
	}

	return nil
}

// refund returns the incoming value to the sender, tagging the memo with
// the rejection code so the caller can tell retry from abandon.
func (w *Payee) refund(ctx context.Context, output *core.Output, userID, followID string, source core.ActionType, code core.ErrorCode) error {
	if output.Amount == 0 {
		return nil
	}

	action := core.TransferAction{
		Source:   core.ActionTypeRefundTransfer,
		FollowID: followID,
		Code:     int(code),
	}

	return w.transferOut(ctx, w.db, userID, followID, output.TraceID, output.Amount, &action)
}

func decodeMemo(memo string) []byte {
	if b, err := base64.StdEncoding.DecodeString(memo); err == nil {
		return b
	}

	if b, err := base64.URLEncoding.DecodeString(memo); err == nil {
		return b
	}

	return []byte(memo)
}
