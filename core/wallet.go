package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Output is an authenticated incoming transfer applied against the ledger.
// The substrate syncer proves the sender before the row lands here, so
// handlers may trust Sender as the caller identity.
type Output struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID   string    `sql:"size:36;unique_index:output_trace_idx" json:"trace_id"`
	Sender    string    `sql:"size:36" json:"sender"`
	Amount    uint64    `sql:"default:0" json:"amount"`
	Memo      string    `sql:"size:256" json:"memo"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// Transfer is a queued outgoing value movement. A substrate cashier drains
// the queue; creating the row and mutating ledger state share one db
// transaction so the pair is atomic.
type Transfer struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID   string    `sql:"size:36;unique_index:transfer_trace_idx" json:"trace_id"`
	Opponent  string    `sql:"size:36" json:"opponent"`
	Amount    uint64    `sql:"default:0" json:"amount"`
	Memo      string    `sql:"size:256" json:"memo"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// IWalletStore wallet store interface
type IWalletStore interface {
	CreateOutput(ctx context.Context, output *Output) error
	ListOutputs(ctx context.Context, fromID uint64, limit int) ([]*Output, error)
	CreateTransfers(ctx context.Context, tx *db.DB, transfers []*Transfer) error
	ListTransfers(ctx context.Context, limit int) ([]*Transfer, error)
}
