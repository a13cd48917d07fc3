package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jmoiron/sqlx/types"
)

// EventType observable ledger event
type EventType string

const (
	// EventTypePoolInitialized pool initialized
	EventTypePoolInitialized EventType = "pool_initialized"
	// EventTypeDeposit collateral deposited
	EventTypeDeposit EventType = "deposit"
	// EventTypeCreditScoreRequested user asked for a fresh credit score
	EventTypeCreditScoreRequested EventType = "credit_score_requested"
	// EventTypeCreditScoreUpdated credit authority pushed a score
	EventTypeCreditScoreUpdated EventType = "credit_score_updated"
	// EventTypeBorrow loan opened or topped up
	EventTypeBorrow EventType = "borrow"
	// EventTypeRepay loan repaid
	EventTypeRepay EventType = "repay"
	// EventTypeWithdraw collateral withdrawn
	EventTypeWithdraw EventType = "withdraw"
	// EventTypeLiquidation loan liquidated
	EventTypeLiquidation EventType = "liquidation"
)

// Event one observability record per state transition, carrying the
// literal amounts and resulting balances
type Event struct {
	ID        uint64         `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID   string         `sql:"size:36;unique_index:event_trace_idx" json:"trace_id"`
	Type      EventType      `sql:"size:36" json:"type"`
	UserID    string         `sql:"size:36" json:"user_id"`
	Payload   types.JSONText `sql:"type:TEXT" json:"payload"`
	CreatedAt time.Time      `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// BuildEvent build event
func BuildEvent(traceID string, typ EventType, userID string, payload interface{}) *Event {
	raw, _ := json.Marshal(payload)
	return &Event{
		TraceID: traceID,
		Type:    typ,
		UserID:  userID,
		Payload: raw,
	}
}

// IEventStore event store interface
type IEventStore interface {
	Create(ctx context.Context, tx *db.DB, event *Event) error
	List(ctx context.Context, limit int) ([]*Event, error)
	ListAfter(ctx context.Context, fromID uint64, limit int) ([]*Event, error)
	Delete(ctx context.Context, events []*Event) error
}

// IEventService event delivery interface
type IEventService interface {
	Send(ctx context.Context, events []*Event) error
}
