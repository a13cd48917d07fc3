package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Price latest collateral price in smallest asset units. Liquidation reads
// it and hands it to the risk predicate; the predicate accepts the value but
// does not scale collateral with it yet, matching the ledger it replaces.
type Price struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Price     uint64    `sql:"default:0" json:"price"`
	Source    string    `sql:"size:36" json:"source"`
	Version   int64     `sql:"default:0" json:"version"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// PriceTicker humanized price from the oracle REST endpoint
type PriceTicker struct {
	AssetID string          `json:"asset_id"`
	Price   decimal.Decimal `json:"price"`
}

// IPriceStore price store interface
type IPriceStore interface {
	Save(ctx context.Context, tx *db.DB, price *Price) error
	Latest(ctx context.Context) (*Price, error)
}

// IPriceOracleService price oracle client interface
type IPriceOracleService interface {
	PullPriceTicker(ctx context.Context, t time.Time) (*PriceTicker, error)
}
