package oracle

import (
	"arcilend/config"
	"arcilend/core"
	"arcilend/worker"
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/robfig/cron/v3"
)

// Oracler polls the price endpoint and persists tickers converted to
// smallest units.
type Oracler struct {
	worker.BaseJob
	cfg        *config.Config
	db         *db.DB
	priceStore core.IPriceStore
	oraclez    core.IPriceOracleService
}

// New new oracle worker
func New(cfg *config.Config, db *db.DB, priceStore core.IPriceStore, oraclez core.IPriceOracleService) *Oracler {
	oracler := Oracler{
		cfg:        cfg,
		db:         db,
		priceStore: priceStore,
		oraclez:    oraclez,
	}

	l, _ := time.LoadLocation(cfg.App.Location)
	oracler.Cron = cron.New(cron.WithLocation(l))
	spec := "@every 30s"
	oracler.Cron.AddFunc(spec, oracler.Run)
	oracler.OnWork = func() error {
		return oracler.onWork(context.Background())
	}

	return &oracler
}

func (w *Oracler) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "oracle")

	if w.cfg.Oracle.EndPoint == "" {
		return nil
	}

	ticker, err := w.oraclez.PullPriceTicker(ctx, time.Now())
	if err != nil {
		log.WithError(err).Error("oraclez.PullPriceTicker")
		return err
	}

	value := ticker.Price.Shift(w.cfg.Oracle.Decimals).Truncate(0)
	if !value.IsPositive() {
		log.Warningln("skip: non-positive ticker", ticker.Price)
		return nil
	}

	price := core.Price{
		Price:     uint64(value.IntPart()),
		Source:    ticker.AssetID,
		UpdatedAt: time.Now(),
	}

	return w.db.Tx(func(tx *db.DB) error {
		return w.priceStore.Save(ctx, tx, &price)
	})
}
