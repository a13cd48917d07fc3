package oracle

import (
	"arcilend/config"
	"arcilend/core"
	"arcilend/pkg/resthttp"
	"context"
	"fmt"
	"time"

	"github.com/fox-one/pkg/logger"
)

// PriceService price oracle client
type PriceService struct {
	cfg *config.Config
}

// New new oracle price service
func New(cfg *config.Config) core.IPriceOracleService {
	return &PriceService{cfg: cfg}
}

// PullPriceTicker pull the collateral price ticker
func (s *PriceService) PullPriceTicker(ctx context.Context, t time.Time) (*core.PriceTicker, error) {
	url := fmt.Sprintf("%s/api/tickers/%s?ts=%d", s.cfg.Oracle.EndPoint, s.cfg.Oracle.AssetID, t.UTC().Unix())
	logger.FromContext(ctx).Debugln("pull price:", url)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var ticker core.PriceTicker
	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}
