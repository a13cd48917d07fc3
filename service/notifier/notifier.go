package notifier

import (
	"arcilend/config"
	"arcilend/core"
	"arcilend/pkg/resthttp"
	"context"

	"github.com/fox-one/pkg/logger"
)

type notifier struct {
	cfg *config.Config
}

// New new event notifier delivering ledger events to the configured
// webhook endpoint
func New(cfg *config.Config) core.IEventService {
	return &notifier{cfg: cfg}
}

func (s *notifier) Send(ctx context.Context, events []*core.Event) error {
	if s.cfg.Notifier.EndPoint == "" {
		return nil
	}

	log := logger.FromContext(ctx)

	for _, event := range events {
		resp, err := resthttp.Request(ctx).SetBody(event).Post(s.cfg.Notifier.EndPoint)
		if err != nil {
			log.WithError(err).Errorln("notifier.Send", event.TraceID)
			return err
		}

		if err := resthttp.ParseResponse(resp, nil); err != nil {
			log.WithError(err).Errorln("notifier.Send", event.TraceID)
			return err
		}
	}

	return nil
}
