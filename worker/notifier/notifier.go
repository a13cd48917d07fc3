package notifier

import (
	"arcilend/core"
	"arcilend/worker"
	"context"
	"errors"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Notifier drains the event table and ships batches to the webhook.
type Notifier struct {
	worker.BaseJob
	eventStore   core.IEventStore
	eventService core.IEventService
}

// New new notifier worker
func New(location string, events core.IEventStore, eventz core.IEventService) *Notifier {
	notifier := Notifier{
		eventStore:   events,
		eventService: eventz,
	}

	l, _ := time.LoadLocation(location)
	notifier.Cron = cron.New(cron.WithLocation(l))
	spec := "@every 1s"
	notifier.Cron.AddFunc(spec, notifier.Run)
	notifier.OnWork = func() error {
		return notifier.onWork(context.Background())
	}

	return &notifier
}

func (w *Notifier) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx)
	const Limit = 100

	events, err := w.eventStore.List(ctx, Limit)
	if err != nil {
		log.WithError(err).Error("events.List")
		return err
	}

	if len(events) == 0 {
		return errors.New("list events: EOF")
	}

	if err := w.eventService.Send(ctx, events); err != nil {
		log.WithError(err).Error("eventz.Send")
		return err
	}

	if err := w.eventStore.Delete(ctx, events); err != nil {
		log.WithError(err).Error("events.Delete")
		return err
	}

	return nil
}
