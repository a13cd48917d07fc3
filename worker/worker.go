package worker

import (
	"context"

	"github.com/robfig/cron/v3"
)

// Worker worker interface
type Worker interface {
	Run(ctx context.Context) error
}

// IJob cron job interface
type IJob interface {
	Start() error
	Run()
	Stop() error
}

// OnWork job callback
type OnWork func() error

// BaseJob cron driven job
type BaseJob struct {
	Cron      *cron.Cron
	IsRunning bool
	OnWork    OnWork
}

// Start start the cron
func (job *BaseJob) Start() error {
	job.Cron.Start()
	return nil
}

// Stop stop the cron
func (job *BaseJob) Stop() error {
	job.Cron.Stop()
	return nil
}

// Run run once, skipping overlapping ticks
func (job *BaseJob) Run() {
	if job.IsRunning {
		return
	}

	job.IsRunning = true
	_ = job.OnWork()
	job.IsRunning = false
}
