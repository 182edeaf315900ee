package scheduler

import (
	"context"
	"fmt"

	"github.com/Dias221467/Giftwish/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Job is a unit of scheduled work.
type Job interface {
	Run(ctx context.Context) error
}

// JobFunc adapts a function to Job.
type JobFunc func(ctx context.Context) error

func (f JobFunc) Run(ctx context.Context) error { return f(ctx) }

// StartDigestCron runs job on schedule until ctx is cancelled. An empty
// schedule disables the job and returns a nil cron. The caller stops the
// returned cron on shutdown.
func StartDigestCron(ctx context.Context, schedule string, job Job) (*cron.Cron, error) {
	if schedule == "" {
		logger.Log.Info("Funding digest disabled")
		return nil, nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(schedule, func() {
		if err := job.Run(ctx); err != nil {
			logger.Log.WithError(err).Error("Funding digest failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}

	c.Start()
	logger.Log.WithField("schedule", schedule).Info("Funding digest scheduled")
	return c, nil
}
