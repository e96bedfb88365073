package scheduler

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"SecNewsScanner/internal/ports"
)

// hourStepExpr recognizes the "0 */N * * *" subset of cron syntax.
var hourStepExpr = regexp.MustCompile(`^0 \*/(\d+) \* \* \*$`)

// CronScheduler runs the pipeline on a fixed interval derived from a cron
// expression. Only the hourly-step subset is interpreted; anything else
// falls back to a daily tick.
type CronScheduler struct {
	interval time.Duration
	stop     chan struct{}
}

var _ ports.Scheduler = (*CronScheduler)(nil)

// NewCronScheduler builds a scheduler configured via cron expression string.
func NewCronScheduler(spec string) *CronScheduler {
	return &CronScheduler{interval: intervalFromSpec(spec)}
}

// Start fires the job immediately and then on every tick until Stop or
// context cancellation.
func (c *CronScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	if c.stop != nil {
		return nil
	}

	c.stop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		job(time.Now())
		for {
			select {
			case t := <-ticker.C:
				job(t)
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the ticker goroutine.
func (c *CronScheduler) Stop(ctx context.Context) error {
	if c.stop == nil {
		return nil
	}
	close(c.stop)
	c.stop = nil
	return nil
}

func intervalFromSpec(spec string) time.Duration {
	if m := hourStepExpr.FindStringSubmatch(spec); m != nil {
		if hours, err := strconv.Atoi(m[1]); err == nil && hours > 0 && hours <= 24 {
			return time.Duration(hours) * time.Hour
		}
	}
	return 24 * time.Hour
}
