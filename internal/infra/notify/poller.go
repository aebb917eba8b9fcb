package notify

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Poller runs the reminder daemon's periodic scan on a cron schedule.
type Poller struct {
	cron *cron.Cron
}

// NewPoller creates a poller in the given location.
func NewPoller(loc *time.Location) *Poller {
	return &Poller{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
	}
}

// ScheduleInterval registers a periodic job every given duration.
func (p *Poller) ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	spec := fmt.Sprintf("@every %ds", seconds)
	return p.cron.AddFunc(spec, job)
}

// Start begins running scheduled jobs.
func (p *Poller) Start() {
	p.cron.Start()
}

// Stop halts the schedule and waits for running jobs to finish.
func (p *Poller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
}
