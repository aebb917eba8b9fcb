package notify

import (
	"context"
	"sync"
	"time"

	"tugasku/internal/domain"
)

// Ensure Scheduler implements domain.Notifier.
var _ domain.Notifier = (*Scheduler)(nil)

// Scheduler keeps one pending timer per notification id and delivers
// through a Sender when the timer fires. It is the in-process analog of
// an OS notification center: last write per id wins, past fire times
// are dropped, cancel is idempotent.
// Fields are ordered to minimize memory padding.
type Scheduler struct {
	timers map[int]*time.Timer
	sender Sender
	clock  domain.Clock
	logger domain.Logger
	mu     sync.Mutex
}

// NewScheduler creates a scheduler delivering through sender.
func NewScheduler(sender Sender, clock domain.Clock, logger domain.Logger) *Scheduler {
	return &Scheduler{
		timers: make(map[int]*time.Timer),
		sender: sender,
		clock:  clock,
		logger: logger,
	}
}

// Schedule registers a notification. A pending notification with the
// same id is replaced. Fire times at or before now are skipped.
func (s *Scheduler) Schedule(n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[n.ID]; ok {
		t.Stop()
		delete(s.timers, n.ID)
	}

	delay := n.FireAt.Sub(s.clock.Now())
	if delay <= 0 {
		s.logger.Debug(n.ID, "notify", "fire time already passed, skipping")
		return nil
	}

	s.timers[n.ID] = time.AfterFunc(delay, func() {
		s.fire(n)
	})
	s.logger.Debug(n.ID, "notify", "reminder scheduled for "+n.FireAt.Format(time.RFC3339))
	return nil
}

// Cancel removes a pending notification. Unknown ids are ignored.
func (s *Scheduler) Cancel(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
		s.logger.Debug(id, "notify", "reminder canceled")
	}
	return nil
}

// RequestPermission reports whether the sender can deliver.
func (s *Scheduler) RequestPermission(ctx context.Context) (bool, error) {
	return s.sender.Available()
}

// Pending reports whether a notification with the given id is waiting
// to fire.
func (s *Scheduler) Pending(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[id]
	return ok
}

// Stop cancels all pending timers.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *Scheduler) fire(n domain.Notification) {
	s.mu.Lock()
	delete(s.timers, n.ID)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.sender.Send(ctx, n); err != nil {
		s.logger.Warn(n.ID, "notify", "deliver reminder: "+err.Error())
		return
	}
	s.logger.Info(n.ID, "notify", "reminder delivered")
}
