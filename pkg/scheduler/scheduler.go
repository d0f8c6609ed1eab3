// Package scheduler keeps pending reminders and alarms in memory and fires
// them once when due. Nothing here survives a restart, a dropped reminder on
// process exit is accepted behavior.
package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/delta/pkg/domain"
)

// Notifier receives fired reminders
type Notifier func(reminder domain.Reminder)

// Scheduler scans pending reminders on a ticker and fires due ones exactly
// once. Add and List are safe to call from request handlers while the loop
// runs.
type Scheduler struct {
	tick   time.Duration
	notify Notifier

	mu      sync.Mutex
	pending map[string]domain.Reminder

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New creates a scheduler, notify is called from the scan loop goroutine
func New(tick time.Duration, notify Notifier) *Scheduler {
	if tick <= 0 {
		tick = time.Second
	}
	return &Scheduler{
		tick:    tick,
		notify:  notify,
		pending: make(map[string]domain.Reminder),
	}
}

// Add schedules a one-shot reminder at the given time
func (s *Scheduler) Add(message string, at time.Time) domain.Reminder {
	reminder := domain.Reminder{
		ID:        uuid.New().String(),
		Message:   message,
		At:        at,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.pending[reminder.ID] = reminder
	s.mu.Unlock()

	lgr.Printf("[INFO] reminder %s scheduled for %s: %s", reminder.ID, at.Format(time.RFC3339), message)
	return reminder
}

// AddIn schedules a reminder after the given delay
func (s *Scheduler) AddIn(message string, delay time.Duration) domain.Reminder {
	return s.Add(message, time.Now().Add(delay))
}

// AddAt schedules an alarm at the next occurrence of hour:minute
func (s *Scheduler) AddAt(message string, hour, minute int) domain.Reminder {
	now := time.Now()
	at := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.Add(24 * time.Hour) // already passed today, next day
	}
	return s.Add(message, at)
}

// List returns pending reminders sorted by due time
func (s *Scheduler) List() []domain.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]domain.Reminder, 0, len(s.pending))
	for _, r := range s.pending {
		res = append(res, r)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].At.Before(res[j].At) })
	return res
}

// Start begins the scan loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.loop(ctx)

	lgr.Printf("[INFO] reminder scheduler started with tick %v", s.tick)
}

// Stop cancels the scan loop and waits for it to finish
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] reminder scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.fireDue(now)
		}
	}
}

// fireDue removes due reminders from the pending set and notifies for each.
// Removal happens before the callback so a reminder can never fire twice.
func (s *Scheduler) fireDue(now time.Time) {
	s.mu.Lock()
	var due []domain.Reminder
	for id, r := range s.pending {
		if !r.At.After(now) {
			due = append(due, r)
			delete(s.pending, id)
		}
	}
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].At.Before(due[j].At) })
	for _, r := range due {
		lgr.Printf("[INFO] reminder %s fired: %s", r.ID, r.Message)
		if s.notify != nil {
			s.notify(r)
		}
	}
}
