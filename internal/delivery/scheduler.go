package delivery

import (
	"fmt"
	"time"

	"alcyxob/fitness-program/internal/domain"
)

// DefaultSendHourUTC is the hour (UTC) scheduled emails go out. 05:00 UTC is
// 01:00 in New York during daylight time; the offset is fixed year-round.
const DefaultSendHourUTC = 5

// Scheduler turns a program into the deferred deliveries for days 2-14.
// It performs no I/O.
type Scheduler struct {
	renderer *Renderer
	now      func() time.Time
	sendHour int
}

// SchedulerOption customises a Scheduler.
type SchedulerOption func(*Scheduler)

// WithSchedulerClock overrides the reference time used for "today".
func WithSchedulerClock(now func() time.Time) SchedulerOption {
	return func(s *Scheduler) { s.now = now }
}

// WithSendHour overrides DefaultSendHourUTC. Values outside 0-23 are ignored.
func WithSendHour(hour int) SchedulerOption {
	return func(s *Scheduler) {
		if hour >= 0 && hour <= 23 {
			s.sendHour = hour
		}
	}
}

func NewScheduler(renderer *Renderer, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		renderer: renderer,
		now:      time.Now,
		sendHour: DefaultSendHourUTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule renders days 2-14 in day order. Day 1 is the welcome message and
// is never part of the schedule.
func (s *Scheduler) Schedule(p *domain.Program) ([]domain.DeliveryItem, error) {
	if p == nil || len(p.DailyPlans) != domain.ProgramDays {
		return nil, fmt.Errorf("schedule: program must have exactly %d days", domain.ProgramDays)
	}
	today := s.now()
	items := make([]domain.DeliveryItem, 0, domain.ProgramDays-1)
	for day := 2; day <= domain.ProgramDays; day++ {
		plan, _ := p.Day(day)
		msg, err := s.renderer.Day(p, day)
		if err != nil {
			return nil, fmt.Errorf("schedule day %d: %w", day, err)
		}
		items = append(items, domain.DeliveryItem{
			Day:       day,
			IsRestDay: plan.IsRestDay(),
			Payload:   msg,
			SendAt:    SendAt(today, day, s.sendHour),
		})
	}
	return items, nil
}

// SendAt is the UTC epoch second at which day n goes out: midnight UTC of
// today's UTC date, plus n-1 days, plus hour hours.
func SendAt(today time.Time, day, hour int) int64 {
	u := today.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, day-1).Add(time.Duration(hour) * time.Hour).Unix()
}
