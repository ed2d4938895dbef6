package delivery

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/logger"
	"alcyxob/fitness-program/internal/observability"

	"golang.org/x/sync/errgroup"
)

// ErrSenderDisabled is returned by a Sender that has no credentials. Messages
// it refuses are reported as skipped rather than failed.
var ErrSenderDisabled = errors.New("email sender not configured")

// OutboundEmail is one message handed to the transport. SendAt, when set, asks
// the provider to hold the message until that UTC epoch second.
type OutboundEmail struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
	SendAt  *int64
}

// Sender is an email transport. It returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg OutboundEmail) (string, error)
}

// DeliveryLog stores the outcome of every handed-off message.
type DeliveryLog interface {
	Record(ctx context.Context, rec *domain.DeliveryRecord) error
}

// Recipient identifies who receives a program.
type Recipient struct {
	UserID string
	Email  string
	Name   string
}

// Outcome is the result for one day.
type Outcome struct {
	Day       int
	Status    domain.DeliveryStatus
	MessageID string
	SendAt    *int64
	Err       error
}

// DispatchReport collects the outcome of every day of one program.
type DispatchReport struct {
	ProgramID string
	Welcome   Outcome
	Scheduled []Outcome // days 2-14, in day order
}

// Failed lists the days that failed, ascending.
func (r *DispatchReport) Failed() []int {
	var days []int
	for _, o := range r.all() {
		if o.Status == domain.DeliveryStatusFailed {
			days = append(days, o.Day)
		}
	}
	sort.Ints(days)
	return days
}

// Count returns how many days ended with status.
func (r *DispatchReport) Count(status domain.DeliveryStatus) int {
	n := 0
	for _, o := range r.all() {
		if o.Status == status {
			n++
		}
	}
	return n
}

func (r *DispatchReport) all() []Outcome {
	return append([]Outcome{r.Welcome}, r.Scheduled...)
}

// Dispatcher sends the welcome email immediately and hands every scheduled
// day to the provider with a deferred send time. One failed day never stops
// the others, and delivery failures never invalidate the program.
type Dispatcher struct {
	sender      Sender
	renderer    *Renderer
	scheduler   *Scheduler
	log         DeliveryLog
	logger      *logger.Logger
	concurrency int
	now         func() time.Time
}

// DispatcherConfig wires a Dispatcher. Log and Logger are optional.
type DispatcherConfig struct {
	Sender      Sender
	Renderer    *Renderer
	Scheduler   *Scheduler
	Log         DeliveryLog
	Logger      *logger.Logger
	Concurrency int // parallel sends; defaults to 4
	Now         func() time.Time
}

func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	d := &Dispatcher{
		sender:      cfg.Sender,
		renderer:    cfg.Renderer,
		scheduler:   cfg.Scheduler,
		log:         cfg.Log,
		logger:      cfg.Logger,
		concurrency: cfg.Concurrency,
		now:         cfg.Now,
	}
	if d.logger == nil {
		d.logger = logger.Nop()
	}
	if d.concurrency <= 0 {
		d.concurrency = 4
	}
	if d.now == nil {
		d.now = func() time.Time { return time.Now().UTC() }
	}
	return d
}

// Deliver renders and sends a whole program. The returned error covers only
// rendering and scheduling problems; per-day transport failures are in the
// report.
func (d *Dispatcher) Deliver(ctx context.Context, p *domain.Program, to Recipient) (*DispatchReport, error) {
	welcome, err := d.renderer.Welcome(p)
	if err != nil {
		return nil, fmt.Errorf("render welcome: %w", err)
	}
	items, err := d.scheduler.Schedule(p)
	if err != nil {
		return nil, err
	}

	log := d.logger.With("program_id", p.ID, "user_id", to.UserID)
	report := &DispatchReport{ProgramID: p.ID, Scheduled: make([]Outcome, len(items))}

	report.Welcome = d.send(ctx, p.ID, to, 1, "welcome", welcome, nil)

	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			sendAt := item.SendAt
			kind := "training"
			if item.IsRestDay {
				kind = "rest"
			}
			report.Scheduled[i] = d.send(ctx, p.ID, to, item.Day, kind, item.Payload, &sendAt)
			return nil
		})
	}
	_ = g.Wait()

	if failed := report.Failed(); len(failed) > 0 {
		log.Warn("program delivery incomplete", "failed_days", failed, "email", to.Email)
	} else {
		log.Info("program delivery handed off",
			"sent", report.Count(domain.DeliveryStatusSent),
			"scheduled", report.Count(domain.DeliveryStatusScheduled),
			"skipped", report.Count(domain.DeliveryStatusSkipped))
	}
	return report, nil
}

func (d *Dispatcher) send(ctx context.Context, programID string, to Recipient, day int, kind string, msg domain.Message, sendAt *int64) Outcome {
	out := Outcome{Day: day, SendAt: sendAt}

	id, err := d.sender.Send(ctx, OutboundEmail{
		To:      to.Email,
		ToName:  to.Name,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		SendAt:  sendAt,
	})
	switch {
	case errors.Is(err, ErrSenderDisabled):
		out.Status = domain.DeliveryStatusSkipped
		out.Err = err
	case err != nil:
		out.Status = domain.DeliveryStatusFailed
		out.Err = err
		d.logger.Error("email send failed", "program_id", programID, "day", day, "error", err)
	case sendAt != nil:
		out.Status = domain.DeliveryStatusScheduled
		out.MessageID = id
	default:
		out.Status = domain.DeliveryStatusSent
		out.MessageID = id
	}
	observability.RecordDelivery(string(out.Status), kind)

	if d.log != nil {
		rec := &domain.DeliveryRecord{
			ID:        fmt.Sprintf("%s:%d", programID, day),
			ProgramID: programID,
			UserID:    to.UserID,
			Day:       day,
			Recipient: to.Email,
			Subject:   msg.Subject,
			SendAt:    sendAt,
			Status:    out.Status,
			MessageID: out.MessageID,
			CreatedAt: d.now(),
		}
		if out.Err != nil {
			rec.Error = out.Err.Error()
		}
		if err := d.log.Record(ctx, rec); err != nil {
			d.logger.Warn("failed to record delivery", "program_id", programID, "day", day, "error", err)
		}
	}
	return out
}
