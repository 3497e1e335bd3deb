// Package submit is the boundary between a validated registration and
// whatever accepts it. Today that is a simulated network call; a real
// client only needs to implement Submitter.
package submit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/regform/internal/registration"
)

// DefaultDelay is how long the simulated submission takes.
const DefaultDelay = time.Second

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID           uuid.UUID
	SubmittedAt  time.Time
	Submission   registration.Submission
	Notification registration.Notification
}

// Submitter accepts validated registrations.
type Submitter interface {
	Submit(ctx context.Context, sub registration.Submission) (Receipt, error)
}

// Func adapts a plain function to Submitter.
type Func func(ctx context.Context, sub registration.Submission) (Receipt, error)

// Submit calls f.
func (f Func) Submit(ctx context.Context, sub registration.Submission) (Receipt, error) {
	return f(ctx, sub)
}

// NewReceipt stamps sub with a fresh id and the success notification.
func NewReceipt(sub registration.Submission) Receipt {
	return Receipt{
		ID:           uuid.New(),
		SubmittedAt:  time.Now(),
		Submission:   sub,
		Notification: registration.Success(sub),
	}
}

// Simulated stands in for a network call: it waits Delay, then accepts.
type Simulated struct {
	Delay time.Duration
}

// NewSimulated returns a simulated submitter; a negative delay means DefaultDelay.
func NewSimulated(delay time.Duration) *Simulated {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Simulated{Delay: delay}
}

// Submit waits for the delay. It only fails when ctx ends first.
func (s *Simulated) Submit(ctx context.Context, sub registration.Submission) (Receipt, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	return NewReceipt(sub), nil
}
