package submit

import (
	"context"
	"time"

	"github.com/zjrosen/regform/internal/log"
	"github.com/zjrosen/regform/internal/registration"
)

type logged struct {
	next Submitter
}

// WithLogging records every submission and its outcome in the debug log.
func WithLogging(next Submitter) Submitter {
	return logged{next: next}
}

func (l logged) Submit(ctx context.Context, sub registration.Submission) (Receipt, error) {
	start := time.Now()
	receipt, err := l.next.Submit(ctx, sub)
	if err != nil {
		log.ErrorErr(log.CatSubmit, "Form submission failed", err,
			"name", sub.Name,
			"duration", time.Since(start))
		return receipt, err
	}
	log.Info(log.CatSubmit, "Form submitted",
		"id", receipt.ID,
		"name", sub.Name,
		"department", sub.Department,
		"regNumber", sub.RegNumber,
		"stateOfOrigin", sub.StateOfOrigin,
		"age", sub.Age,
		"duration", time.Since(start))
	return receipt, nil
}
