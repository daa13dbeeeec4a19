// Package saga runs multi-step changes against independent external
// systems. Each step pairs its action with the compensation that undoes it,
// so the rollback path can be tested on its own.
package saga

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/opentribunal/casework-backend/utils"
)

type Step struct {
	Name string

	Run func(ctx context.Context) error

	// Compensate undoes a completed Run when a later step fails. Optional.
	Compensate func(ctx context.Context) error
}

// Execute runs the steps in order. When a step fails, the compensations of
// every previously completed step run in reverse order and the step's error
// is returned with compensated=true. A compensation failure is logged but
// never masks the original error.
func Execute(ctx context.Context, steps []Step) (compensated bool, err error) {
	for i, step := range steps {
		if stepErr := step.Run(ctx); stepErr != nil {
			rollback(ctx, steps[:i])
			return i > 0, errors.Wrapf(stepErr, "step %q failed", step.Name)
		}
	}
	return false, nil
}

func rollback(ctx context.Context, completed []Step) {
	logger := utils.LoggerFromContext(ctx)
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			logger.ErrorContext(ctx, "saga compensation failed",
				"step", step.Name, "error", err)
		}
	}
}
