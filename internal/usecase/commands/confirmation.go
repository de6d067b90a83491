package commands

import (
	"context"
	"log/slog"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/pkg/errs"
)

const defaultGeneratorTimeout = 2 * time.Second

// ConfirmationIssuer asks the generator for a code and falls back to a local one.
type ConfirmationIssuer struct {
	generator CodeGenerator
	fallback  *reservation.CodeSource
	timeout   time.Duration
}

func NewConfirmationIssuer(generator CodeGenerator, fallback *reservation.CodeSource) *ConfirmationIssuer {
	return &ConfirmationIssuer{
		generator: generator,
		fallback:  fallback,
		timeout:   defaultGeneratorTimeout,
	}
}

func (i *ConfirmationIssuer) Issue(ctx context.Context) (reservation.ConfirmationCode, error) {
	if i.generator != nil {
		genCtx, cancel := context.WithTimeout(ctx, i.timeout)
		raw, err := i.generator.Generate(genCtx)
		cancel()

		if err == nil && raw != "" {
			code, cerr := reservation.NewConfirmationCode(raw)
			if cerr == nil {
				return code, nil
			}
			err = cerr
		}
		slog.Warn("confirmation code generator unavailable, using local fallback", "error", errString(err))
	}

	code, err := i.fallback.Fallback()
	if err != nil {
		return "", errs.Wrap(err, "failed to generate fallback confirmation code")
	}
	return code, nil
}

func errString(err error) string {
	if err == nil {
		return "empty code"
	}
	return err.Error()
}
