package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedRecord marks a source row rejected during ingestion.
	// Rejection is per-row; the surrounding batch continues.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnresolvedIdentifier marks a country or language that could not be
	// mapped to a canonical code. Affected rows are excluded from joins that
	// need the code, never zero-filled.
	ErrUnresolvedIdentifier = errors.New("unresolved identifier")

	// ErrNotComputable marks an aggregate whose denominator is zero or
	// missing. Distinct from a legitimate numeric zero.
	ErrNotComputable = errors.New("not computable")

	// ErrValidation marks inference input rejected before it reaches the model.
	ErrValidation = errors.New("validation error")

	// ErrTrainingData marks a training run aborted for lack of class balance.
	// Fatal to the run only, not to the process.
	ErrTrainingData = errors.New("training data insufficient")

	// ErrConfiguration marks unusable configuration.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes pipeline context while tagging it
// with the provided marker for later classification via errors.Is. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrMalformedRecord
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
