package services_test

import (
	"errors"
	"fmt"
	"testing"

	"filmlens/internal/services"
)

func TestWrapPreservesMarker(t *testing.T) {
	base := fmt.Errorf("boom")
	err := services.Wrap(services.ErrMalformedRecord, "ingest", "movies", "row 3", base)
	if !errors.Is(err, services.ErrMalformedRecord) {
		t.Fatalf("expected marker to survive wrapping: %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected cause to survive wrapping: %v", err)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrValidation, "classifier", "predict", "negative budget", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker: %v", err)
	}
	want := "validation error: classifier: predict: negative budget"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrMalformedRecord) {
		t.Fatalf("expected default marker: %v", err)
	}
}

func TestMarkersAreDistinct(t *testing.T) {
	markers := []error{
		services.ErrMalformedRecord,
		services.ErrUnresolvedIdentifier,
		services.ErrNotComputable,
		services.ErrValidation,
		services.ErrTrainingData,
		services.ErrConfiguration,
	}
	for i, a := range markers {
		for j, b := range markers {
			if i != j && errors.Is(a, b) {
				t.Fatalf("markers %d and %d are not distinct", i, j)
			}
		}
	}
}
