package utils

import (
	"errors"
	"testing"
)

func TestValidateConsumption(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		servings float64
		duration int
		wantKind ValidationKind
	}{
		{"valid", 1800, 1.5, 7200, ""},
		{"offset at zero", 0, 1, 7200, ""},
		{"offset at duration", 7200, 1, 7200, ""},
		{"negative offset", -1, 1, 7200, OutOfBoundsTime},
		{"offset past duration", 7201, 1, 7200, OutOfBoundsTime},
		{"zero servings", 1800, 0, 7200, NonPositiveServings},
		{"negative servings", 1800, -0.5, 7200, NonPositiveServings},
		{"zero duration", 0, 1, 0, DurationNotPositive},
		{"negative duration", 0, 1, -10, DurationNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConsumption(tt.offset, tt.servings, tt.duration)
			if tt.wantKind == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", verr.Kind, tt.wantKind)
			}
		})
	}
}
