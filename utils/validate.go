package utils

import "fmt"

// ValidationKind names the boundary rule a write violated.
type ValidationKind string

const (
	OutOfBoundsTime     ValidationKind = "out_of_bounds_time"
	NonPositiveServings ValidationKind = "non_positive_servings"
	DurationNotPositive ValidationKind = "duration_not_positive"
)

// ValidationError surfaces a precondition violation instead of clamping,
// so the plan computations only ever see trustworthy input.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func ValidateDuration(durationSeconds int) error {
	if durationSeconds <= 0 {
		return &ValidationError{
			Kind:    DurationNotPositive,
			Message: "event duration must be positive",
		}
	}
	return nil
}

// ValidateConsumption enforces 0 <= offset <= duration and servings > 0.
func ValidateConsumption(offsetSeconds int, servings float64, durationSeconds int) error {
	if err := ValidateDuration(durationSeconds); err != nil {
		return err
	}
	if offsetSeconds < 0 || offsetSeconds > durationSeconds {
		return &ValidationError{
			Kind:    OutOfBoundsTime,
			Message: fmt.Sprintf("time offset %ds outside event duration %ds", offsetSeconds, durationSeconds),
		}
	}
	if servings <= 0 {
		return &ValidationError{
			Kind:    NonPositiveServings,
			Message: "servings must be positive",
		}
	}
	return nil
}
