package generate

import "fmt"

// MissingInputError reports a required option that was absent or empty.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}

// InvalidRatioError reports a ratio that is not a finite number.
type InvalidRatioError struct {
	Value float64
}

func (e *InvalidRatioError) Error() string {
	return fmt.Sprintf("invalid ratio: %v", e.Value)
}
