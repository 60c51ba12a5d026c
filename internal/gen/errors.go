package gen

import "fmt"

// GenerationError reports a constrained sampling loop that hit its resample
// cap. It usually means the distribution parameters are inconsistent with
// the accepted range.
type GenerationError struct {
	Kind     string
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %s gave no in-range draw after %d attempts", e.Kind, e.Attempts)
}
