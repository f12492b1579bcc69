package nlp

import "fmt"

// ValidationWarning reports input that was rejected before any remote call.
type ValidationWarning struct {
	Operation Operation
	Message   string
}

func (w *ValidationWarning) Error() string {
	return fmt.Sprintf("nlp: %s: %s", w.Operation, w.Message)
}

// GenerationError wraps a failure from the text-generation service.
type GenerationError struct {
	Operation Operation
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("nlp: %s: generation failed: %v", e.Operation, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
