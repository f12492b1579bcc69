package textgen

import "context"

// Generator is the contract for the external text-generation service.
// Implementations submit a prompt and return the response text as-is;
// they do not interpret or post-process it.
type Generator interface {
	// Name returns the backend identifier (e.g. "gemini:gemini-1.5-flash").
	Name() string

	// Generate submits the prompt and returns the response text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Name() string { return "func" }

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
