package nlp

import (
	"context"
	"errors"
	"strings"

	"gemini-nlp/internal/textgen"
)

var ErrUnknownOperation = errors.New("nlp: unknown operation")

// Result is the verbatim response for one operation.
type Result struct {
	Operation Operation
	Prompt    string
	Text      string
}

// Recorder observes dispatch outcomes. Outcome is "ok", "warning" or "error".
type Recorder interface {
	ObserveOperation(op string, outcome string)
}

type Dispatcher struct {
	gen      textgen.Generator
	recorder Recorder
}

func NewDispatcher(gen textgen.Generator, recorder Recorder) *Dispatcher {
	return &Dispatcher{gen: gen, recorder: recorder}
}

// Run validates text, prompts the generator and returns its raw answer.
// Blank text yields *ValidationWarning without calling the generator;
// generator failures are returned as *GenerationError.
func (d *Dispatcher) Run(ctx context.Context, op Operation, text string) (Result, error) {
	spec, ok := specs[op]
	if !ok {
		return Result{}, ErrUnknownOperation
	}

	if strings.TrimSpace(text) == "" {
		d.observe(op, "warning")
		return Result{}, &ValidationWarning{Operation: op, Message: spec.Empty}
	}

	prompt := op.Prompt(text)
	out, err := d.gen.Generate(ctx, prompt)
	if err != nil {
		d.observe(op, "error")
		return Result{}, &GenerationError{Operation: op, Err: err}
	}

	d.observe(op, "ok")
	return Result{
		Operation: op,
		Prompt:    prompt,
		Text:      out,
	}, nil
}

func (d *Dispatcher) AnalyzeSentiment(ctx context.Context, text string) (Result, error) {
	return d.Run(ctx, Sentiment, text)
}

func (d *Dispatcher) TranslateToTarget(ctx context.Context, text string) (Result, error) {
	return d.Run(ctx, Translation, text)
}

func (d *Dispatcher) DetectLanguage(ctx context.Context, text string) (Result, error) {
	return d.Run(ctx, Detection, text)
}

func (d *Dispatcher) observe(op Operation, outcome string) {
	if d.recorder != nil {
		d.recorder.ObserveOperation(op.String(), outcome)
	}
}
