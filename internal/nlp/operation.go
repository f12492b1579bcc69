package nlp

import "fmt"

// Operation is one of the text operations offered on the dashboard.
type Operation int

const (
	Sentiment Operation = iota
	Translation
	Detection
)

// Operations lists every operation in menu order.
var Operations = []Operation{Sentiment, Translation, Detection}

// Spec describes how an operation is presented and prompted.
type Spec struct {
	Slug       string
	Title      string
	InputLabel string
	Button     string
	Empty      string // warning shown for blank input
	template   string
}

var specs = map[Operation]Spec{
	Sentiment: {
		Slug:       "sentiment",
		Title:      "Sentiment Analysis",
		InputLabel: "Enter your text:",
		Button:     "Analyze Sentiment",
		Empty:      "Please enter text before analyzing.",
		template:   "Give me the sentiment of this sentence: %s",
	},
	Translation: {
		Slug:       "translation",
		Title:      "Language Translation",
		InputLabel: "Enter text to translate into Urdu:",
		Button:     "Translate",
		Empty:      "Please enter text to translate.",
		template:   "Give me Urdu translation of this sentence: %s",
	},
	Detection: {
		Slug:       "detection",
		Title:      "Language Detection",
		InputLabel: "Enter text to detect language:",
		Button:     "Detect Language",
		Empty:      "Please enter text for language detection.",
		template:   "Detect the language of this sentence: %s",
	},
}

func (o Operation) Spec() Spec {
	s, ok := specs[o]
	if !ok {
		panic(fmt.Sprintf("nlp: unknown operation %d", int(o)))
	}
	return s
}

func (o Operation) String() string {
	if s, ok := specs[o]; ok {
		return s.Slug
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Prompt embeds text verbatim into the operation's instruction.
func (o Operation) Prompt(text string) string {
	return fmt.Sprintf(o.Spec().template, text)
}

// ParseOperation resolves a URL slug.
func ParseOperation(slug string) (Operation, bool) {
	for _, op := range Operations {
		if specs[op].Slug == slug {
			return op, true
		}
	}
	return 0, false
}
