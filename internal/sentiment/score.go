// Package sentiment maps text to a polarity/subjectivity/label triple.
package sentiment

import (
	"math"
	"strings"
)

// Label is the coarse sentiment class derived from polarity.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// Label thresholds. Both comparisons are strict, so exactly ±0.1 is Neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Emoji returns the glyph shown next to the label in reports.
func (l Label) Emoji() string {
	switch l {
	case Positive:
		return "😊"
	case Negative:
		return "😠"
	default:
		return "😐"
	}
}

// LabelFor classifies a polarity value.
func LabelFor(polarity float64) Label {
	switch {
	case polarity > positiveThreshold:
		return Positive
	case polarity < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Score is the sentiment of one piece of text.
type Score struct {
	Polarity     float64 // -1 (negative) to 1 (positive)
	Subjectivity float64 // 0 (objective) to 1 (subjective)
	Label        Label
}

// Model is a lexicon-style sentiment estimator.
type Model interface {
	Analyze(text string) (polarity, subjectivity float64)
}

// Scorer turns a Model into labelled Scores. It is pure and safe for
// concurrent use as long as the Model is.
type Scorer struct {
	model Model
}

// NewScorer returns a Scorer backed by model. A nil model selects the
// built-in lexicon.
func NewScorer(model Model) *Scorer {
	if model == nil {
		model = DefaultLexicon()
	}
	return &Scorer{model: model}
}

// Score analyzes text. Blank text scores {0, 0, Neutral} without consulting
// the model.
func (s *Scorer) Score(text string) Score {
	if strings.TrimSpace(text) == "" {
		return Score{Label: Neutral}
	}

	polarity, subjectivity := s.model.Analyze(text)
	polarity = clamp(polarity, -1, 1)
	subjectivity = clamp(subjectivity, 0, 1)

	return Score{
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Label:        LabelFor(polarity),
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
