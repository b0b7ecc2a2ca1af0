package sentiment

import (
	"strings"
	"unicode"
)

// Entry is the polarity and subjectivity of one opinion word.
type Entry struct {
	Polarity     float64
	Subjectivity float64
}

// Lexicon averages the polarity and subjectivity of every opinion word found
// in the text. An intensifier scales the next opinion word; a negator flips
// it and halves its strength. Modifiers reset at clause punctuation.
type Lexicon struct {
	words        map[string]Entry
	intensifiers map[string]float64
	negators     map[string]bool
}

// negation factor applied to a negated opinion word
const negationFactor = -0.5

// NewLexicon builds a lexicon from explicit tables.
func NewLexicon(words map[string]Entry, intensifiers map[string]float64, negators []string) *Lexicon {
	neg := make(map[string]bool, len(negators))
	for _, n := range negators {
		neg[n] = true
	}
	return &Lexicon{
		words:        words,
		intensifiers: intensifiers,
		negators:     neg,
	}
}

// DefaultLexicon returns the built-in general + financial news lexicon.
func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultWords, defaultIntensifiers, defaultNegators)
}

// Analyze implements Model
func (l *Lexicon) Analyze(text string) (float64, float64) {
	var sumPolarity, sumSubjectivity float64
	matches := 0

	multiplier := 1.0
	negated := false

	for _, tok := range tokenize(text) {
		switch {
		case l.isNegator(tok.word):
			negated = true
		case l.intensifiers[tok.word] != 0:
			multiplier *= l.intensifiers[tok.word]
		default:
			if e, ok := l.words[tok.word]; ok {
				p := e.Polarity * multiplier
				s := e.Subjectivity * multiplier
				if negated {
					p *= negationFactor
				}
				sumPolarity += clamp(p, -1, 1)
				sumSubjectivity += clamp(s, 0, 1)
				matches++

				multiplier = 1.0
				negated = false
			}
		}

		if tok.endsClause {
			multiplier = 1.0
			negated = false
		}
	}

	if matches == 0 {
		return 0, 0
	}

	n := float64(matches)
	return clamp(sumPolarity/n, -1, 1), clamp(sumSubjectivity/n, 0, 1)
}

func (l *Lexicon) isNegator(word string) bool {
	return l.negators[word] || strings.HasSuffix(word, "n't")
}

type token struct {
	word       string
	endsClause bool
}

// tokenize lower-cases text and splits it into words. Apostrophes and inner
// hyphens stay part of a word; . ! ? ; : and , close a clause.
func tokenize(text string) []token {
	var (
		tokens []token
		buf    strings.Builder
	)

	flush := func(endsClause bool) {
		if buf.Len() > 0 {
			w := strings.Trim(buf.String(), "'-")
			if w != "" {
				tokens = append(tokens, token{word: w})
			}
			buf.Reset()
		}
		if endsClause && len(tokens) > 0 {
			tokens[len(tokens)-1].endsClause = true
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			buf.WriteRune(unicode.ToLower(r))
		case r == '\'' || r == '’':
			buf.WriteRune('\'')
		case r == '-' && buf.Len() > 0:
			buf.WriteRune('-')
		case strings.ContainsRune(".!?;:,", r):
			flush(true)
		default:
			flush(false)
		}
	}
	flush(false)

	return tokens
}
