package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizerConfig controls the optional normalization passes.
type NormalizerConfig struct {
	Punctuation bool
	Plurals     bool
}

func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{Punctuation: true, Plurals: true}
}

// Normalizer lowercases, strips diacritics and punctuation, and
// depluralizes tokens. Normalize is idempotent: running it twice yields
// the same output as running it once.
type Normalizer struct {
	cfg     NormalizerConfig
	lexicon *Lexicon
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func NewNormalizer(cfg NormalizerConfig, lexicon *Lexicon) *Normalizer {
	return &Normalizer{cfg: cfg, lexicon: lexicon}
}

// fold lowercases and strips combining marks. Used everywhere two labels
// must compare case- and diacritic-insensitively.
func fold(s string) string {
	s = strings.ToLower(s)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

func (n *Normalizer) Normalize(text string) string {
	s := fold(text)

	if n.cfg.Punctuation {
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
				b.WriteRune(r)
			} else {
				b.WriteRune(' ')
			}
		}
		s = b.String()
	}

	words := strings.Fields(s)
	if n.cfg.Plurals {
		for i, w := range words {
			words[i] = singularize(w)
		}
	}
	return strings.Join(words, " ")
}

// singularize strips Spanish plural suffixes. Applied to a fixpoint so that
// normalization stays idempotent for words like "ingleses".
func singularize(w string) string {
	for {
		switch {
		case strings.HasSuffix(w, "es") && len(w) > 4:
			w = w[:len(w)-2]
		case strings.HasSuffix(w, "s") && len(w) > 3:
			w = w[:len(w)-1]
		default:
			return w
		}
	}
}

// CorrectMisspellings scans the lexicon's malformed-phrase table in order.
// The first entry found in the text (case-insensitively) replaces all of
// its occurrences in the original text; remaining entries are not applied.
func (n *Normalizer) CorrectMisspellings(text string) string {
	lower := strings.ToLower(text)
	for _, m := range n.lexicon.Misspellings {
		if strings.Contains(lower, m.Malformed) {
			return m.pattern.ReplaceAllString(text, m.Corrected)
		}
	}
	return text
}
