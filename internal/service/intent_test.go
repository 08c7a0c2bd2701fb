package service

import (
	"testing"

	"github.com/AanV03/Chatbot/internal/domain"
)

func TestIntentClassifier_Classify(t *testing.T) {
	c := NewIntentClassifier(DefaultLexicon())

	cases := []struct {
		in   string
		want domain.Intent
	}{
		{"que es el smog", domain.IntentInformational},
		{"recomienda algo contra el smog", domain.IntentRecommendation},
		{"como funciona el reciclaje", domain.IntentTechnical},
		{"afecta la salud el ozono", domain.IntentHealth},
		{"cual son los contaminante", domain.IntentInformational},
	}
	for _, c2 := range cases {
		if got := c.Classify(c2.in); got != c2.want {
			t.Errorf("Classify(%q) = %q, want %q", c2.in, got, c2.want)
		}
	}
}

func TestIntentClassifier_MatchesNormalizedPlurals(t *testing.T) {
	lex := DefaultLexicon()
	n := NewNormalizer(DefaultNormalizerConfig(), lex)
	c := NewIntentClassifier(lex)

	// The classifier sees depluralized text, so phrases like "cual son"
	// must fire for plural questions once they pass through the
	// normalizer.
	got := c.Classify(n.Normalize("¿Cuáles son los contaminantes?"))
	if got != domain.IntentInformational {
		t.Errorf("Classify(normalized plural) = %q, want informational", got)
	}
}

func TestIntentClassifier_DefaultsToInformational(t *testing.T) {
	c := NewIntentClassifier(DefaultLexicon())

	for _, in := range []string{"", "xyzzy", "el cielo azul"} {
		if got := c.Classify(in); got != domain.IntentInformational {
			t.Errorf("Classify(%q) = %q, want informational fallback", in, got)
		}
	}
}

func TestIntentClassifier_RuleOrderWins(t *testing.T) {
	c := NewIntentClassifier(DefaultLexicon())

	// Carries both a recommendation phrase and an informational phrase;
	// the recommendation rule is declared first.
	got := c.Classify("recomienda que es lo mejor")
	if got != domain.IntentRecommendation {
		t.Errorf("expected first declared rule to win, got %q", got)
	}
}

func TestIntentClassifier_Deterministic(t *testing.T) {
	c := NewIntentClassifier(DefaultLexicon())

	in := "como se mide la calidad del aire"
	first := c.Classify(in)
	for i := 0; i < 5; i++ {
		if got := c.Classify(in); got != first {
			t.Fatalf("Classify not deterministic: %q then %q", first, got)
		}
	}
}
