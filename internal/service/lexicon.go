package service

import (
	"regexp"

	"github.com/AanV03/Chatbot/internal/domain"
)

// IntentRule maps one intent to its trigger phrases. Rules are evaluated in
// declaration order; the first rule with any matching phrase wins. Phrases
// are matched against normalized text, so they must be written in
// post-normalization form (folded, depluralized: "cual son", not
// "cuáles son").
type IntentRule struct {
	Intent  domain.Intent
	Phrases []string
}

// MisspellingRule rewrites a known malformed phrase. The corrected text may
// carry accents; matching is case-insensitive against the raw input.
type MisspellingRule struct {
	Malformed string
	Corrected string
	pattern   *regexp.Regexp
}

// SubtopicSynonyms lists the tokens that vote for a subtopic label.
type SubtopicSynonyms struct {
	Label  string
	Tokens []string
}

// TopicKeywords lists the substrings that resolve a topic by key.
type TopicKeywords struct {
	TopicKey string
	Keywords []string
}

// Lexicon holds every phrase table the pipeline consults. It is built once
// at startup and read-only afterwards, so concurrent queries need no
// locking.
type Lexicon struct {
	IntentRules      []IntentRule
	Misspellings     []MisspellingRule
	SubtopicSynonyms []SubtopicSynonyms
	TopicKeywords    []TopicKeywords
	GenericSubtopics []string
	Stopwords        map[string]struct{}
}

// Compile precompiles the misspelling patterns. Must be called before the
// lexicon is handed to the pipeline; DefaultLexicon returns it compiled.
func (l *Lexicon) Compile() {
	for i := range l.Misspellings {
		l.Misspellings[i].pattern = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(l.Misspellings[i].Malformed))
	}
}

// DefaultLexicon returns the curated Spanish phrase tables.
func DefaultLexicon() *Lexicon {
	l := &Lexicon{
		IntentRules: []IntentRule{
			{
				Intent:  domain.IntentRecommendation,
				Phrases: []string{"recomienda", "recomendacion", "consejo", "que puedo hacer", "como puedo ayudar", "sugerencia"},
			},
			{
				Intent:  domain.IntentHealth,
				Phrases: []string{"salud", "enfermedad", "sintoma", "dano", "afecta al cuerpo", "respirar"},
			},
			{
				Intent:  domain.IntentTechnical,
				Phrases: []string{"como funciona", "como se mide", "por que se produce", "como se forma", "proceso"},
			},
			{
				Intent:  domain.IntentInformational,
				Phrases: []string{"que es", "que son", "cual son", "definicion", "significa", "que hace"},
			},
		},
		Misspellings: []MisspellingRule{
			{Malformed: "que ase", Corrected: "qué hace"},
			{Malformed: "k es", Corrected: "qué es"},
			{Malformed: "smock", Corrected: "smog"},
			{Malformed: "esmog", Corrected: "smog"},
			{Malformed: "rreciclaje", Corrected: "reciclaje"},
			{Malformed: "osono", Corrected: "ozono"},
		},
		SubtopicSynonyms: []SubtopicSynonyms{
			{Label: "smog", Tokens: []string{"smog", "niebla", "bruma", "neblina"}},
			{Label: "ozono", Tokens: []string{"ozono", "capa"}},
			{Label: "particulas", Tokens: []string{"particula", "pm10", "pm2", "polvo", "hollin"}},
			{Label: "reciclaje", Tokens: []string{"reciclaje", "reciclar", "envase", "plastico", "carton", "vidrio"}},
			{Label: "compostaje", Tokens: []string{"compostaje", "composta", "organico", "abono"}},
			{Label: "ahorro de agua", Tokens: []string{"agua", "ahorro", "llave", "grifo", "regadera"}},
			{Label: "saludos", Tokens: []string{"hola", "buena", "saludo"}},
			{Label: "agradecimientos", Tokens: []string{"gracia", "agradezco", "amable"}},
			{Label: "despedidas", Tokens: []string{"adios", "chao", "luego"}},
		},
		TopicKeywords: []TopicKeywords{
			{TopicKey: "aire", Keywords: []string{"smog", "ozono", "aire", "atmosfera", "humo"}},
			{TopicKey: "agua", Keywords: []string{"agua", "rio", "mar", "hidrica", "potable"}},
			{TopicKey: "residuos", Keywords: []string{"reciclaje", "basura", "residuo", "desecho", "composta"}},
			{TopicKey: "salud", Keywords: []string{"salud", "enfermedad", "sintoma", "respiratoria"}},
			{TopicKey: "general", Keywords: []string{"hola", "gracia", "adios", "ayuda"}},
		},
		GenericSubtopics: []string{"saludos", "agradecimientos", "despedidas"},
		Stopwords: toSet([]string{
			"que", "cual", "cuales", "como", "donde", "cuando", "por", "para",
			"con", "sin", "una", "uno", "unos", "unas", "los", "las", "del",
			"este", "esta", "estos", "estas", "ese", "esa", "sobre", "entre",
			"hay", "son", "ser", "estar", "mas", "menos", "muy", "tambien",
			"pero", "porque", "quiero", "saber", "dime", "puede", "pueden",
		}),
	}
	l.Compile()
	return l
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
