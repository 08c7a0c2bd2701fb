package service

// Hand-tuned thresholds preserved for behavioral compatibility with the
// curated corpus. Kept in a struct so deployments can retune them without
// touching the pipeline.
const (
	DefaultStrongMatchThreshold = 0.45
	DefaultFuzzyConfidence      = 0.42
	DefaultSimpleMatchThreshold = 0.4
	DefaultWeakMatchThreshold   = 0.3
	DefaultOutOfDomainThreshold = 0.15
)

// FieldWeights weight the per-field overlap ratios of the composite score.
// They sum to 1.0.
type FieldWeights struct {
	KeyPhrase   float64
	Description float64
	Answer      float64
	Examples    float64
}

type Calibration struct {
	// StrongMatch accepts the best-scored record outright.
	StrongMatch float64
	// FuzzyConfidence is pinned as the confidence of an accepted fuzzy
	// match, regardless of its raw approximate score.
	FuzzyConfidence float64
	// SimpleMatch gates the last-resort corpus-wide matcher.
	SimpleMatch float64
	// WeakMatch is the floor below which a resolution is considered weak.
	WeakMatch float64
	// OutOfDomain is the floor below which an unresolved query is judged
	// outside the knowledge base entirely.
	OutOfDomain float64

	Weights FieldWeights
}

func DefaultCalibration() Calibration {
	return Calibration{
		StrongMatch:     DefaultStrongMatchThreshold,
		FuzzyConfidence: DefaultFuzzyConfidence,
		SimpleMatch:     DefaultSimpleMatchThreshold,
		WeakMatch:       DefaultWeakMatchThreshold,
		OutOfDomain:     DefaultOutOfDomainThreshold,
		Weights: FieldWeights{
			KeyPhrase:   0.5,
			Description: 0.2,
			Answer:      0.2,
			Examples:    0.1,
		},
	}
}
