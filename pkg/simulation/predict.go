package simulation

import (
	"fmt"
	"math"
	"math/rand"
)

// PredictorKind names one of the illustrative regression stand-ins.
// These are closed-form arithmetic models with pseudo-random
// coefficients, not trained learners.
type PredictorKind string

const (
	PredictorSVM PredictorKind = "svm"
	PredictorANN PredictorKind = "ann"
	PredictorELM PredictorKind = "elm"
	PredictorGA  PredictorKind = "ga"
)

// PredictorConfig fixes a predictor's kind and coefficient seed so
// predictions are reproducible under test.
type PredictorConfig struct {
	Kind PredictorKind `json:"kind"`
	Seed int64         `json:"seed"`
}

// Prediction is the uniform output contract shared by all predictor
// kinds.
type Prediction struct {
	Kind                PredictorKind `json:"kind"`
	MaterialRemovalRate float64       `json:"materialRemovalRate"` // mm³/min
	SurfaceRoughness    float64       `json:"surfaceRoughness"`    // Ra, µm
	KerfWidth           float64       `json:"kerfWidth"`           // mm
	Score               float64       `json:"score"`               // 0–1 mock fit quality
}

// Predictor evaluates one model kind over process parameters.
type Predictor struct {
	kind    PredictorKind
	weights []float64
	bias    float64
	score   float64
}

// NewPredictor draws the coefficient vector from a seeded source.
func NewPredictor(cfg PredictorConfig) (*Predictor, error) {
	switch cfg.Kind {
	case PredictorSVM, PredictorANN, PredictorELM, PredictorGA:
	default:
		return nil, fmt.Errorf("unknown predictor kind %q", cfg.Kind)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	weights := make([]float64, 8)
	for i := range weights {
		weights[i] = 0.5 + rng.Float64() // [0.5, 1.5)
	}
	return &Predictor{
		kind:    cfg.Kind,
		weights: weights,
		bias:    rng.Float64() * 0.2,
		score:   0.82 + rng.Float64()*0.15,
	}, nil
}

// Predict evaluates the stand-in model. Each kind shapes the same
// weighted parameter blend differently so the UI tabs show distinct
// (but stable) curves.
func (pr *Predictor) Predict(p ProcessParameters) Prediction {
	features := []float64{
		p.Voltage / 300, p.Current / 30,
		p.PulseOnTime / 50, p.PulseOffTime / 100,
		p.WireSpeed / 300, p.DielectricFlow / 20,
		p.WireOffset / 0.5, p.SparkGap / 0.1,
	}

	blend := pr.bias
	for i, f := range features {
		blend += pr.weights[i] * f
	}

	var activation float64
	switch pr.kind {
	case PredictorSVM:
		activation = math.Exp(-math.Abs(blend-2.0)) * 2
	case PredictorANN:
		activation = math.Tanh(blend/4) + 1
	case PredictorELM:
		activation = 1 / (1 + math.Exp(-blend/2)) * 2
	case PredictorGA:
		activation = 1 + math.Mod(blend, 1.0)
	}

	energy := p.Voltage * p.Current * p.dutyCycle()
	return Prediction{
		Kind:                pr.kind,
		MaterialRemovalRate: energy * 0.12 * activation,
		SurfaceRoughness:    0.8 + activation*p.PulseOnTime*0.05,
		KerfWidth:           p.WireOffset*2 + p.SparkGap*activation,
		Score:               pr.score,
	}
}

// PredictAll runs all four predictor kinds with seeds derived from the
// base seed, in a fixed order.
func PredictAll(p ProcessParameters, baseSeed int64) ([]Prediction, error) {
	kinds := []PredictorKind{PredictorSVM, PredictorANN, PredictorELM, PredictorGA}
	predictions := make([]Prediction, 0, len(kinds))
	for i, kind := range kinds {
		predictor, err := NewPredictor(PredictorConfig{Kind: kind, Seed: baseSeed + int64(i)})
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, predictor.Predict(p))
	}
	return predictions, nil
}
