package tokenizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Variant selects how the trained word statistics combine into the single
// score the LTokenizer maximizes.
type Variant string

const (
	// VariantCohesion scores a word by its forward cohesion alone.
	VariantCohesion Variant = "cohesion"

	// VariantHybrid scores a word by cohesion weighted exponentially by its
	// right branching entropy. Words that both stick together and are
	// followed by varied contexts score highest.
	VariantHybrid Variant = "hybrid"
)

// ErrUnknownVariant is returned when a model is loaded with a variant name
// this build does not understand.
var ErrUnknownVariant = errors.New("unknown tokenizer variant")

// WordScore holds the trained statistics for one word.
// The offline training step measures both values over a large news corpus;
// this package only consumes them.
type WordScore struct {
	// Cohesion is the forward cohesion probability of the word.
	Cohesion float64 `json:"cohesion"`

	// Branching is the right branching entropy of the word.
	Branching float64 `json:"branching"`
}

// modelFile is the on-disk layout of a trained model.
type modelFile struct {
	Words map[string]WordScore `json:"words"`
}

// LoadModel reads a trained word-score model and binds it to a scoring
// variant, returning a ready-to-use LTokenizer.
func LoadModel(path string, variant Variant) (*LTokenizer, error) {
	data, err := os.ReadFile(path) //nolint:gosec // model path comes from user config
	if err != nil {
		return nil, fmt.Errorf("failed to read tokenizer model: %w", err)
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse tokenizer model: %w", err)
	}

	scores := make(map[string]float64, len(mf.Words))
	for word, ws := range mf.Words {
		switch variant {
		case VariantCohesion:
			scores[word] = ws.Cohesion
		case VariantHybrid:
			scores[word] = ws.Cohesion * math.Exp(ws.Branching)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
		}
	}

	return NewLTokenizer(scores), nil
}
