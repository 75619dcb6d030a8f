package strategy

import (
	"fmt"

	"github.com/mcoot/schnapsen-go/internal/dependencies/random"
	"github.com/mcoot/schnapsen-go/internal/model"
)

// The nine stock variants are combinatorial compositions of the same
// pipeline, not separate implementations: one flag set per name.
var variantOrder = []string{
	"base",
	"additional",
	"additional+folding",
	"additional+risk",
	"additional+optimizer",
	"additional+folding+risk",
	"additional+folding+optimizer",
	"additional+risk+optimizer",
	"full",
}

var variantConfigs = map[string]Config{
	"base":                         {},
	"additional":                   {Additional: true},
	"additional+folding":           {Additional: true, Folding: true},
	"additional+risk":              {Additional: true, Risk: true},
	"additional+optimizer":         {Additional: true, Optimize: true},
	"additional+folding+risk":      {Additional: true, Folding: true, Risk: true},
	"additional+folding+optimizer": {Additional: true, Folding: true, Optimize: true},
	"additional+risk+optimizer":    {Additional: true, Risk: true, Optimize: true},
	"full":                         {Additional: true, Folding: true, Risk: true, Optimize: true},
}

// Variants lists the stock variant names in a stable order
func Variants() []string {
	out := make([]string, len(variantOrder))
	copy(out, variantOrder)
	return out
}

// NewVariant constructs a stock variant with the default weights
func NewVariant(name string, rnd random.Random) (*Composer, error) {
	return NewVariantWithWeights(name, rnd, DefaultWeights)
}

// NewVariantWithWeights constructs a stock variant with custom tuning
func NewVariantWithWeights(name string, rnd random.Random, w Weights) (*Composer, error) {
	cfg, ok := variantConfigs[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, model.ErrUnknownVariant)
	}
	cfg.Weights = w
	return New(name, rnd, cfg), nil
}
