package strategy

import (
	"github.com/mcoot/schnapsen-go/internal/dependencies/random"
	"github.com/mcoot/schnapsen-go/internal/model"
)

// Config selects the optional layers and the tuning a Composer plays with.
// It is fixed at construction and immutable afterwards.
type Config struct {
	Additional bool
	Folding    bool
	Risk       bool
	Optimize   bool
	Weights    Weights
}

// layer adjusts the evaluator's scores. Layers are optional refinements: if
// one fails the composer keeps the pre-layer scores, because a
// suboptimal-but-legal move beats no move at all.
type layer interface {
	Apply(st *model.PublicState, scored []scoredMove) ([]scoredMove, error)
}

// Composer assembles the enabled layers into one decision pipeline:
// estimator -> evaluator -> folding -> risk -> optimizer -> arg-max.
// It implements the Player interface the engine drives.
type Composer struct {
	name   string
	rnd    random.Random
	cfg    Config
	eval   *Evaluator
	layers []layer
}

// New creates a Composer with the given display name, random source and
// configuration
func New(name string, rnd random.Random, cfg Config) *Composer {
	c := &Composer{
		name: name,
		rnd:  rnd,
		cfg:  cfg,
		eval: newEvaluator(cfg.Weights, cfg.Additional),
	}
	if cfg.Folding {
		c.layers = append(c.layers, &FoldingAdvisor{weights: cfg.Weights})
	}
	if cfg.Risk {
		c.layers = append(c.layers, &RiskAssessor{weights: cfg.Weights})
	}
	if cfg.Optimize {
		c.layers = append(c.layers, &Optimizer{weights: cfg.Weights, topK: defaultTopK})
	}
	return c
}

// Name returns the composer's display name
func (c *Composer) Name() string {
	return c.name
}

// Config returns the composer's immutable configuration
func (c *Composer) Config() Config {
	return c.cfg
}

// ChooseMove returns exactly one move from the supplied legal set. An empty
// legal set is a caller contract breach.
func (c *Composer) ChooseMove(st *model.PublicState, legal []model.Move) (model.Move, error) {
	if len(legal) == 0 {
		return model.Move{}, model.ErrNoLegalMoves
	}
	if len(legal) == 1 {
		return legal[0], nil
	}

	scored, err := c.eval.Score(st, legal)
	if err != nil {
		return model.Move{}, err
	}

	for _, l := range c.layers {
		adjusted, layerErr := l.Apply(st, scored)
		if layerErr != nil {
			continue
		}
		scored = adjusted
	}

	return c.pick(scored), nil
}

// pick selects the arg-max move. Ties break deterministically by lowest card
// points, then canonical card order; the random source only decides ties
// that survive both keys.
func (c *Composer) pick(scored []scoredMove) model.Move {
	best := []int{0}
	for i := 1; i < len(scored); i++ {
		switch compareCandidates(scored[i], scored[best[0]]) {
		case 1:
			best = best[:0]
			best = append(best, i)
		case 0:
			best = append(best, i)
		}
	}
	if len(best) == 1 {
		return scored[best[0]].move
	}
	return scored[best[c.rnd.Intn(len(best))]].move
}

// compareCandidates returns 1 if a ranks above b, -1 if below, 0 if nothing
// deterministic separates them
func compareCandidates(a, b scoredMove) int {
	if a.score != b.score {
		if a.score > b.score {
			return 1
		}
		return -1
	}
	if a.hasCard != b.hasCard {
		// Prefer putting a card down over a declaration at equal score
		if a.hasCard {
			return 1
		}
		return -1
	}
	if a.hasCard {
		if a.card.Points() != b.card.Points() {
			if a.card.Points() < b.card.Points() {
				return 1
			}
			return -1
		}
		if a.card.Index() != b.card.Index() {
			if a.card.Index() < b.card.Index() {
				return 1
			}
			return -1
		}
	}
	return 0
}
