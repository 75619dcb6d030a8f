package strategy

import (
	"sort"

	"github.com/mcoot/schnapsen-go/internal/model"
)

// defaultTopK is how many leading candidates the optimizer re-evaluates
const defaultTopK = 3

// nearTieMargin is how far a candidate may trail the best card play and
// still count as a near-tie worth re-ranking
const nearTieMargin = 5.0

// futureStrengthDiscount scales the value of the cards a candidate keeps in
// hand; held-back points are only banked if a later trick wins them
const futureStrengthDiscount = 0.5

// decisiveProjection outranks every ordinary projection. Assigned to a
// candidate that wins the trick with certainty and reaches 66 doing so.
const decisiveProjection = 1e9

// Optimizer breaks near-ties among the top-scoring card plays with a one-ply
// projection: the immediate trick outcome for the candidate plus the
// discounted strength of the hand left behind. The near-tied leaders trade
// scores among themselves, so the projection reorders close alternatives
// without overruling a clear evaluator preference. Declarations keep their
// scores untouched; they carry bonuses the projection cannot see. The depth
// is fixed, so a decision takes bounded time regardless of how many cards
// remain.
type Optimizer struct {
	est     Estimator
	weights Weights
	topK    int
}

func (o *Optimizer) Apply(st *model.PublicState, scored []scoredMove) ([]scoredMove, error) {
	k := o.topK
	if k <= 0 {
		k = defaultTopK
	}

	// Rank plain card plays by current score, best first
	idxs := make([]int, 0, len(scored))
	for i, sm := range scored {
		if sm.move.Type == model.MovePlayCard && !sm.pinned {
			idxs = append(idxs, i)
		}
	}
	sort.Slice(idxs, func(a, b int) bool {
		return scored[idxs[a]].score > scored[idxs[b]].score
	})
	if len(idxs) > k {
		idxs = idxs[:k]
	}
	// Keep only the near-ties of the leader
	for len(idxs) > 1 {
		last := idxs[len(idxs)-1]
		if scored[idxs[0]].score-scored[last].score <= nearTieMargin {
			break
		}
		idxs = idxs[:len(idxs)-1]
	}
	if len(idxs) < 2 {
		return scored, nil
	}

	out := make([]scoredMove, len(scored))
	copy(out, scored)

	projected := make(map[int]float64, len(idxs))
	for _, i := range idxs {
		projected[i] = o.project(st, out[i])
	}
	ranked := append([]int(nil), idxs...)
	sort.Slice(ranked, func(a, b int) bool {
		pa, pb := projected[ranked[a]], projected[ranked[b]]
		if pa != pb {
			return pa > pb
		}
		sa, sb := scored[ranked[a]].score, scored[ranked[b]].score
		if sa != sb {
			return sa > sb
		}
		return ranked[a] < ranked[b]
	})

	// Hand the band's scores back out in projection order; the band keeps
	// its place in the overall ranking
	for rank, i := range ranked {
		out[i].score = scored[idxs[rank]].score
	}
	return out, nil
}

// project scores a candidate by the point differential of the immediate
// trick plus the discounted strength of the remaining hand. A certain win
// whose guaranteed haul reaches 66 outranks everything.
func (o *Optimizer) project(st *model.PublicState, sm scoredMove) float64 {
	stake := float64(sm.card.Points())
	// The cheapest answer a won trick can fetch is a jack
	guaranteed := stake + float64(model.Jack.Points())
	if st.LeaderMove != nil {
		if led, ok := st.LeaderMove.PlayedCard(); ok {
			stake += float64(led.Points())
		}
		guaranteed = stake
	} else {
		// The opponent's answer is unknown; assume an average unseen card
		stake += meanUnseenPoints(st)
	}

	if sm.certainWin && float64(st.MyPoints.Total())+guaranteed >= 66 {
		return decisiveProjection
	}

	diff := (1 - 2*sm.loseProb) * stake
	return o.weights.TrickPoints*diff + futureStrengthDiscount*o.remainingStrength(st, sm.card)
}

// remainingStrength sums, over the cards the candidate leaves in hand, the
// points each would win weighted by its chance of winning a trick it leads
func (o *Optimizer) remainingStrength(st *model.PublicState, played model.Card) float64 {
	// Next ply we are leading, whatever this trick looked like
	next := *st
	next.LeaderMove = nil

	strength := 0.0
	skipped := false
	for _, c := range st.Hand {
		if c == played && !skipped {
			skipped = true
			continue
		}
		p, err := o.est.BeatProbability(&next, c)
		if err != nil {
			continue
		}
		strength += (1 - p) * float64(c.Points())
	}
	return strength
}
