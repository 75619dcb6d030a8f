package arena

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/mcoot/schnapsen-go/internal/dependencies/clock"
	"github.com/mcoot/schnapsen-go/internal/dependencies/random"
	"github.com/mcoot/schnapsen-go/internal/model"
	"github.com/mcoot/schnapsen-go/internal/services/game"
	"github.com/mcoot/schnapsen-go/internal/services/strategy"
	"github.com/mcoot/schnapsen-go/internal/storage"
)

const (
	matchIDLength   = 12
	matchIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// Per-pair seeds stride by a prime so neighbouring pairs never share a
	// deal; bot seeds are offset from the deal seed so a bot's tie-breaking
	// stream is independent of the shuffle
	pairSeedStride = 1_000_003
	botSeedOffsetA = 7919
	botSeedOffsetB = 104729
)

// Service runs tournaments between strategy variants and persists the results
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	rnd     random.Random
	logger  *slog.Logger
}

// New creates a new arena service
func New(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		rnd:     rnd,
		logger:  logger,
	}
}

// TournamentSpec describes one tournament: each pair is two games on the same
// deal with the lead swapped, so a run of N pairs plays 2N games
type TournamentSpec struct {
	VariantA string
	VariantB string
	Pairs    int
	Seed     int64
	Workers  int
	Weights  strategy.Weights
}

// PairScore is the aggregated outcome of one seed-sharing pair of games
type PairScore struct {
	WinsA       int
	WinsB       int
	GamePointsA int
	GamePointsB int
}

func (p *PairScore) add(other PairScore) {
	p.WinsA += other.WinsA
	p.WinsB += other.WinsB
	p.GamePointsA += other.GamePointsA
	p.GamePointsB += other.GamePointsB
}

// PlaySingle plays one game between two variants on a fixed seed; the first
// variant takes the opening lead
func PlaySingle(leaderVariant, followerVariant string, w strategy.Weights, seed int64) (*game.Result, error) {
	leader, err := strategy.NewVariantWithWeights(leaderVariant, random.NewSeeded(seed+botSeedOffsetA), w)
	if err != nil {
		return nil, err
	}
	follower, err := strategy.NewVariantWithWeights(followerVariant, random.NewSeeded(seed+botSeedOffsetB), w)
	if err != nil {
		return nil, err
	}
	return game.PlayGame(leader, follower, random.NewSeeded(seed))
}

// PlayPair plays the two games of one pair: the same deal seed in both, with
// variant A leading the first game and variant B the second. Fresh bots are
// built per game so the swapped game replays the identical deal.
func PlayPair(variantA, variantB string, w strategy.Weights, seed int64) (PairScore, error) {
	var score PairScore

	for swap := 0; swap < 2; swap++ {
		botA, err := strategy.NewVariantWithWeights(variantA, random.NewSeeded(seed+botSeedOffsetA), w)
		if err != nil {
			return PairScore{}, err
		}
		botB, err := strategy.NewVariantWithWeights(variantB, random.NewSeeded(seed+botSeedOffsetB), w)
		if err != nil {
			return PairScore{}, err
		}

		deal := random.NewSeeded(seed)
		aSeat := game.SeatA
		var result *game.Result
		if swap == 0 {
			result, err = game.PlayGame(botA, botB, deal)
		} else {
			aSeat = game.SeatB
			result, err = game.PlayGame(botB, botA, deal)
		}
		if err != nil {
			return PairScore{}, fmt.Errorf("pair seed %d game %d: %w", seed, swap+1, err)
		}

		if result.Winner == aSeat {
			score.WinsA++
			score.GamePointsA += result.GamePoints
		} else {
			score.WinsB++
			score.GamePointsB += result.GamePoints
		}
	}

	return score, nil
}

// RunTournament plays the spec's pairs across a worker pool, aggregates the
// tally and persists it as a match record
func (s *Service) RunTournament(ctx context.Context, spec TournamentSpec) (*model.MatchRecord, error) {
	if spec.Pairs <= 0 {
		return nil, fmt.Errorf("tournament needs at least one pair, got %d", spec.Pairs)
	}
	// Fail fast on unknown variant names before spinning up workers
	if _, err := strategy.NewVariantWithWeights(spec.VariantA, random.NewSeeded(0), spec.Weights); err != nil {
		return nil, err
	}
	if _, err := strategy.NewVariantWithWeights(spec.VariantB, random.NewSeeded(0), spec.Weights); err != nil {
		return nil, err
	}

	workers := spec.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > spec.Pairs {
		workers = spec.Pairs
	}

	s.logger.Info("starting tournament",
		"variant_a", spec.VariantA,
		"variant_b", spec.VariantB,
		"pairs", spec.Pairs,
		"seed", spec.Seed,
		"workers", workers)

	jobs := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var tally PairScore
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				score, err := PlayPair(spec.VariantA, spec.VariantB, spec.Weights, pairSeed(spec.Seed, i))
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					tally.add(score)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for i := 0; i < spec.Pairs; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	record := &model.MatchRecord{
		ID:          model.MatchID(s.rnd.String(matchIDLength, matchIDAlphabet)),
		VariantA:    spec.VariantA,
		VariantB:    spec.VariantB,
		Seed:        spec.Seed,
		Games:       spec.Pairs * 2,
		WinsA:       tally.WinsA,
		WinsB:       tally.WinsB,
		GamePointsA: tally.GamePointsA,
		GamePointsB: tally.GamePointsB,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SaveMatchRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("saving match record: %w", err)
	}

	s.logger.Info("tournament complete",
		"match_id", record.ID,
		"games", record.Games,
		"wins_a", record.WinsA,
		"wins_b", record.WinsB)

	return record, nil
}

// pairSeed derives the deal seed for the i-th pair of a tournament
func pairSeed(base int64, i int) int64 {
	return base + int64(i)*pairSeedStride
}
