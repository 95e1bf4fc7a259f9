// Package equity estimates showdown equity for a hand by Monte Carlo
// simulation against random opponent hands.
package equity

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/poker"
)

const (
	// DefaultIterations keeps the 95% confidence interval around one
	// point of equity without a noticeable wait.
	DefaultIterations = 10000

	// Below this many iterations the goroutine overhead outweighs the
	// parallel speedup.
	parallelThreshold = 500

	maxWorkers   = 8
	maxOpponents = 8

	progressInterval = time.Second
)

// Config holds estimator settings. Zero values select defaults.
type Config struct {
	Opponents  int   // opposing hands per sample, default 1
	Iterations int   // Monte Carlo samples, default DefaultIterations
	Workers    int   // parallel workers, default NumCPU capped at 8
	Seed       int64 // base RNG seed, 0 derives one from the wall clock
	Logger     *log.Logger
	Clock      quartz.Clock
}

// Estimator runs Monte Carlo equity estimates.
type Estimator struct {
	config Config
}

// New creates an estimator, filling configuration defaults.
func New(config Config) *Estimator {
	if config.Opponents == 0 {
		config.Opponents = 1
	}
	if config.Iterations <= 0 {
		config.Iterations = DefaultIterations
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
		if config.Workers > maxWorkers {
			config.Workers = maxWorkers
		}
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Estimator{config: config}
}

// Result aggregates the sampled outcomes of an equity run.
type Result struct {
	Wins    int
	Ties    int
	Losses  int
	Samples int
	Elapsed time.Duration

	tieShare float64
}

// Equity returns the average pot share the hand wins, with ties split
// between the tied hands.
func (r *Result) Equity() float64 {
	if r.Samples == 0 {
		return 0
	}
	return (float64(r.Wins) + r.tieShare) / float64(r.Samples)
}

// ConfidenceInterval95 returns the 95% confidence bounds around the
// equity estimate, clamped to [0, 1].
func (r *Result) ConfidenceInterval95() (float64, float64) {
	if r.Samples == 0 {
		return 0, 0
	}
	p := r.Equity()
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(r.Samples))
	lo, hi := p-margin, p+margin
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	return lo, hi
}

func (r *Result) String() string {
	lo, hi := r.ConfidenceInterval95()
	return fmt.Sprintf("%.1f%% (95%% CI %.1f%%-%.1f%%, %d samples)",
		r.Equity()*100, lo*100, hi*100, r.Samples)
}

// Run estimates the equity of hand against the configured number of
// random opponent hands, dealing out the missing table cards each
// sample. A nil table estimates preflop.
func (e *Estimator) Run(ctx context.Context, hand *poker.Hand, table *poker.Table) (*Result, error) {
	if hand == nil || hand.Len() != poker.HandSize {
		return nil, fmt.Errorf("equity needs a full two-card hand")
	}
	if e.config.Opponents < 1 || e.config.Opponents > maxOpponents {
		return nil, fmt.Errorf("opponents must be between 1 and %d, got %d", maxOpponents, e.config.Opponents)
	}

	var board []poker.Card
	if table != nil {
		board = table.Cards()
	}

	used := newCardSet(hand.Cards())
	for _, c := range board {
		if used.contains(c) {
			return nil, fmt.Errorf("duplicate card: %s", c)
		}
		used.add(c)
	}

	available := make([]poker.Card, 0, 52-len(board)-poker.HandSize)
	for suit := poker.Clubs; suit <= poker.Spades; suit++ {
		for w := poker.Two; w <= poker.Ace; w++ {
			c := poker.Card{Weight: w, Suit: suit}
			if !used.contains(c) {
				available = append(available, c)
			}
		}
	}

	run := &runState{
		hole:      hand.Cards(),
		board:     board,
		available: available,
		opponents: e.config.Opponents,
	}

	start := e.config.Clock.Now()
	rng := randutil.New(e.config.Seed)

	// Periodic progress at debug level, driven by the injected clock.
	progressCtx, stopProgress := context.WithCancel(ctx)
	defer stopProgress()
	var completed atomic.Int64
	e.config.Clock.TickerFunc(progressCtx, progressInterval, func() error {
		e.config.Logger.Debug("equity progress",
			"done", completed.Load(),
			"total", e.config.Iterations)
		return nil
	}, "progress")

	var total outcome
	var err error
	if e.config.Iterations < parallelThreshold || e.config.Workers == 1 {
		total, err = run.sample(ctx, e.config.Iterations, rng, &completed)
	} else {
		total, err = e.parallel(ctx, run, rng, &completed)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{
		Wins:     total.wins,
		Ties:     total.ties,
		Losses:   total.losses,
		Samples:  total.samples,
		Elapsed:  e.config.Clock.Since(start),
		tieShare: total.tieShare,
	}
	e.config.Logger.Debug("equity estimated",
		"hand", hand.Type(),
		"opponents", e.config.Opponents,
		"samples", result.Samples,
		"equity", fmt.Sprintf("%.4f", result.Equity()),
		"elapsed", result.Elapsed)
	return result, nil
}

// parallel splits the iterations across workers, each with an
// independently seeded RNG so runs stay reproducible for a given seed
// and worker count.
func (e *Estimator) parallel(ctx context.Context, run *runState, rng *rand.Rand, completed *atomic.Int64) (outcome, error) {
	workers := e.config.Workers
	perWorker := e.config.Iterations / workers
	remainder := e.config.Iterations % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan outcome, workers)

	for w := 0; w < workers; w++ {
		iterations := perWorker
		if w < remainder {
			iterations++
		}
		seed := rng.Int63()

		g.Go(func() error {
			workerRng := randutil.New(seed)
			out, err := run.sample(ctx, iterations, workerRng, completed)
			if err != nil {
				return err
			}
			select {
			case results <- out:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	var total outcome
	for out := range results {
		total.add(out)
	}
	if err := g.Wait(); err != nil {
		return outcome{}, err
	}
	return total, nil
}

type runState struct {
	hole      []poker.Card
	board     []poker.Card
	available []poker.Card
	opponents int
}

type outcome struct {
	wins     int
	ties     int
	losses   int
	samples  int
	tieShare float64
}

func (o *outcome) add(other outcome) {
	o.wins += other.wins
	o.ties += other.ties
	o.losses += other.losses
	o.samples += other.samples
	o.tieShare += other.tieShare
}

// sample runs the Monte Carlo loop with its own RNG and scratch space,
// so several workers can sample concurrently.
func (r *runState) sample(ctx context.Context, iterations int, rng *rand.Rand, completed *atomic.Int64) (outcome, error) {
	var out outcome
	scratch := make([]poker.Card, len(r.available))
	heroGroup := poker.NewCardGroup(poker.MaxGroupCards)
	oppGroup := poker.NewCardGroup(poker.MaxGroupCards)
	need := 2*r.opponents + (poker.TableMax - len(r.board))

	for i := 0; i < iterations; i++ {
		if i%1024 == 0 {
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			default:
			}
		}

		// Draw opponent holes and the board completion in one pass of
		// partial Fisher-Yates over the undealt cards.
		copy(scratch, r.available)
		for j := 0; j < need; j++ {
			k := j + rng.Intn(len(scratch)-j)
			scratch[j], scratch[k] = scratch[k], scratch[j]
		}
		drawn := scratch[:need]
		oppHoles := drawn[:2*r.opponents]
		boardFill := drawn[2*r.opponents:]

		heroGroup.Clear()
		if err := fillGroup(heroGroup, r.hole, r.board, boardFill); err != nil {
			return out, err
		}
		heroCombo, err := poker.Classify(heroGroup)
		if err != nil {
			return out, err
		}

		beaten := false
		tied := 0
		for o := 0; o < r.opponents; o++ {
			oppGroup.Clear()
			if err := fillGroup(oppGroup, oppHoles[2*o:2*o+2], r.board, boardFill); err != nil {
				return out, err
			}
			oppCombo, err := poker.Classify(oppGroup)
			if err != nil {
				return out, err
			}
			c := heroCombo.Compare(oppCombo)
			if c < 0 {
				beaten = true
				break
			}
			if c == 0 {
				tied++
			}
		}

		switch {
		case beaten:
			out.losses++
		case tied > 0:
			out.ties++
			out.tieShare += 1 / float64(tied+1)
		default:
			out.wins++
		}
		out.samples++
		completed.Add(1)
	}
	return out, nil
}

func fillGroup(g *poker.CardGroup, parts ...[]poker.Card) error {
	for _, part := range parts {
		if err := g.Add(part...); err != nil {
			return err
		}
	}
	return nil
}

// cardSet is a 52-bit membership set over deck cards.
type cardSet uint64

func cardBit(c poker.Card) int {
	return int(c.Weight-poker.Two)*4 + int(c.Suit)
}

func (s *cardSet) add(c poker.Card) {
	*s |= 1 << cardBit(c)
}

func (s cardSet) contains(c poker.Card) bool {
	return s&(1<<cardBit(c)) != 0
}

func newCardSet(cards []poker.Card) cardSet {
	var s cardSet
	for _, c := range cards {
		s.add(c)
	}
	return s
}
