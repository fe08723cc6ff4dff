package simulator

import (
	"math/rand/v2"

	"github.com/okian/matchtag/internal/domain/model"
)

// Generator tuning.
const (
	zoneCount        = 9
	maxGapSeconds    = 45
	zoneProbability  = 0.7
	crossProbability = 0.35
	shotProbability  = 0.3
)

var (
	matchEventTypes = []string{"Transition", "Corner", "Dead-ball", "Slow-attck", "Penalty"}
	crossOutcomes   = []model.CrossOutcome{
		model.CrossNone, model.CrossCompleted, model.CrossBlocked, model.CrossIntercepted, model.CrossSaved,
	}
	shotOutcomes = []model.ShotOutcome{
		model.ShotNone, model.ShotGoal, model.ShotPost, model.ShotBlocked, model.ShotOut, model.ShotSaved,
	}
)

// Generator produces plausible, always valid match events in time order.
type Generator struct {
	rng   *rand.Rand
	clock float64
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns the next event of the match.
func (g *Generator) Next() model.EventInput {
	g.clock += float64(1 + g.rng.IntN(maxGapSeconds))
	sec := int(g.clock)

	in := model.EventInput{
		Minute:       float64(sec / 60),
		Second:       float64(sec % 60),
		TimeInSecond: float64(sec),
		Team:         model.TeamHome,
		EventType:    matchEventTypes[g.rng.IntN(len(matchEventTypes))],
	}
	if g.rng.IntN(2) == 1 {
		in.Team = model.TeamAway
	}
	if g.rng.Float64() < zoneProbability {
		in.Zone = model.Ptr(g.rng.IntN(zoneCount))
	}
	if g.rng.Float64() < crossProbability {
		in.CrossOutcome = model.Ptr(crossOutcomes[g.rng.IntN(len(crossOutcomes))])
	}
	if g.rng.Float64() < shotProbability && shotAllowed(in.CrossOutcome) {
		in.ShotOutcome = model.Ptr(shotOutcomes[g.rng.IntN(len(shotOutcomes))])
	}
	return in
}

// Match returns n events.
func (g *Generator) Match(n int) []model.EventInput {
	out := make([]model.EventInput, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

func shotAllowed(c *model.CrossOutcome) bool {
	return c == nil || *c == model.CrossNone || *c == model.CrossCompleted
}
