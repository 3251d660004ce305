package engine

import "math/rand"

type epsilonGreedyAgent struct {
	rng     *rand.Rand
	qvalues *QTable
	epsilon float64
}

func newEpsilonGreedyAgent(rng *rand.Rand, qvalues *QTable, epsilon float64) *epsilonGreedyAgent {
	return &epsilonGreedyAgent{rng: rng, qvalues: qvalues, epsilon: epsilon}
}

// act draws the exploration sample first, then either a uniform action or the greedy one.
func (a *epsilonGreedyAgent) act(state State) Action {
	if a.rng.Float64() < a.epsilon {
		return Action(a.rng.Intn(NumActions))
	}
	return a.qvalues.BestAction(state)
}
