package engine

import (
	"context"
	"math/rand"
)

const (
	StatusEpisodeComplete = "episode_complete"
	StatusDone            = "done"
	StatusCancelled       = "cancelled"
)

const (
	DefaultAlpha    = 0.1
	DefaultGamma    = 0.9
	DefaultEpsilon  = 0.1
	DefaultEpisodes = 1000
	DefaultMaxSteps = 100
)

type Config struct {
	Alpha    float64 `json:"alpha"`
	Gamma    float64 `json:"gamma"`
	Epsilon  float64 `json:"epsilon"`
	Episodes int     `json:"episodes"`
	MaxSteps int     `json:"maxSteps"`
}

func DefaultConfig() Config {
	return Config{
		Alpha:    DefaultAlpha,
		Gamma:    DefaultGamma,
		Epsilon:  DefaultEpsilon,
		Episodes: DefaultEpisodes,
		MaxSteps: DefaultMaxSteps,
	}
}

// Snapshot reports trainer progress after an episode.
type Snapshot struct {
	Episode           int
	EpisodeSteps      int
	EpisodeReward     float64
	GoalReached       bool
	SuccessCount      int
	EpisodesCompleted int
	TotalReward       float64
	TotalSteps        int
	ValueMap          [][]float64
	Status            string
}

// Summary is the final tally of a training run.
type Summary struct {
	Episodes     int
	SuccessCount int
	TotalReward  float64
	TotalSteps   int
}

func (s Summary) SuccessRate() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.SuccessCount) / float64(s.Episodes)
}

func (s Summary) AverageSteps() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.TotalSteps) / float64(s.Episodes)
}

type Trainer struct {
	cfg               Config
	start             State
	goal              State
	rewards           RewardModel
	agent             *epsilonGreedyAgent
	qvalues           *QTable
	visits            *visitTable
	successCount      int
	episodesCompleted int
	totalReward       float64
	totalSteps        int
}

func sanitizeConfig(cfg Config) Config {
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		cfg.Alpha = DefaultAlpha
	}
	if cfg.Gamma < 0 || cfg.Gamma >= 1 {
		cfg.Gamma = DefaultGamma
	}
	if cfg.Epsilon < 0 || cfg.Epsilon > 1 {
		cfg.Epsilon = DefaultEpsilon
	}
	if cfg.Episodes < 0 {
		cfg.Episodes = 0
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	return cfg
}

// NewTrainer initializes the Q-table for grid. The grid is only read.
func NewTrainer(grid Grid, cfg Config, rng *rand.Rand) *Trainer {
	cfg = sanitizeConfig(cfg)
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	qvalues := NewQTable(grid)
	return &Trainer{
		cfg:     cfg,
		start:   grid.Start(),
		goal:    grid.Goal(),
		rewards: NewRewardModel(grid),
		agent:   newEpsilonGreedyAgent(rng, qvalues, cfg.Epsilon),
		qvalues: qvalues,
		visits:  newVisitTable(grid.Rows(), grid.Cols()),
	}
}

func (t *Trainer) Config() Config {
	return t.cfg
}

// QTable returns the trained table. Do not read it while Run is in flight.
func (t *Trainer) QTable() *QTable {
	return t.qvalues
}

func (t *Trainer) Visits() [][]int {
	return t.visits.cloneData()
}

// Run trains for the configured number of episodes, streaming one snapshot per episode.
// The channel is closed once training stops.
func (t *Trainer) Run(ctx context.Context) <-chan Snapshot {
	out := make(chan Snapshot)
	go func() {
		defer close(out)
		for episode := 1; episode <= t.cfg.Episodes; episode++ {
			select {
			case <-ctx.Done():
				out <- t.snapshot(StatusCancelled, episode, 0, 0, false)
				return
			default:
			}
			steps, reward, reached := t.runEpisode()
			out <- t.snapshot(StatusEpisodeComplete, episode, steps, reward, reached)
		}
		out <- t.snapshot(StatusDone, t.cfg.Episodes, 0, 0, false)
	}()
	return out
}

// Train runs every episode and blocks until training is done.
func (t *Trainer) Train(ctx context.Context) (Summary, error) {
	var final Snapshot
	for snapshot := range t.Run(ctx) {
		final = snapshot
	}
	summary := t.Summary()
	if final.Status == StatusCancelled {
		return summary, ctx.Err()
	}
	return summary, nil
}

func (t *Trainer) runEpisode() (int, float64, bool) {
	state := t.start
	steps := 0
	episodeReward := 0.0
	if !t.qvalues.Has(state) {
		t.episodesCompleted++
		return 0, 0, false
	}
	t.visits.record(state)
	for state != t.goal && steps < t.cfg.MaxSteps {
		action := t.agent.act(state)
		next := state.Apply(action)
		reward := t.rewards.Reward(next)
		// Non-keys block the move: walls, out-of-bounds and foreign cell codes.
		if reward == WallPenalty || !t.qvalues.Has(next) {
			next = state
		}
		t.updateQLearning(state, action, reward, next)
		state = next
		steps++
		episodeReward += reward
		t.visits.record(state)
	}
	reached := state == t.goal
	if reached {
		t.successCount++
	}
	t.totalReward += episodeReward
	t.totalSteps += steps
	t.episodesCompleted++
	return steps, episodeReward, reached
}

// updateQLearning bootstraps from next even when next == state after a blocked move.
func (t *Trainer) updateQLearning(state State, action Action, reward float64, next State) {
	current := t.qvalues.get(state, action)
	target := reward + t.cfg.Gamma*t.qvalues.MaxValue(next)
	t.qvalues.set(state, action, current+t.cfg.Alpha*(target-current))
}

// Summary tallies the episodes completed so far.
func (t *Trainer) Summary() Summary {
	return Summary{
		Episodes:     t.episodesCompleted,
		SuccessCount: t.successCount,
		TotalReward:  t.totalReward,
		TotalSteps:   t.totalSteps,
	}
}

func (t *Trainer) snapshot(status string, episode, episodeSteps int, episodeReward float64, reached bool) Snapshot {
	return Snapshot{
		Episode:           episode,
		EpisodeSteps:      episodeSteps,
		EpisodeReward:     episodeReward,
		GoalReached:       reached,
		SuccessCount:      t.successCount,
		EpisodesCompleted: t.episodesCompleted,
		TotalReward:       t.totalReward,
		TotalSteps:        t.totalSteps,
		ValueMap:          t.qvalues.ValueMap(),
		Status:            status,
	}
}
