// Package report turns training output into console tables and HTML charts.
package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"qmaze/internal/engine"
)

// Stats summarises per-episode rewards and step counts.
type Stats struct {
	Episodes      int
	SuccessRate   float64
	MeanReward    float64
	StdDevReward  float64
	BestReward    float64
	MeanSteps     float64
	StdDevSteps   float64
	FirstSuccess  int // 1-based episode of the first goal reach, 0 if never
	LastFailedRun int // 1-based episode of the last failed episode, 0 if none
}

// EpisodeSnapshots keeps only the per-episode snapshots of a training stream.
func EpisodeSnapshots(snapshots []engine.Snapshot) []engine.Snapshot {
	episodes := make([]engine.Snapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if s.Status == engine.StatusEpisodeComplete {
			episodes = append(episodes, s)
		}
	}
	return episodes
}

func Summarize(episodes []engine.Snapshot) Stats {
	episodes = EpisodeSnapshots(episodes)
	stats := Stats{Episodes: len(episodes)}
	if len(episodes) == 0 {
		return stats
	}
	rewards := make([]float64, len(episodes))
	steps := make([]float64, len(episodes))
	successes := 0
	for i, e := range episodes {
		rewards[i] = e.EpisodeReward
		steps[i] = float64(e.EpisodeSteps)
		if e.GoalReached {
			successes++
			if stats.FirstSuccess == 0 {
				stats.FirstSuccess = e.Episode
			}
		} else {
			stats.LastFailedRun = e.Episode
		}
	}
	stats.SuccessRate = float64(successes) / float64(len(episodes))
	stats.MeanReward, stats.StdDevReward = stat.MeanStdDev(rewards, nil)
	stats.MeanSteps, stats.StdDevSteps = stat.MeanStdDev(steps, nil)
	stats.BestReward = floats.Max(rewards)
	return stats
}

func (s Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "summary: episodes=%d success_rate=%.2f avg_reward=%.2f (sd %.2f) best_reward=%.2f avg_steps=%.2f (sd %.2f)\n",
		s.Episodes, s.SuccessRate, s.MeanReward, s.StdDevReward, s.BestReward, s.MeanSteps, s.StdDevSteps)
	if s.FirstSuccess > 0 {
		fmt.Fprintf(w, "first success at episode %d, last failure at episode %d\n", s.FirstSuccess, s.LastFailedRun)
	}
}
