//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"syscall/js"

	"qmaze/internal/engine"
	"qmaze/internal/maze"
	"qmaze/internal/solver"
)

var (
	startFnOnce sync.Once
	solveMu     sync.Mutex
	currentCtx  context.CancelFunc
	onSnapshot  js.Value
)

// solveRequest is the JSON accepted by qmazeSolve alongside the grid text.
type solveRequest struct {
	engine.Config
	Seed int64 `json:"seed"`
}

func main() {
	registerCallbacks()
	// Prevent the program from exiting.
	select {}
}

func registerCallbacks() {
	startFnOnce.Do(func() {
		js.Global().Set("qmazeRegisterSnapshotHandler", js.FuncOf(registerSnapshotHandler))
		js.Global().Set("qmazeSolve", js.FuncOf(startSolve))
		js.Global().Set("qmazeStop", js.FuncOf(stopSolve))
	})
}

func registerSnapshotHandler(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 || args[0].Type() != js.TypeFunction {
		fmt.Println("registerSnapshotHandler requires a function argument")
		return nil
	}
	onSnapshot = args[0]
	return nil
}

// startSolve(gridText, configJSON, doneCallback) trains in the background and calls
// doneCallback({solved, grid, steps, error}) when finished.
func startSolve(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 || args[2].Type() != js.TypeFunction {
		fmt.Println("qmazeSolve requires grid text, a JSON config string and a callback")
		return nil
	}
	grid, err := maze.ParseString(args[0].String())
	if err != nil {
		fmt.Printf("invalid grid: %v\n", err)
		return nil
	}
	req := solveRequest{Config: engine.DefaultConfig(), Seed: 1}
	if raw := strings.TrimSpace(args[1].String()); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			fmt.Printf("invalid config: %v\n", err)
			return nil
		}
	}
	done := args[2]

	solveMu.Lock()
	if currentCtx != nil {
		currentCtx()
	}
	ctx, cancel := context.WithCancel(context.Background())
	currentCtx = cancel
	solveMu.Unlock()

	s := &solver.Solver{
		Config: req.Config,
		Seed:   req.Seed,
		OnSnapshot: func(snapshot engine.Snapshot) {
			if onSnapshot.IsUndefined() || onSnapshot.IsNull() {
				return
			}
			onSnapshot.Invoke(snapshotToJS(snapshot))
		},
	}
	go func() {
		result, err := s.Run(ctx, grid)
		payload := map[string]interface{}{
			"solved": err == nil,
			"grid":   maze.Format(grid),
			"steps":  0,
			"error":  "",
		}
		if err == nil {
			payload["steps"] = result.Path.Steps()
		} else if !errors.Is(err, solver.ErrNoPath) {
			payload["error"] = err.Error()
		} else {
			payload["error"] = "no path found"
		}
		done.Invoke(js.ValueOf(payload))
	}()
	return nil
}

func stopSolve(this js.Value, args []js.Value) interface{} {
	solveMu.Lock()
	if currentCtx != nil {
		currentCtx()
		currentCtx = nil
	}
	solveMu.Unlock()
	return nil
}

func snapshotToJS(snapshot engine.Snapshot) js.Value {
	valueMap := make([]interface{}, len(snapshot.ValueMap))
	for i, row := range snapshot.ValueMap {
		rowCopy := make([]interface{}, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				rowCopy[j] = nil
				continue
			}
			rowCopy[j] = v
		}
		valueMap[i] = rowCopy
	}
	payload := map[string]interface{}{
		"episode":           snapshot.Episode,
		"episodeSteps":      snapshot.EpisodeSteps,
		"episodeReward":     snapshot.EpisodeReward,
		"goalReached":       snapshot.GoalReached,
		"valueMap":          valueMap,
		"successCount":      snapshot.SuccessCount,
		"episodesCompleted": snapshot.EpisodesCompleted,
		"totalReward":       snapshot.TotalReward,
		"totalSteps":        snapshot.TotalSteps,
		"status":            snapshot.Status,
	}
	return js.ValueOf(payload)
}
