package batch

import (
	"Ballast/internal/calc/buoyancy"
	"Ballast/internal/calc/geometry"
	"Ballast/internal/calc/safety"
	"Ballast/internal/calc/stage"
	"fmt"
)

// Order is the sequence in which a sweep completes the structure.
type Order string

const (
	BottomUp Order = "bottom-up"
	TopDown  Order = "top-down"
)

// MaxItems caps a batch request.
const MaxItems = 50

type SweepInput struct {
	Base  buoyancy.Input `json:"base"`
	Order Order          `json:"order"`
}

// Stage is one step of a sweep: which parts are built and the resulting check.
type Stage struct {
	Index        int            `json:"index"`
	Label        string         `json:"label"`
	Roof         bool           `json:"roof"`
	Levels       []bool         `json:"levels"`
	WeightKN     float64        `json:"weight_kn"`
	UpliftKN     float64        `json:"uplift_kn"`
	SafetyFactor float64        `json:"safety_factor"`
	Verdict      safety.Verdict `json:"verdict"`
}

type SweepResult struct {
	Order        Order   `json:"order"`
	Target       float64 `json:"target"`
	Stages       []Stage `json:"stages"`
	FirstPassing int     `json:"first_passing"`
}

func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", BottomUp:
		return BottomUp, nil
	case TopDown:
		return TopDown, nil
	}
	return "", geometry.NewConfigError("order", "unknown order %q", s)
}

// Sweep evaluates the construction sequence stage by stage, starting with
// nothing built and ending with every flag set. The completion flags of Base
// are ignored.
func Sweep(in SweepInput) (SweepResult, error) {
	order, err := ParseOrder(string(in.Order))
	if err != nil {
		return SweepResult{}, err
	}
	if err := buoyancy.Validate(in.Base); err != nil {
		return SweepResult{}, err
	}
	n := len(in.Base.Levels)
	out := SweepResult{Order: order, Target: in.Base.Target(), FirstPassing: -1}

	for k := 0; k <= n+1; k++ {
		roof, levels, label := stageFlags(order, n, k)
		snap := withFlags(in.Base, roof, levels)
		res, err := buoyancy.Calculate(snap)
		if err != nil {
			return SweepResult{}, fmt.Errorf("stage %d: %w", k, err)
		}
		st := Stage{
			Index:        k,
			Label:        label,
			Roof:         roof,
			Levels:       levels,
			WeightKN:     res.Summary.TotalWeight,
			UpliftKN:     res.Summary.TotalUplift,
			SafetyFactor: res.Summary.SafetyFactor,
			Verdict:      res.Summary.Verdict,
		}
		if out.FirstPassing < 0 && res.Summary.Passed() {
			out.FirstPassing = k
		}
		out.Stages = append(out.Stages, st)
	}
	return out, nil
}

func stageFlags(order Order, n, k int) (bool, []bool, string) {
	levels := make([]bool, n)
	if k == 0 {
		return false, levels, "footing only"
	}
	if order == TopDown {
		for i := 0; i < k-1 && i < n; i++ {
			levels[i] = true
		}
		if k == 1 {
			return true, levels, "+" + stage.GroupRoof
		}
		return true, levels, "+" + stage.LevelName(k-2)
	}
	for i := n - k; i < n; i++ {
		if i >= 0 {
			levels[i] = true
		}
	}
	if k == n+1 {
		return true, levels, "+" + stage.GroupRoof
	}
	return false, levels, "+" + stage.LevelName(n-k)
}

func withFlags(base buoyancy.Input, roof bool, done []bool) buoyancy.Input {
	snap := base
	snap.Roof.Done = roof
	snap.Levels = make([]stage.Level, len(base.Levels))
	copy(snap.Levels, base.Levels)
	for i := range snap.Levels {
		snap.Levels[i].Done = done[i]
	}
	return snap
}

type BatchInput struct {
	Items []buoyancy.Input `json:"items"`
}

type BatchResult struct {
	Results []buoyancy.Result `json:"results"`
	Passed  int               `json:"passed"`
}

// Calculate evaluates several snapshots. An invalid item fails the whole batch.
func Calculate(in BatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, geometry.NewConfigError("items", "no items")
	}
	if len(in.Items) > MaxItems {
		return BatchResult{}, geometry.NewConfigError("items", "at most %d items", MaxItems)
	}
	out := BatchResult{Results: make([]buoyancy.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := buoyancy.Calculate(item)
		if err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		if res.Summary.Passed() {
			out.Passed++
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
