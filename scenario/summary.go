package scenario

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a batch of outcomes for benchmark reporting.
// Elapsed statistics cover every run; cost statistics cover successful
// runs only, since partial paths carry no comparable cost.
type Summary struct {
	Total     int
	Succeeded int
	// SuccessRate is Succeeded/Total, 0 for an empty batch.
	SuccessRate float64

	MeanElapsed   time.Duration
	StdDevElapsed time.Duration

	MeanCost   float64
	StdDevCost float64

	MeanExpanded float64
}

// Summarize reduces outcomes to batch statistics.
func Summarize(outs []Outcome) Summary {
	s := Summary{Total: len(outs)}
	if len(outs) == 0 {
		return s
	}

	elapsed := make([]float64, 0, len(outs))
	expanded := make([]float64, 0, len(outs))
	var costs []float64
	for _, o := range outs {
		elapsed = append(elapsed, float64(o.Result.Stats.Elapsed))
		expanded = append(expanded, float64(o.Result.Stats.NodesExpanded))
		if o.Succeeded() {
			s.Succeeded++
			costs = append(costs, o.Result.Stats.PathCost)
		}
	}
	s.SuccessRate = float64(s.Succeeded) / float64(s.Total)

	meanE, stdE := meanStd(elapsed)
	s.MeanElapsed = time.Duration(meanE)
	s.StdDevElapsed = time.Duration(stdE)

	s.MeanCost, s.StdDevCost = meanStd(costs)
	s.MeanExpanded, _ = meanStd(expanded)

	return s
}

// meanStd wraps stat.MeanStdDev, reporting zero deviation for fewer
// than two samples instead of NaN.
func meanStd(xs []float64) (mean, std float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	default:
		return stat.MeanStdDev(xs, nil)
	}
}
