package generator

import (
	"github.com/viant/tasksetgen/model"
	"math"
)

// Partition splits total utilisation across numTasks shares.
//
// Every task is reserved MinUtilization; the remainder is distributed in
// proportion to independent uniform weights.  Shares are rounded to 2
// decimals and the rounding residual is folded into the last share.  A draw
// whose last share falls under MinUtilization or whose share exceeds
// MaxUtilization is discarded and resampled, at most maxAttempts times.
//
// Arithmetic is carried out in hundredths so the returned shares sum to
// total (rounded to 2 decimals) exactly.
func Partition(rnd Rand, numTasks int, total float64, maxAttempts int) ([]float64, error) {
	if numTasks < 1 {
		return nil, model.InvalidInputf("number of tasks must be at least 1, got %d", numTasks)
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, model.InvalidInputf("utilization must be a real number")
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	totalUnits := int(math.Round(total * scale))
	minUnits := int(math.Round(MinUtilization * scale))
	maxUnits := int(math.Round(MaxUtilization * scale))
	if totalUnits < numTasks*minUnits {
		return nil, model.Infeasiblef("number of tasks (%d) and total utilization (%v) must be such that each task can have at least %v utilization", numTasks, total, MinUtilization)
	}
	if totalUnits > numTasks*maxUnits {
		return nil, model.Infeasiblef("total utilization (%v) cannot be split across %d tasks without exceeding %v per task", total, numTasks, MaxUtilization)
	}
	remainder := float64(totalUnits - numTasks*minUnits)
	units := make([]int, numTasks)
	weights := make([]float64, numTasks)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		sum := 0.0
		for i := range weights {
			weights[i] = rnd.Float64()
			sum += weights[i]
		}
		if sum == 0 {
			continue
		}
		allocated := 0
		for i, weight := range weights {
			units[i] = int(math.Round(float64(minUnits) + weight/sum*remainder))
			allocated += units[i]
		}
		units[numTasks-1] += totalUnits - allocated
		if units[numTasks-1] < minUnits {
			continue
		}
		if exceeds(units, maxUnits) {
			continue
		}
		ret := make([]float64, numTasks)
		for i, u := range units {
			ret[i] = float64(u) / scale
		}
		return ret, nil
	}
	return nil, model.NotConvergedf("utilization partition of %v across %d tasks did not converge after %d attempts", total, numTasks, maxAttempts)
}

func exceeds(units []int, limit int) bool {
	for _, u := range units {
		if u > limit {
			return true
		}
	}
	return false
}
