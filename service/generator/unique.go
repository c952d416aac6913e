package generator

import "github.com/viant/tasksetgen/model"

// ResolveUnique rescales duplicate periods in place until all are distinct.
//
// Each pass groups indices by period; the first index of every group is left
// untouched and the others are multiplied by 2 or 3, chosen at random.  A
// rescaled period can collide with an unrelated one, so passes repeat until no
// duplicates remain or maxPasses is reached.
func ResolveUnique(rnd Rand, periods []int, maxPasses int) error {
	if maxPasses < 1 {
		maxPasses = DefaultMaxAttempts
	}
	for pass := 0; pass < maxPasses; pass++ {
		if !scaleUpDuplicates(rnd, periods) {
			return nil
		}
	}
	if hasDuplicates(periods) {
		return model.NotConvergedf("periods still not unique after %d passes", maxPasses)
	}
	return nil
}

// scaleUpDuplicates runs one pass and reports whether any duplicate was found.
// Groups are visited in order of first occurrence so a seeded source yields a
// reproducible result.
func scaleUpDuplicates(rnd Rand, periods []int) bool {
	groups := make(map[int][]int, len(periods))
	var order []int
	for i, period := range periods {
		if _, ok := groups[period]; !ok {
			order = append(order, period)
		}
		groups[period] = append(groups[period], i)
	}
	found := false
	for _, period := range order {
		indices := groups[period]
		if len(indices) < 2 {
			continue
		}
		found = true
		for _, i := range indices[1:] {
			periods[i] *= 2 + rnd.IntN(2)
		}
	}
	return found
}

func hasDuplicates(periods []int) bool {
	seen := make(map[int]bool, len(periods))
	for _, period := range periods {
		if seen[period] {
			return true
		}
		seen[period] = true
	}
	return false
}
