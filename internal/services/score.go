package services

import (
	"math"
	"strings"
)

// SkillScore returns the share of required skills covered by candidate, as an
// integer percentage in [0, 100]. Comparison is case-insensitive and extra
// candidate skills do not lower the score. Either list empty yields 0.
func SkillScore(candidate, required []string) int {
	if len(candidate) == 0 || len(required) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		have[strings.ToLower(s)] = struct{}{}
	}

	need := make(map[string]struct{}, len(required))
	covered := 0
	for _, s := range required {
		key := strings.ToLower(s)
		if _, seen := need[key]; seen {
			continue
		}
		need[key] = struct{}{}
		if _, ok := have[key]; ok {
			covered++
		}
	}

	ratio := float64(covered) / float64(len(need))
	return int(math.Floor(ratio*100 + 0.5))
}
