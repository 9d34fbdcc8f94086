package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"tripplanner/internal/models/response_models"
)

// RemovalStrategy decides which activities go first when a plan is over budget.
type RemovalStrategy string

const (
	// RemoveByCost drops the most expensive activities first, ignoring preference.
	RemoveByCost RemovalStrategy = "cost"
	// RemoveByPreference drops the least preferred types first, most expensive
	// first within a rank.
	RemoveByPreference RemovalStrategy = "preference"
)

// UnrankedActivityRank is given to activity types the user did not rank.
const UnrankedActivityRank = 5

func ParseRemovalStrategy(s string) (RemovalStrategy, error) {
	switch RemovalStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case RemoveByCost, "":
		return RemoveByCost, nil
	case RemoveByPreference:
		return RemoveByPreference, nil
	default:
		return "", fmt.Errorf("unknown removal strategy %q", s)
	}
}

// BuildRankLookup inverts rank -> type into type -> rank. Keys that are not
// integers are ignored; a type listed twice keeps its best rank.
func BuildRankLookup(prefs map[string]string) map[string]int {
	lookup := make(map[string]int, len(prefs))
	for key, activityType := range prefs {
		rank, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			continue
		}
		if existing, ok := lookup[activityType]; ok && existing <= rank {
			continue
		}
		lookup[activityType] = rank
	}
	return lookup
}

func rankOf(lookup map[string]int, t response_models.ActivityType) int {
	if rank, ok := lookup[string(t)]; ok {
		return rank
	}
	return UnrankedActivityRank
}

type RemovedActivity struct {
	Day      int
	Rank     int
	Activity response_models.Activity
}

type removalCandidate struct {
	dayIndex int
	actIndex int
	rank     int
	activity response_models.Activity
}

// EnforceBudget removes activities until the itinerary total is within budget
// or the candidates run out. An unattainable budget is not an error: the
// itinerary is returned as far as it could be reduced.
func EnforceBudget(it *response_models.Itinerary, budget int, prefs map[string]string, strategy RemovalStrategy) []RemovedActivity {
	it.Recalculate()
	limit := float64(budget)
	if it.TotalCost <= limit {
		return nil
	}

	lookup := BuildRankLookup(prefs)
	originals := make([][]response_models.Activity, len(it.DailyItinerary))
	kept := make([][]bool, len(it.DailyItinerary))
	var candidates []removalCandidate
	for di, day := range it.DailyItinerary {
		originals[di] = append([]response_models.Activity(nil), day.Activities...)
		kept[di] = make([]bool, len(day.Activities))
		for ai, act := range day.Activities {
			kept[di][ai] = true
			candidates = append(candidates, removalCandidate{
				dayIndex: di,
				actIndex: ai,
				rank:     rankOf(lookup, act.ActivityType),
				activity: act,
			})
		}
	}

	sortCandidates(candidates, strategy)

	var removed []RemovedActivity
	for _, cand := range candidates {
		if it.TotalCost <= limit {
			break
		}
		if !kept[cand.dayIndex][cand.actIndex] {
			continue
		}
		kept[cand.dayIndex][cand.actIndex] = false

		day := &it.DailyItinerary[cand.dayIndex]
		remaining := make([]response_models.Activity, 0, len(day.Activities))
		for ai, act := range originals[cand.dayIndex] {
			if kept[cand.dayIndex][ai] {
				remaining = append(remaining, act)
			}
		}
		day.Activities = remaining
		it.Recalculate()

		removed = append(removed, RemovedActivity{Day: day.Day, Rank: cand.rank, Activity: cand.activity})
	}
	return removed
}

func sortCandidates(candidates []removalCandidate, strategy RemovalStrategy) {
	switch strategy {
	case RemoveByPreference:
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].rank != candidates[j].rank {
				return candidates[i].rank > candidates[j].rank
			}
			return candidates[i].activity.Cost > candidates[j].activity.Cost
		})
	default:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].activity.Cost > candidates[j].activity.Cost
		})
	}
}
