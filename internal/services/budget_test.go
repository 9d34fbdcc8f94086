package services

import (
	"testing"
	"tripplanner/internal/models/response_models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func act(name string, t response_models.ActivityType, cost, hours float64) response_models.Activity {
	return response_models.Activity{Name: name, ActivityType: t, Cost: cost, Duration: hours, Notes: name}
}

func assertTotalsConsistent(t *testing.T, it *response_models.Itinerary) {
	t.Helper()
	total := 0.0
	for _, d := range it.DailyItinerary {
		cost, hours := 0.0, 0.0
		for _, a := range d.Activities {
			cost += a.Cost
			hours += a.Duration
		}
		assert.Equal(t, cost, d.DayTotalCost, "day %d cost", d.Day)
		assert.Equal(t, response_models.RoundHours(hours), d.DayTotalHours, "day %d hours", d.Day)
		total += d.DayTotalCost
	}
	assert.Equal(t, total, it.TotalCost)
}

func TestEnforceBudgetCostOrderStopsWhenWithinBudget(t *testing.T) {
	it := &response_models.Itinerary{
		Destination: "Paris",
		DailyItinerary: []response_models.DayPlan{
			{Day: 1, Activities: []response_models.Activity{
				act("Museum pass", response_models.ActivityTypeCultural, 40, 3),
				act("Seine cruise", response_models.ActivityTypeTour, 30, 1.5),
			}},
		},
	}
	it.Recalculate()

	removed := EnforceBudget(it, 50, map[string]string{}, RemoveByCost)

	require.Len(t, removed, 1)
	assert.Equal(t, "Museum pass", removed[0].Activity.Name)
	assert.Equal(t, UnrankedActivityRank, removed[0].Rank)
	assert.Equal(t, 30.0, it.TotalCost)
	assert.Equal(t, []response_models.Activity{act("Seine cruise", response_models.ActivityTypeTour, 30, 1.5)}, it.DailyItinerary[0].Activities)
	assert.Equal(t, 1.5, it.DailyItinerary[0].DayTotalHours)
	assertTotalsConsistent(t, it)
}

func TestEnforceBudgetWithinBudgetIsNoop(t *testing.T) {
	it := &response_models.Itinerary{DailyItinerary: []response_models.DayPlan{
		{Day: 1, Activities: []response_models.Activity{act("Tapas", response_models.ActivityTypeFood, 20, 1)}},
	}}
	it.Recalculate()

	assert.Nil(t, EnforceBudget(it, 20, nil, RemoveByCost))
	assert.Len(t, it.DailyItinerary[0].Activities, 1)
	assert.Equal(t, 20.0, it.TotalCost)
}

func TestEnforceBudgetPreferenceOrder(t *testing.T) {
	build := func() *response_models.Itinerary {
		it := &response_models.Itinerary{DailyItinerary: []response_models.DayPlan{
			{Day: 1, Activities: []response_models.Activity{
				act("Sushi omakase", response_models.ActivityTypeFood, 100, 2),
				act("Bungee jump", response_models.ActivityTypeAdventure, 20, 2),
			}},
			{Day: 2, Activities: []response_models.Activity{
				act("Bus tour", response_models.ActivityTypeTour, 50, 4),
			}},
		}}
		it.Recalculate()
		return it
	}
	prefs := map[string]string{"1": "Food", "2": "Tour"}

	byPref := build()
	removed := EnforceBudget(byPref, 130, prefs, RemoveByPreference)
	require.Len(t, removed, 2)
	assert.Equal(t, "Bungee jump", removed[0].Activity.Name)
	assert.Equal(t, "Bus tour", removed[1].Activity.Name)
	assert.Equal(t, 2, removed[1].Day)
	assert.Equal(t, 100.0, byPref.TotalCost)
	assertTotalsConsistent(t, byPref)

	byCost := build()
	removed = EnforceBudget(byCost, 130, prefs, RemoveByCost)
	require.Len(t, removed, 1)
	assert.Equal(t, "Sushi omakase", removed[0].Activity.Name)
	assert.Equal(t, 70.0, byCost.TotalCost)
	assertTotalsConsistent(t, byCost)
}

func TestEnforceBudgetUnattainableTerminates(t *testing.T) {
	it := &response_models.Itinerary{DailyItinerary: []response_models.DayPlan{
		{Day: 1, Activities: []response_models.Activity{
			act("Walk", response_models.ActivityTypeRecreational, 5, 1),
			act("Walk", response_models.ActivityTypeRecreational, 5, 1),
		}},
		{Day: 2, Activities: []response_models.Activity{act("Gallery", response_models.ActivityTypeCultural, 15, 2)}},
	}}
	it.Recalculate()

	removed := EnforceBudget(it, -1, nil, RemoveByCost)

	assert.Len(t, removed, 3)
	assert.Equal(t, 0, it.ActivityCount())
	assert.Equal(t, 0.0, it.TotalCost)
	assertTotalsConsistent(t, it)
}

func TestEnforceBudgetNeverIncreasesTotal(t *testing.T) {
	it := &response_models.Itinerary{DailyItinerary: []response_models.DayPlan{
		{Day: 1, Activities: []response_models.Activity{
			act("A", response_models.ActivityTypeFood, 12.5, 1.25),
			act("B", response_models.ActivityTypeTour, 0, 2),
			act("C", response_models.ActivityTypeAdventure, 80.75, 3),
		}},
		{Day: 2, Activities: []response_models.Activity{
			act("D", response_models.ActivityTypeCultural, 33.3, 1.1),
			act("E", response_models.ActivityTypeFood, 12.5, 1.25),
		}},
	}}
	it.Recalculate()
	before := it.TotalCost
	beforeCount := it.ActivityCount()

	removed := EnforceBudget(it, 40, map[string]string{"1": "Adventure"}, RemoveByPreference)

	assert.LessOrEqual(t, it.TotalCost, before)
	assert.LessOrEqual(t, it.TotalCost, 40.0)
	assert.Equal(t, beforeCount-len(removed), it.ActivityCount())
	assertTotalsConsistent(t, it)
}

func TestBuildRankLookup(t *testing.T) {
	lookup := BuildRankLookup(map[string]string{"1": "Food", "3": "Tour", "4": "Food", "x": "Adventure"})

	assert.Equal(t, 1, lookup["Food"])
	assert.Equal(t, 3, lookup["Tour"])
	assert.NotContains(t, lookup, "Adventure")
}

func TestRankOfUnranked(t *testing.T) {
	lookup := BuildRankLookup(map[string]string{"1": "Food"})

	assert.Equal(t, 1, rankOf(lookup, response_models.ActivityTypeFood))
	assert.Equal(t, UnrankedActivityRank, rankOf(lookup, response_models.ActivityTypeCultural))
}

func TestParseRemovalStrategy(t *testing.T) {
	s, err := ParseRemovalStrategy("Preference")
	require.NoError(t, err)
	assert.Equal(t, RemoveByPreference, s)

	s, err = ParseRemovalStrategy("")
	require.NoError(t, err)
	assert.Equal(t, RemoveByCost, s)

	_, err = ParseRemovalStrategy("random")
	assert.Error(t, err)
}

func TestEnforceBudgetUsesExactSums(t *testing.T) {
	it := &response_models.Itinerary{
		Destination: "Hanoi",
		DailyItinerary: []response_models.DayPlan{
			{Day: 1, Activities: []response_models.Activity{
				act("Street food tour", response_models.ActivityTypeFood, 10.5, 2),
				act("Water puppets", response_models.ActivityTypeCultural, 10.5, 1),
			}},
		},
	}

	removed := EnforceBudget(it, 20, nil, RemoveByCost)

	require.Len(t, removed, 1)
	assert.Len(t, it.DailyItinerary[0].Activities, 1)
	assert.Equal(t, 10.5, it.TotalCost)
	assertTotalsConsistent(t, it)
}
