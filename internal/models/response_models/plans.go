package response_models

import "math"

type Activity struct {
	Name         string       `json:"name"`
	Duration     float64      `json:"duration"` // hours
	Notes        string       `json:"notes"`
	ActivityType ActivityType `json:"activity_type"`
	Cost         float64      `json:"cost"` // dollars
}

type DayPlan struct {
	Day           int        `json:"day"`
	Activities    []Activity `json:"activities"`
	DayTotalHours float64    `json:"day_total_hours"`
	DayTotalCost  float64    `json:"day_total_cost"`
}

// Recalculate rebuilds the day totals from the current activities.
func (d *DayPlan) Recalculate() {
	hours, cost := 0.0, 0.0
	for _, a := range d.Activities {
		hours += a.Duration
		cost += a.Cost
	}
	d.DayTotalHours = RoundHours(hours)
	d.DayTotalCost = cost
}

type Itinerary struct {
	Destination    string    `json:"destination"`
	DailyItinerary []DayPlan `json:"daily_itinerary"`
	TotalCost      float64   `json:"total_cost"`
}

func (it *Itinerary) TotalDays() int {
	return len(it.DailyItinerary)
}

// Recalculate rebuilds every derived total. Day totals are never authoritative.
func (it *Itinerary) Recalculate() {
	total := 0.0
	for i := range it.DailyItinerary {
		it.DailyItinerary[i].Recalculate()
		total += it.DailyItinerary[i].DayTotalCost
	}
	it.TotalCost = total
}

// ActivityCount counts activities across all days.
func (it *Itinerary) ActivityCount() int {
	n := 0
	for _, d := range it.DailyItinerary {
		n += len(d.Activities)
	}
	return n
}

type ReplacementActivityList struct {
	ReplacementActivities []Activity `json:"replacement_activities"`
}

// RoundHours rounds to two decimal places.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
