package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"tripplanner/internal/models/response_models"
)

const (
	keyDailyItinerary = "daily_itinerary"
	keyActivities     = "activities"
)

// itineraryKeyAliases maps key names the model sometimes emits to the
// canonical itinerary key. An alias is only renamed when the canonical key is
// absent.
var itineraryKeyAliases = map[string]string{
	"days": keyDailyItinerary,
}

// NormalizeItineraryKeys renames aliased top-level keys in place.
func NormalizeItineraryKeys(data map[string]any) map[string]any {
	for alias, canonical := range itineraryKeyAliases {
		v, ok := data[alias]
		if !ok {
			continue
		}
		if _, exists := data[canonical]; exists {
			continue
		}
		data[canonical] = v
		delete(data, alias)
	}
	return data
}

// dayList returns the day list, preferring the canonical key.
func dayList(data map[string]any) []any {
	if v, ok := data[keyDailyItinerary]; ok {
		days, _ := v.([]any)
		return days
	}
	for alias, canonical := range itineraryKeyAliases {
		if canonical != keyDailyItinerary {
			continue
		}
		if days, ok := data[alias].([]any); ok {
			return days
		}
	}
	return nil
}

// ComputeTotals writes day_total_hours, day_total_cost and total_cost into the
// map form of an itinerary. Hours are rounded to two decimals and costs are
// accumulated as whole dollars. Missing or mistyped fields count as zero.
func ComputeTotals(data map[string]any) map[string]any {
	var total int64
	for _, rawDay := range dayList(data) {
		day, ok := rawDay.(map[string]any)
		if !ok {
			continue
		}
		hours := 0.0
		var cost int64
		acts, _ := day[keyActivities].([]any)
		for _, rawAct := range acts {
			act, ok := rawAct.(map[string]any)
			if !ok {
				continue
			}
			if d, ok := asFloat(act["duration"]); ok {
				hours += d
			}
			if c, ok := asFloat(act["cost"]); ok {
				cost += int64(math.Trunc(c))
			}
		}
		day["day_total_hours"] = response_models.RoundHours(hours)
		day["day_total_cost"] = cost
		total += cost
	}
	data["total_cost"] = total
	return data
}

// asFloat converts the numeric shapes a decoded completion may contain.
func asFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
