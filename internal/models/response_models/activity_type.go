package response_models

import (
	"encoding/json"
	"fmt"
)

type ActivityType string

const (
	ActivityTypeFood         ActivityType = "Food"
	ActivityTypeTour         ActivityType = "Tour"
	ActivityTypeCultural     ActivityType = "Cultural"
	ActivityTypeRecreational ActivityType = "Recreational"
	ActivityTypeAdventure    ActivityType = "Adventure"
)

// DefaultActivityType is what unrecognized types are coerced to.
const DefaultActivityType = ActivityTypeCultural

var AllActivityTypes = []ActivityType{
	ActivityTypeFood,
	ActivityTypeTour,
	ActivityTypeCultural,
	ActivityTypeRecreational,
	ActivityTypeAdventure,
}

// ParseActivityType matches s against the enumeration exactly.
func ParseActivityType(s string) (ActivityType, bool) {
	for _, t := range AllActivityTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

func CoerceActivityType(s string) ActivityType {
	if t, ok := ParseActivityType(s); ok {
		return t
	}
	return DefaultActivityType
}

func (t ActivityType) Valid() bool {
	_, ok := ParseActivityType(string(t))
	return ok
}

func (t *ActivityType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("activity_type must be a string: %w", err)
	}
	parsed, ok := ParseActivityType(s)
	if !ok {
		return fmt.Errorf("unknown activity_type %q", s)
	}
	*t = parsed
	return nil
}
