package request_models

import (
	"errors"
	"testing"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestUserRequestValidate(t *testing.T) {
	valid := UserRequest{
		Destination: "Tokyo",
		Budget:      800,
		Days:        3,
		UserPref:    map[string]string{"1": "Food", "2": "Cultural"},
	}
	assert.NoError(t, valid.Validate())

	cases := map[string]UserRequest{
		"blank destination": {Destination: "  ", Days: 2},
		"zero days":         {Destination: "Tokyo", Days: 0},
		"negative days":     {Destination: "Tokyo", Days: -3},
		"negative budget":   {Destination: "Tokyo", Days: 2, Budget: -5},
		"rank out of range": {Destination: "Tokyo", Days: 2, UserPref: map[string]string{"6": "Food"}},
		"rank not a number": {Destination: "Tokyo", Days: 2, UserPref: map[string]string{"first": "Food"}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			err := req.Validate()
			assert.True(t, errors.Is(err, utils.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestUserRequestValidateAllowsLongTrips(t *testing.T) {
	for _, days := range []int{31, 90, 365} {
		req := UserRequest{Destination: "Patagonia", Budget: 5000, Days: days}
		assert.NoError(t, req.Validate(), "days=%d", days)
	}
}

func TestUserRequestValidateAllowsEveryRank(t *testing.T) {
	req := UserRequest{
		Destination: "Lisbon",
		Days:        2,
		UserPref:    map[string]string{"1": "Food", "2": "Tour", "3": "Cultural", "4": "Recreational", "5": "Adventure"},
	}
	assert.NoError(t, req.Validate())
	assert.NoError(t, UserRequest{Destination: "Lisbon", Days: 2}.Validate())
}

func TestUserRequestPreference(t *testing.T) {
	req := UserRequest{UserPref: map[string]string{"1": "Food", "3": ""}}
	assert.Equal(t, "Food", req.Preference(1))
	assert.Equal(t, "Not specified", req.Preference(2))
	assert.Equal(t, "Not specified", req.Preference(3))
}

func TestExcludedNames(t *testing.T) {
	req := ModifyActivityRequest{ExcludedActivities: []response_models.Activity{{Name: "Louvre"}, {Name: "Eiffel Tower"}}}
	assert.Equal(t, []string{"Louvre", "Eiffel Tower"}, req.ExcludedNames())
	assert.Equal(t, []string{}, ModifyActivityRequest{}.ExcludedNames())
}
