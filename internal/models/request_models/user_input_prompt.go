package request_models

import (
	"fmt"
	"strconv"
	"strings"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"

	"github.com/gin-gonic/gin/binding"
)

// UserRequest is the trip the user asks for. UserPref maps a rank ("1" is most
// preferred) to an activity type name.
type UserRequest struct {
	Destination string            `json:"destination" binding:"required"`
	Budget      int               `json:"budget" binding:"min=0"`
	Days        int               `json:"days" binding:"required,min=1"`
	UserPref    map[string]string `json:"user_pref" binding:"omitempty,dive,keys,oneof=1 2 3 4 5,endkeys"`
}

// Validate runs the binding rules outside of a gin handler so services reject
// the same requests the controllers do.
func (r UserRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	if err := binding.Validator.ValidateStruct(r); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	return nil
}

// Preference returns the activity type at rank, or "Not specified".
func (r UserRequest) Preference(rank int) string {
	if v, ok := r.UserPref[strconv.Itoa(rank)]; ok && v != "" {
		return v
	}
	return "Not specified"
}

type ModifyActivityRequest struct {
	Request            response_models.Activity   `json:"request"`
	Destination        string                     `json:"destination" binding:"required"`
	ExcludedActivities []response_models.Activity `json:"excluded_activities"`
	Budget             int                        `json:"budget"`
	DayDuration        float64                    `json:"day_duration"`
}

func (r ModifyActivityRequest) ExcludedNames() []string {
	names := make([]string, 0, len(r.ExcludedActivities))
	for _, a := range r.ExcludedActivities {
		names = append(names, a.Name)
	}
	return names
}
