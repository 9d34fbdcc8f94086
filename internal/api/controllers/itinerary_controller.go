package controllers

import (
	"net/http"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ItineraryController struct {
	itineraryService   services.ItineraryServiceInterface
	replacementService services.ReplacementServiceInterface
	log                *logger.Logger
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	replacementService services.ReplacementServiceInterface,
	log *logger.Logger,
) *ItineraryController {
	return &ItineraryController{
		itineraryService:   itineraryService,
		replacementService: replacementService,
		log:                log,
	}
}

// POST /plan-trip
func (ic *ItineraryController) PlanTripHandler(c *gin.Context) {
	var req request_models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := ic.itineraryService.BuildItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

// POST /modify-activity
func (ic *ItineraryController) ModifyActivityHandler(c *gin.Context) {
	var req request_models.ModifyActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	c.JSON(http.StatusOK, ic.replacementService.ModifyActivity(c.Request.Context(), req))
}

// POST /user-input
func (ic *ItineraryController) UserInputHandler(c *gin.Context) {
	var req request_models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := req.Validate(); err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}

	c.JSON(http.StatusOK, req)
}
