package controllers

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine,
	itineraryController *ItineraryController,
	configController *ConfigController) {

	r.POST("/plan-trip", itineraryController.PlanTripHandler)
	r.POST("/modify-activity", itineraryController.ModifyActivityHandler)
	r.POST("/user-input", itineraryController.UserInputHandler)

	r.GET("/api/config", configController.ClientConfigHandler)
	r.GET("/health", configController.HealthHandler)
}
