package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ConfigController struct {
	mapsKey string
}

func NewConfigController(mapsKey string) *ConfigController {
	return &ConfigController{mapsKey: mapsKey}
}

// GET /api/config serves the browser-side map key.
func (cc *ConfigController) ClientConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"google_maps_api_key": cc.mapsKey})
}

func (cc *ConfigController) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
