package handlers

import (
	"net/http"

	"clipperz/services/catalog"

	"github.com/gin-gonic/gin"
)

// GetServices handles GET /api/catalog/services.
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Services)
}

// GetAddOns handles GET /api/catalog/add-ons.
func GetAddOns(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.AddOns)
}

// GetBarbers handles GET /api/catalog/barbers.
func GetBarbers(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Barbers)
}

// GetTimeSlots handles GET /api/catalog/time-slots.
func GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.TimeSlots)
}
