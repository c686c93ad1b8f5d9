package Controllers

import (
	"net/http"

	"github.com/YeyeJames/jiale15/Models"

	"github.com/gin-gonic/gin"
)

// FetchDaySchedule returns the day view: every appointment on the requested
// date joined with its therapist and treatment, ordered by time.
func (ctrl *Controller) FetchDaySchedule(c *gin.Context) {
	date := c.Query("date")
	if !Models.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	appointments, err := ctrl.Store.ListAppointmentsForDay(date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": appointments})
}

// FetchDayStats returns the two stat cards of the day view: how many
// appointments and how much was collected.
func (ctrl *Controller) FetchDayStats(c *gin.Context) {
	date := c.Query("date")
	if !Models.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	stats, err := ctrl.Store.GetDayStats(date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": stats})
}
