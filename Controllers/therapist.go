package Controllers

import (
	"net/http"

	"github.com/YeyeJames/jiale15/Models"

	"github.com/gin-gonic/gin"
)

func (ctrl *Controller) GetTherapists(c *gin.Context) {
	therapists, err := ctrl.Store.ListTherapists()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, therapists)
}

func (ctrl *Controller) AddTherapist(c *gin.Context) {
	var input struct {
		Name           string   `json:"name" binding:"required"`
		CommissionRate *float64 `json:"commission_rate"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate := float64(Models.DefaultCommissionRate)
	if input.CommissionRate != nil {
		rate = *input.CommissionRate
	}

	therapist, err := ctrl.Store.AddTherapist(input.Name, rate)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Therapist Added Successfully", "data": therapist})
}
