package Controllers

import (
	"net/http"

	"github.com/YeyeJames/jiale15/Models"

	"github.com/gin-gonic/gin"
)

func (ctrl *Controller) FetchTreatments(c *gin.Context) {
	treatments, err := ctrl.Store.ListTreatments()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, treatments)
}

type TreatmentInput struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price"`
	DurationMinutes uint    `json:"duration_minutes"`
}

func (ctrl *Controller) AddTreatment(c *gin.Context) {
	var input TreatmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	treatment, err := ctrl.Store.AddTreatment(Models.Treatment{
		Name:            input.Name,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Treatment Created Successfully", "data": treatment})
}

// EditTreatment updates the catalog row only; appointments booked before
// the edit keep their snapshotted price.
func (ctrl *Controller) EditTreatment(c *gin.Context) {
	var input TreatmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	treatment := Models.Treatment{
		Name:            input.Name,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
	}
	treatment.ID = input.ID

	updated, err := ctrl.Store.UpdateTreatment(treatment)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Treatment Edited Successfully", "data": updated})
}

func (ctrl *Controller) DeleteTreatment(c *gin.Context) {
	var input struct {
		TreatmentID uint `json:"treatment_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.Store.DeleteTreatment(input.TreatmentID); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Treatment Deleted Successfully"})
}
