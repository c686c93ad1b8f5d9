package Controllers

import (
	"net/http"

	"github.com/YeyeJames/jiale15/Models"
	"github.com/YeyeJames/jiale15/SSE"

	"github.com/gin-gonic/gin"
)

type BookInput struct {
	PatientName  string `json:"patient_name" binding:"required"`
	PatientPhone string `json:"patient_phone"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	TherapistID  uint   `json:"therapist_id" binding:"required"`
	TreatmentID  uint   `json:"treatment_id" binding:"required"`
}

// ConfirmInput is shared by the three financial/destructive transitions.
// The client must send confirm=true, the structured equivalent of the
// front desk's yes/no dialog.
type ConfirmInput struct {
	ID      uint `json:"id" binding:"required"`
	Confirm bool `json:"confirm"`
}

func (ctrl *Controller) BookAppointment(c *gin.Context) {
	var input BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := ctrl.Store.CreateAppointment(Models.Appointment{
		PatientName:  input.PatientName,
		PatientPhone: input.PatientPhone,
		Date:         input.Date,
		Time:         input.Time,
		TherapistID:  input.TherapistID,
		TreatmentID:  input.TreatmentID,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	SSE.NotifyScheduleChanged(appointment.Date)
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Booked Successfully", "data": appointmentView(appointment)})
}

// CheckInAppointment marks the patient as arrived and collects the stored
// price in one combined step.
func (ctrl *Controller) CheckInAppointment(c *gin.Context) {
	ctrl.transition(c, Models.StatusCheckedIn, "Checked In Successfully")
}

// ResetAppointment reverses a check-in, returning the appointment to the
// unpaid scheduled state.
func (ctrl *Controller) ResetAppointment(c *gin.Context) {
	ctrl.transition(c, Models.StatusScheduled, "Reset Successfully")
}

func (ctrl *Controller) transition(c *gin.Context, status string, message string) {
	var input ConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required"})
		return
	}

	appointment, err := ctrl.Store.UpdateAppointmentStatus(input.ID, status)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	SSE.NotifyScheduleChanged(appointment.Date)
	c.JSON(http.StatusOK, gin.H{"message": message, "data": appointmentView(appointment)})
}

func (ctrl *Controller) DeleteAppointment(c *gin.Context) {
	var input ConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required"})
		return
	}

	if err := ctrl.Store.DeleteAppointment(input.ID); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	SSE.NotifyScheduleChanged("")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Deleted Successfully"})
}

// appointmentView attaches the derived payment fields to the stored row.
func appointmentView(a Models.Appointment) gin.H {
	return gin.H{
		"id":            a.ID,
		"patient_name":  a.PatientName,
		"patient_phone": a.PatientPhone,
		"date":          a.Date,
		"time":          a.Time,
		"therapist_id":  a.TherapistID,
		"treatment_id":  a.TreatmentID,
		"status":        a.Status,
		"price":         a.Price,
		"is_paid":       a.IsPaid(),
		"paid_amount":   a.PaidAmount(),
	}
}
