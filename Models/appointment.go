package Models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	StatusScheduled = "scheduled"
	StatusCheckedIn = "checked-in"
)

// Booking enforces zero-padded HH:MM so the string ORDER BY on the time
// column is also chronological.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Appointment is the hub entity. Price is a snapshot of the treatment's
// price at booking time; only Status mutates after creation. Payment state
// is derived from Status, never stored.
type Appointment struct {
	gorm.Model
	PatientName  string    `gorm:"size:255;not null" json:"patient_name"`
	PatientPhone string    `gorm:"size:64" json:"patient_phone"`
	Date         string    `gorm:"size:10;index;not null" json:"date"`
	Time         string    `gorm:"size:5;not null" json:"time"`
	TherapistID  uint      `gorm:"not null" json:"therapist_id"`
	Therapist    Therapist `gorm:"foreignKey:TherapistID" json:"-"`
	TreatmentID  uint      `gorm:"not null" json:"treatment_id"`
	Treatment    Treatment `gorm:"foreignKey:TreatmentID" json:"-"`
	Status       string    `gorm:"size:32;not null" json:"status"`
	Price        float64   `json:"price"`
}

func (a *Appointment) IsPaid() bool {
	return a.Status == StatusCheckedIn
}

func (a *Appointment) PaidAmount() float64 {
	if a.Status == StatusCheckedIn {
		return a.Price
	}
	return 0
}

// DayAppointment is one row of the day view: the appointment joined with
// its therapist's name and treatment's name/price, plus the derived payment
// fields.
type DayAppointment struct {
	ID             uint    `json:"id"`
	Time           string  `json:"time"`
	PatientName    string  `json:"patient_name"`
	TherapistName  string  `json:"therapist_name"`
	TreatmentName  string  `json:"treatment_name"`
	TreatmentPrice float64 `json:"treatment_price"`
	Price          float64 `json:"price"`
	Status         string  `json:"status"`
	IsPaid         bool    `json:"is_paid"`
	PaidAmount     float64 `json:"paid_amount"`
}

type DayStats struct {
	AppointmentCount int64   `json:"appointment_count"`
	TotalRevenue     float64 `json:"total_revenue"`
}

func ValidDate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func ValidTime(t string) bool {
	return timePattern.MatchString(t)
}

// CreateAppointment books a new appointment in the scheduled state. The
// therapist and treatment must resolve, and the treatment's current price is
// copied onto the row.
func (s *Store) CreateAppointment(appointment Appointment) (Appointment, error) {
	if strings.TrimSpace(appointment.PatientName) == "" {
		return Appointment{}, fmt.Errorf("%w: patient name is required", ErrValidation)
	}
	if !ValidDate(appointment.Date) {
		return Appointment{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if !ValidTime(appointment.Time) {
		return Appointment{}, fmt.Errorf("%w: time must be zero-padded HH:MM", ErrValidation)
	}

	var therapist Therapist
	if err := s.DB.First(&therapist, appointment.TherapistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Appointment{}, fmt.Errorf("%w: therapist %d does not exist", ErrValidation, appointment.TherapistID)
		}
		return Appointment{}, err
	}

	var treatment Treatment
	if err := s.DB.First(&treatment, appointment.TreatmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Appointment{}, fmt.Errorf("%w: treatment %d does not exist", ErrValidation, appointment.TreatmentID)
		}
		return Appointment{}, err
	}

	appointment.Status = StatusScheduled
	appointment.Price = treatment.Price

	if err := s.DB.Omit(clause.Associations).Create(&appointment).Error; err != nil {
		return Appointment{}, err
	}
	return appointment, nil
}

// UpdateAppointmentStatus is the only mutator after creation.
func (s *Store) UpdateAppointmentStatus(id uint, status string) (Appointment, error) {
	if status != StatusScheduled && status != StatusCheckedIn {
		return Appointment{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	var appointment Appointment
	if err := s.DB.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Appointment{}, fmt.Errorf("%w: appointment %d", ErrNotFound, id)
		}
		return Appointment{}, err
	}

	if err := s.DB.Model(&appointment).Update("status", status).Error; err != nil {
		return Appointment{}, err
	}

	appointment.Status = status
	return appointment, nil
}

// DeleteAppointment removes the row permanently. Deleting a nonexistent id
// fails with ErrNotFound.
func (s *Store) DeleteAppointment(id uint) error {
	result := s.DB.Unscoped().Delete(&Appointment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: appointment %d", ErrNotFound, id)
	}
	return nil
}

// GetDayStats returns the appointment count and collected revenue for one
// calendar day. Only checked-in appointments contribute revenue.
func (s *Store) GetDayStats(date string) (DayStats, error) {
	var stats DayStats

	if err := s.DB.Model(&Appointment{}).Where("date = ?", date).Count(&stats.AppointmentCount).Error; err != nil {
		return DayStats{}, err
	}

	if err := s.DB.Model(&Appointment{}).
		Where("date = ? AND status = ?", date, StatusCheckedIn).
		Select("COALESCE(SUM(price), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return DayStats{}, err
	}

	return stats, nil
}

// ListAppointmentsForDay returns the day view ordered by time ascending.
func (s *Store) ListAppointmentsForDay(date string) ([]DayAppointment, error) {
	rows := []DayAppointment{}

	err := s.DB.Model(&Appointment{}).
		Select("appointments.id, appointments.time, appointments.patient_name, "+
			"therapists.name AS therapist_name, treatments.name AS treatment_name, "+
			"treatments.price AS treatment_price, appointments.price, appointments.status").
		Joins("JOIN therapists ON appointments.therapist_id = therapists.id").
		Joins("JOIN treatments ON appointments.treatment_id = treatments.id").
		Where("appointments.date = ?", date).
		Order("appointments.time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].Status == StatusCheckedIn {
			rows[i].IsPaid = true
			rows[i].PaidAmount = rows[i].Price
		}
	}

	return rows, nil
}
