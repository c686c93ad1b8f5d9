package Models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// DefaultCommissionRate is applied when a therapist is added without an
// explicit rate.
const DefaultCommissionRate = 30

type Therapist struct {
	gorm.Model
	Name           string  `gorm:"size:255;not null" json:"name"`
	CommissionRate float64 `json:"commission_rate"`
}

func (s *Store) ListTherapists() ([]Therapist, error) {
	var therapists []Therapist
	if err := s.DB.Model(&Therapist{}).Order("id ASC").Find(&therapists).Error; err != nil {
		return nil, err
	}
	return therapists, nil
}

func (s *Store) AddTherapist(name string, commissionRate float64) (Therapist, error) {
	if strings.TrimSpace(name) == "" {
		return Therapist{}, fmt.Errorf("%w: therapist name is required", ErrValidation)
	}
	if commissionRate < 0 || commissionRate > 100 {
		return Therapist{}, fmt.Errorf("%w: commission rate %.2f out of range [0, 100]", ErrValidation, commissionRate)
	}

	therapist := Therapist{Name: name, CommissionRate: commissionRate}
	if err := s.DB.Create(&therapist).Error; err != nil {
		return Therapist{}, err
	}
	return therapist, nil
}
