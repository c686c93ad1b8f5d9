package Models

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type Treatment struct {
	gorm.Model
	Name            string  `gorm:"size:255;not null" json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes uint    `gorm:"column:duration_minutes" json:"duration_minutes"`
}

func (s *Store) ListTreatments() ([]Treatment, error) {
	var treatments []Treatment
	if err := s.DB.Model(&Treatment{}).Order("id ASC").Find(&treatments).Error; err != nil {
		return nil, err
	}
	return treatments, nil
}

func (s *Store) AddTreatment(treatment Treatment) (Treatment, error) {
	if err := treatment.validate(); err != nil {
		return Treatment{}, err
	}
	if err := s.DB.Create(&treatment).Error; err != nil {
		return Treatment{}, err
	}
	return treatment, nil
}

// UpdateTreatment edits the catalog row. Existing appointments keep the
// price they were booked at.
func (s *Store) UpdateTreatment(treatment Treatment) (Treatment, error) {
	if err := treatment.validate(); err != nil {
		return Treatment{}, err
	}

	var existing Treatment
	if err := s.DB.First(&existing, treatment.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Treatment{}, fmt.Errorf("%w: treatment %d", ErrNotFound, treatment.ID)
		}
		return Treatment{}, err
	}

	existing.Name = treatment.Name
	existing.Price = treatment.Price
	existing.DurationMinutes = treatment.DurationMinutes
	if err := s.DB.Save(&existing).Error; err != nil {
		return Treatment{}, err
	}
	return existing, nil
}

func (s *Store) DeleteTreatment(id uint) error {
	result := s.DB.Unscoped().Delete(&Treatment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: treatment %d", ErrNotFound, id)
	}
	return nil
}

func (t Treatment) validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: treatment name is required", ErrValidation)
	}
	if t.Price < 0 {
		return fmt.Errorf("%w: treatment price must be non-negative", ErrValidation)
	}
	return nil
}
