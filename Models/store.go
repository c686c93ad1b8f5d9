package Models

import "gorm.io/gorm"

// Store owns the database handle. Every query in this package is a method
// on it; nothing reaches for a package-level connection.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}
