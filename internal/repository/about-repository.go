package repository

import (
	"errors"

	"github.com/GlobisHR/site_service/internal/domain"
	"gorm.io/gorm"
)

type AboutRepository interface {
	// GetAbout returns the singleton row, or nil when it has not been
	// created yet.
	GetAbout() (*domain.AboutUs, error)
	UpsertAbout(about *domain.AboutUs) error
}

type aboutRepository struct {
	db *gorm.DB
}

func NewAboutRepository(db *gorm.DB) AboutRepository {
	return &aboutRepository{db: db}
}

func (r *aboutRepository) GetAbout() (*domain.AboutUs, error) {
	var about domain.AboutUs
	err := r.db.First(&about, domain.AboutUsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// UpsertAbout pins the row to the fixed singleton id, so repeated saves
// update the same record and a second row can never be created.
func (r *aboutRepository) UpsertAbout(about *domain.AboutUs) error {
	about.ID = domain.AboutUsID
	return r.db.Save(about).Error
}
