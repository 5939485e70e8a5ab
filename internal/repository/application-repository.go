package repository

import (
	"github.com/GlobisHR/site_service/internal/domain"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	CreateApplication(app *domain.Application) error
	ListApplications(limit, offset int) ([]domain.Application, error)
	ListApplicationsByJob(jobID uint) ([]domain.Application, error)
	CountApplicationsByJob(jobID uint) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) CreateApplication(app *domain.Application) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) ListApplications(limit, offset int) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.Order("applied_at DESC").Limit(limit).Offset(offset).Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) ListApplicationsByJob(jobID uint) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.Where("job_id = ?", jobID).Order("applied_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) CountApplicationsByJob(jobID uint) (int64, error) {
	var n int64
	err := r.db.Model(&domain.Application{}).Where("job_id = ?", jobID).Count(&n).Error
	return n, err
}
