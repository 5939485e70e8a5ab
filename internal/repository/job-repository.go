package repository

import (
	"log"

	"github.com/GlobisHR/site_service/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobRepository interface {
	// ListActive returns active jobs newest-posted first. query matches
	// title OR description, location matches location, both as
	// case-insensitive substrings; empty strings mean no filter.
	ListActive(query, location string) ([]domain.Job, error)
	DistinctActiveLocations() ([]string, error)
	FindJobByID(id uint) (*domain.Job, error)

	// back office
	ListAll() ([]domain.Job, error)
	CreateJob(job *domain.Job) error
	SaveJob(job *domain.Job) error
	DeleteJob(id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) ListActive(query, location string) ([]domain.Job, error) {
	tx := r.db.Where("is_active = ?", true)

	if query != "" {
		like := "%" + query + "%"
		tx = tx.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}
	if location != "" {
		tx = tx.Where("LOWER(location) LIKE LOWER(?)", "%"+location+"%")
	}

	var jobs []domain.Job
	if err := tx.Order("posted_at DESC").Find(&jobs).Error; err != nil {
		log.Printf("list active jobs error: %v", err)
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) DistinctActiveLocations() ([]string, error) {
	var locations []string
	err := r.db.Model(&domain.Job{}).
		Where("is_active = ?", true).
		Distinct().
		Order("location ASC").
		Pluck("location", &locations).Error
	if err != nil {
		log.Printf("distinct locations error: %v", err)
		return nil, err
	}
	return locations, nil
}

func (r *jobRepository) FindJobByID(id uint) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ListAll() ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.Order("posted_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) CreateJob(job *domain.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) SaveJob(job *domain.Job) error {
	return r.db.Save(job).Error
}

// DeleteJob removes the job together with its applications. The cascade is
// done through the association so it holds even when the backing store has
// no FK constraint.
func (r *jobRepository) DeleteJob(id uint) error {
	return r.db.Select(clause.Associations).Delete(&domain.Job{ID: id}).Error
}
