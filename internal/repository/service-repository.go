package repository

import (
	"github.com/GlobisHR/site_service/internal/domain"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	ListServices() ([]domain.Service, error)
	FindServiceByID(id uint) (*domain.Service, error)
	CreateService(svc *domain.Service) error
	SaveService(svc *domain.Service) error
	DeleteService(id uint) error
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) ListServices() ([]domain.Service, error) {
	var services []domain.Service
	if err := r.db.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindServiceByID(id uint) (*domain.Service, error) {
	var svc domain.Service
	if err := r.db.First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepository) CreateService(svc *domain.Service) error {
	return r.db.Create(svc).Error
}

func (r *serviceRepository) SaveService(svc *domain.Service) error {
	return r.db.Save(svc).Error
}

func (r *serviceRepository) DeleteService(id uint) error {
	return r.db.Delete(&domain.Service{}, id).Error
}
