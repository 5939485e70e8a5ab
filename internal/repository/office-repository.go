package repository

import (
	"errors"

	"github.com/GlobisHR/site_service/internal/domain"
	"gorm.io/gorm"
)

type OfficeRepository interface {
	// ListOffices returns all offices ordered by country.
	ListOffices() ([]domain.Office, error)
	// FindFirstByCountry returns the first office in that country, or nil
	// when the country has none.
	FindFirstByCountry(country string) (*domain.Office, error)
	FindOfficeByID(id uint) (*domain.Office, error)
	CreateOffice(office *domain.Office) error
	SaveOffice(office *domain.Office) error
	DeleteOffice(id uint) error
}

type officeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) OfficeRepository {
	return &officeRepository{db: db}
}

func (r *officeRepository) ListOffices() ([]domain.Office, error) {
	var offices []domain.Office
	if err := r.db.Order("country ASC").Find(&offices).Error; err != nil {
		return nil, err
	}
	return offices, nil
}

func (r *officeRepository) FindFirstByCountry(country string) (*domain.Office, error) {
	var office domain.Office
	err := r.db.Where("country = ?", country).Order("id ASC").First(&office).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &office, nil
}

func (r *officeRepository) FindOfficeByID(id uint) (*domain.Office, error) {
	var office domain.Office
	if err := r.db.First(&office, id).Error; err != nil {
		return nil, err
	}
	return &office, nil
}

func (r *officeRepository) CreateOffice(office *domain.Office) error {
	return r.db.Create(office).Error
}

func (r *officeRepository) SaveOffice(office *domain.Office) error {
	return r.db.Save(office).Error
}

func (r *officeRepository) DeleteOffice(id uint) error {
	return r.db.Delete(&domain.Office{}, id).Error
}
