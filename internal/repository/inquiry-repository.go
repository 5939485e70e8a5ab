package repository

import (
	"github.com/GlobisHR/site_service/internal/domain"
	"gorm.io/gorm"
)

type InquiryRepository interface {
	CreateInquiry(inquiry *domain.ContactInquiry) error
	ListInquiries(limit, offset int) ([]domain.ContactInquiry, error)
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) CreateInquiry(inquiry *domain.ContactInquiry) error {
	return r.db.Create(inquiry).Error
}

func (r *inquiryRepository) ListInquiries(limit, offset int) ([]domain.ContactInquiry, error) {
	var inquiries []domain.ContactInquiry
	err := r.db.Order("submitted_at DESC").Limit(limit).Offset(offset).Find(&inquiries).Error
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}
