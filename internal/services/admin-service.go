package services

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/GlobisHR/site_service/internal/domain"
	"github.com/GlobisHR/site_service/internal/dto"
	"github.com/GlobisHR/site_service/internal/helper"
	"github.com/GlobisHR/site_service/internal/interfaces"
	"github.com/GlobisHR/site_service/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	blogMainImageFolder = "blog/main_images"
	blogImageFolder     = "blog/images"
)

// AdminService is the data-management surface behind the back office. Every
// operation except Login sits behind the admin JWT middleware. Applications
// and inquiries are exposed read-only: they are an audit trail.
type AdminService interface {
	Login(input dto.AdminLogin) (string, error)

	UpsertAbout(input dto.AboutUpsertRequest) (*domain.AboutUs, error)

	CreateService(input dto.ServiceRequest) (*domain.Service, error)
	UpdateService(id uint, input dto.ServiceRequest) (*domain.Service, error)
	DeleteService(id uint) error

	ListJobs() ([]domain.Job, error)
	CreateJob(input dto.JobRequest) (*domain.Job, error)
	UpdateJob(id uint, input dto.JobRequest) (*domain.Job, error)
	DeleteJob(id uint) error
	ListJobApplications(jobID uint) ([]domain.Application, error)

	CreateOffice(input dto.OfficeRequest) (*domain.Office, error)
	UpdateOffice(id uint, input dto.OfficeRequest) (*domain.Office, error)
	DeleteOffice(id uint) error

	CreateBlogPost(ctx context.Context, input dto.BlogPostRequest, imageName string, image []byte) (*domain.BlogPost, error)
	UpdateBlogPost(id uint, input dto.BlogPostRequest) (*domain.BlogPost, error)
	DeleteBlogPost(id uint) error
	AddBlogImage(ctx context.Context, postID uint, imageName string, image []byte, caption string) (*domain.BlogImage, error)
	AddBlogVideo(postID uint, input dto.BlogVideoRequest) (*domain.BlogVideo, error)

	ListApplications(limit, offset int) ([]domain.Application, error)
	ListInquiries(limit, offset int) ([]domain.ContactInquiry, error)
}

type adminService struct {
	aboutRepo   repository.AboutRepository
	serviceRepo repository.ServiceRepository
	jobRepo     repository.JobRepository
	appRepo     repository.ApplicationRepository
	blogRepo    repository.BlogRepository
	officeRepo  repository.OfficeRepository
	inquiryRepo repository.InquiryRepository

	uploader interfaces.Uploader
	auth     helper.Auth
	validate *validator.Validate

	adminEmail    string
	adminPassHash string
}

func NewAdminService(
	aboutRepo repository.AboutRepository,
	serviceRepo repository.ServiceRepository,
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
	blogRepo repository.BlogRepository,
	officeRepo repository.OfficeRepository,
	inquiryRepo repository.InquiryRepository,
	uploader interfaces.Uploader,
	auth helper.Auth,
	adminEmail, adminPassHash string,
) AdminService {
	return &adminService{
		aboutRepo:     aboutRepo,
		serviceRepo:   serviceRepo,
		jobRepo:       jobRepo,
		appRepo:       appRepo,
		blogRepo:      blogRepo,
		officeRepo:    officeRepo,
		inquiryRepo:   inquiryRepo,
		uploader:      uploader,
		auth:          auth,
		validate:      validator.New(),
		adminEmail:    adminEmail,
		adminPassHash: adminPassHash,
	}
}

func (s *adminService) Login(input dto.AdminLogin) (string, error) {
	if err := s.validate.Struct(input); err != nil {
		return "", errors.New("email and password are required")
	}
	if !strings.EqualFold(input.Email, s.adminEmail) {
		return "", errors.New("invalid email or password")
	}
	if err := s.auth.VerifyPassword(input.Password, s.adminPassHash); err != nil {
		return "", err
	}
	return s.auth.GenerateToken(s.adminEmail)
}

func (s *adminService) UpsertAbout(input dto.AboutUpsertRequest) (*domain.AboutUs, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	about := &domain.AboutUs{
		Title:                input.Title,
		Description:          input.Description,
		CompaniesServed:      input.CompaniesServed,
		SuccessfulPlacements: input.SuccessfulPlacements,
		CountriesCovered:     input.CountriesCovered,
		ClientSatisfaction:   input.ClientSatisfaction,
	}
	if err := s.aboutRepo.UpsertAbout(about); err != nil {
		log.Printf("upsert about error: %v", err)
		return nil, err
	}
	return about, nil
}

func (s *adminService) CreateService(input dto.ServiceRequest) (*domain.Service, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	svc := &domain.Service{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
	}
	if err := s.serviceRepo.CreateService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *adminService) UpdateService(id uint, input dto.ServiceRequest) (*domain.Service, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	svc, err := s.serviceRepo.FindServiceByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	svc.Name = input.Name
	svc.Description = input.Description
	svc.Icon = input.Icon
	if err := s.serviceRepo.SaveService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *adminService) DeleteService(id uint) error {
	if _, err := s.serviceRepo.FindServiceByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return s.serviceRepo.DeleteService(id)
}

func (s *adminService) ListJobs() ([]domain.Job, error) {
	return s.jobRepo.ListAll()
}

func (s *adminService) CreateJob(input dto.JobRequest) (*domain.Job, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	job := &domain.Job{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		JobType:     input.JobType,
		WorkScope:   input.WorkScope,
		SalaryRange: input.SalaryRange,
		IsActive:    true,
	}
	if job.JobType == "" {
		job.JobType = domain.JobTypeFullTime
	}
	if job.WorkScope == "" {
		job.WorkScope = domain.WorkScopeInsideCountry
	}
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}

	if err := s.jobRepo.CreateJob(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *adminService) UpdateJob(id uint, input dto.JobRequest) (*domain.Job, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	job, err := s.jobRepo.FindJobByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	job.Title = input.Title
	job.Description = input.Description
	job.Location = input.Location
	if input.JobType != "" {
		job.JobType = input.JobType
	}
	if input.WorkScope != "" {
		job.WorkScope = input.WorkScope
	}
	job.SalaryRange = input.SalaryRange
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}

	if err := s.jobRepo.SaveJob(job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a job and, through the repository cascade, every
// application that was filed against it.
func (s *adminService) DeleteJob(id uint) error {
	if _, err := s.jobRepo.FindJobByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return s.jobRepo.DeleteJob(id)
}

func (s *adminService) ListJobApplications(jobID uint) ([]domain.Application, error) {
	if _, err := s.jobRepo.FindJobByID(jobID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return s.appRepo.ListApplicationsByJob(jobID)
}

func (s *adminService) CreateOffice(input dto.OfficeRequest) (*domain.Office, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	office := &domain.Office{
		Country:       input.Country,
		City:          input.City,
		Address:       input.Address,
		WorkingHours:  input.WorkingHours,
		Phone:         input.Phone,
		Email:         input.Email,
		GoogleMapLink: input.GoogleMapLink,
	}
	if err := s.officeRepo.CreateOffice(office); err != nil {
		return nil, err
	}
	return office, nil
}

func (s *adminService) UpdateOffice(id uint, input dto.OfficeRequest) (*domain.Office, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	office, err := s.officeRepo.FindOfficeByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	office.Country = input.Country
	office.City = input.City
	office.Address = input.Address
	office.WorkingHours = input.WorkingHours
	office.Phone = input.Phone
	office.Email = input.Email
	office.GoogleMapLink = input.GoogleMapLink
	if err := s.officeRepo.SaveOffice(office); err != nil {
		return nil, err
	}
	return office, nil
}

func (s *adminService) DeleteOffice(id uint) error {
	if _, err := s.officeRepo.FindOfficeByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return s.officeRepo.DeleteOffice(id)
}

func (s *adminService) CreateBlogPost(ctx context.Context, input dto.BlogPostRequest, imageName string, image []byte) (*domain.BlogPost, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	post := &domain.BlogPost{
		Title:   input.Title,
		Content: input.Content,
		Author:  input.Author,
	}
	if post.Author == "" {
		post.Author = "Admin"
	}

	if len(image) > 0 {
		ref, err := s.uploadImage(ctx, blogMainImageFolder, imageName, image)
		if err != nil {
			return nil, err
		}
		post.MainImage = &ref
	}

	if err := s.blogRepo.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *adminService) UpdateBlogPost(id uint, input dto.BlogPostRequest) (*domain.BlogPost, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	post, err := s.blogRepo.FindPostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	if input.Author != "" {
		post.Author = input.Author
	}
	if err := s.blogRepo.SavePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeleteBlogPost removes a post and its attached images and videos.
func (s *adminService) DeleteBlogPost(id uint) error {
	if _, err := s.blogRepo.FindPostByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	} else if err != nil {
		return err
	}
	return s.blogRepo.DeletePost(id)
}

func (s *adminService) AddBlogImage(ctx context.Context, postID uint, imageName string, image []byte, caption string) (*domain.BlogImage, error) {
	if len(image) == 0 {
		return nil, errors.New("image file is required")
	}
	if _, err := s.blogRepo.FindPostByID(postID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	ref, err := s.uploadImage(ctx, blogImageFolder, imageName, image)
	if err != nil {
		return nil, err
	}

	img := &domain.BlogImage{BlogPostID: postID, Image: ref}
	if caption != "" {
		img.Caption = &caption
	}
	if err := s.blogRepo.AddImage(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *adminService) AddBlogVideo(postID uint, input dto.BlogVideoRequest) (*domain.BlogVideo, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	if _, err := s.blogRepo.FindPostByID(postID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	vid := &domain.BlogVideo{
		BlogPostID: postID,
		VideoURL:   input.VideoURL,
		Caption:    input.Caption,
	}
	if err := s.blogRepo.AddVideo(vid); err != nil {
		return nil, err
	}
	return vid, nil
}

func (s *adminService) ListApplications(limit, offset int) ([]domain.Application, error) {
	return s.appRepo.ListApplications(limit, offset)
}

func (s *adminService) ListInquiries(limit, offset int) ([]domain.ContactInquiry, error) {
	return s.inquiryRepo.ListInquiries(limit, offset)
}

func (s *adminService) uploadImage(ctx context.Context, folder, name string, b []byte) (string, error) {
	filename := uuid.NewString() + strings.ToLower(filepath.Ext(name))
	ref, err := s.uploader.UploadBytes(ctx, folder, filename, b)
	if err != nil {
		log.Printf("upload to %s error: %v", folder, err)
		return "", errors.New("failed to store uploaded file")
	}
	return ref, nil
}
