package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/GlobisHR/site_service/internal/domain"
	"github.com/GlobisHR/site_service/internal/dto"
	"github.com/GlobisHR/site_service/internal/interfaces"
	"github.com/GlobisHR/site_service/internal/repository"
	"github.com/GlobisHR/site_service/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a detail route references a missing record.
var ErrNotFound = errors.New("not found")

const (
	jobsPageSize      = 10
	blogPageSize      = 6
	ajaxJobsLimit     = 20
	featuredJobsCount = 3
	recentPostsCount  = 3
	relatedPostsCount = 3

	descriptionPreviewLen = 100
)

const (
	cvFolder = "cvs"

	applyMissingFieldsMsg = "All required fields must be filled."
	applyJobNotFoundMsg   = "Job not found."
	applyFailedMsg        = "An error occurred while submitting your application."

	inquiryMissingFieldsMsg = "Name, email, and message are required."
	inquiryThanksMsg        = "Thank you for your inquiry! We will get back to you soon."
	inquiryFailedMsg        = "An error occurred while sending your message."
)

type SiteService interface {
	// pages
	Home() (*dto.HomePage, error)
	JobsPage(filter dto.JobFilter, page int) (*dto.JobsPage, error)
	JobDetail(id uint) (*domain.Job, error)
	BlogPage(page int) (*dto.BlogPage, error)
	BlogDetail(id uint) (*dto.BlogDetailPage, error)
	ServicesPage() ([]domain.Service, error)
	AboutPage() (*domain.AboutUs, error)
	ContactPage() (*dto.ContactPage, error)

	// forms
	ApplyJob(ctx context.Context, input dto.ApplyJobInput) dto.FormResponse
	SubmitInquiry(input dto.ContactInquiryInput) dto.FormResponse

	// ajax
	JobsAjax(filter dto.JobFilter) ([]dto.JobSummary, error)
	OfficeByKey(key string) (*dto.OfficePayload, error)
}

type siteService struct {
	aboutRepo   repository.AboutRepository
	serviceRepo repository.ServiceRepository
	jobRepo     repository.JobRepository
	appRepo     repository.ApplicationRepository
	blogRepo    repository.BlogRepository
	officeRepo  repository.OfficeRepository
	inquiryRepo repository.InquiryRepository

	uploader interfaces.Uploader
	producer interfaces.ProducerHandler
}

func NewSiteService(
	aboutRepo repository.AboutRepository,
	serviceRepo repository.ServiceRepository,
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
	blogRepo repository.BlogRepository,
	officeRepo repository.OfficeRepository,
	inquiryRepo repository.InquiryRepository,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
) SiteService {
	return &siteService{
		aboutRepo:   aboutRepo,
		serviceRepo: serviceRepo,
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		blogRepo:    blogRepo,
		officeRepo:  officeRepo,
		inquiryRepo: inquiryRepo,
		uploader:    uploader,
		producer:    producer,
	}
}

func (s *siteService) Home() (*dto.HomePage, error) {
	about, err := s.aboutRepo.GetAbout()
	if err != nil {
		return nil, err
	}

	siteServices, err := s.serviceRepo.ListServices()
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListActive("", "")
	if err != nil {
		return nil, err
	}
	featured := jobs
	if len(featured) > featuredJobsCount {
		featured = featured[:featuredJobsCount]
	}

	posts, err := s.blogRepo.ListRecentPosts(recentPostsCount, 0)
	if err != nil {
		return nil, err
	}

	offices, err := s.officeRepo.ListOffices()
	if err != nil {
		return nil, err
	}

	return &dto.HomePage{
		About:        about,
		Services:     siteServices,
		FeaturedJobs: featured,
		AllJobs:      jobs,
		BlogPosts:    posts,
		Offices:      offices,
		OfficesData:  BuildOfficesData(offices),
	}, nil
}

func (s *siteService) JobsPage(filter dto.JobFilter, page int) (*dto.JobsPage, error) {
	jobs, err := s.jobRepo.ListActive(filter.Query, filter.Location)
	if err != nil {
		return nil, err
	}

	locations, err := s.jobRepo.DistinctActiveLocations()
	if err != nil {
		return nil, err
	}

	pageJobs, meta := utils.Paginate(jobs, jobsPageSize, page)
	return &dto.JobsPage{
		Jobs:         pageJobs,
		Meta:         meta,
		Query:        filter.Query,
		Location:     filter.Location,
		AllLocations: locations,
	}, nil
}

// JobDetail resolves a job regardless of its active flag, so a candidate
// holding a direct link can still read a paused posting. Inactive jobs stay
// out of every listing and cannot be applied to.
func (s *siteService) JobDetail(id uint) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (s *siteService) BlogPage(page int) (*dto.BlogPage, error) {
	posts, err := s.blogRepo.ListPosts()
	if err != nil {
		return nil, err
	}

	pagePosts, meta := utils.Paginate(posts, blogPageSize, page)
	return &dto.BlogPage{Posts: pagePosts, Meta: meta}, nil
}

func (s *siteService) BlogDetail(id uint) (*dto.BlogDetailPage, error) {
	post, err := s.blogRepo.FindPostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// Related posts are simply the most recent other posts.
	related, err := s.blogRepo.ListRecentPosts(relatedPostsCount, post.ID)
	if err != nil {
		return nil, err
	}

	return &dto.BlogDetailPage{Post: *post, RelatedPosts: related}, nil
}

func (s *siteService) ServicesPage() ([]domain.Service, error) {
	return s.serviceRepo.ListServices()
}

func (s *siteService) AboutPage() (*domain.AboutUs, error) {
	return s.aboutRepo.GetAbout()
}

func (s *siteService) ContactPage() (*dto.ContactPage, error) {
	offices, err := s.officeRepo.ListOffices()
	if err != nil {
		return nil, err
	}
	return &dto.ContactPage{
		Offices:     offices,
		OfficesData: BuildOfficesData(offices),
	}, nil
}

// ApplyJob validates and persists a job application. Every failure mode is
// folded into the response envelope: validation and lookup problems get
// their specific message, anything unexpected gets a generic one so no
// internal detail reaches the caller.
func (s *siteService) ApplyJob(ctx context.Context, input dto.ApplyJobInput) dto.FormResponse {
	if strings.TrimSpace(input.JobID) == "" ||
		strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		len(input.CV) == 0 {
		return dto.FormResponse{Success: false, Message: applyMissingFieldsMsg}
	}

	jobID, err := strconv.ParseUint(input.JobID, 10, 32)
	if err != nil {
		return dto.FormResponse{Success: false, Message: applyJobNotFoundMsg}
	}

	job, err := s.jobRepo.FindJobByID(uint(jobID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.FormResponse{Success: false, Message: applyJobNotFoundMsg}
	}
	if err != nil {
		log.Printf("apply job lookup error: %v", err)
		return dto.FormResponse{Success: false, Message: applyFailedMsg}
	}
	if !job.IsActive {
		return dto.FormResponse{Success: false, Message: applyJobNotFoundMsg}
	}

	cvName := uuid.NewString() + strings.ToLower(filepath.Ext(input.CVFilename))
	cvRef, err := s.uploader.UploadBytes(ctx, cvFolder, cvName, input.CV)
	if err != nil {
		log.Printf("apply job cv upload error: %v", err)
		return dto.FormResponse{Success: false, Message: applyFailedMsg}
	}

	app := &domain.Application{
		JobID: job.ID,
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		CV:    cvRef,
	}
	if input.CoverLetter != "" {
		app.CoverLetter = &input.CoverLetter
	}

	if err := s.appRepo.CreateApplication(app); err != nil {
		log.Printf("create application error: %v", err)
		return dto.FormResponse{Success: false, Message: applyFailedMsg}
	}

	s.publishEvent("application.received", dto.ApplicationReceivedEvent{
		ApplicationID: app.ID,
		JobID:         job.ID,
		JobTitle:      job.Title,
		Name:          app.Name,
		Email:         app.Email,
		AppliedAt:     app.AppliedAt.Format(time.RFC3339),
	})

	return dto.FormResponse{
		Success: true,
		Message: "Application submitted successfully for " + job.Title + "!",
	}
}

func (s *siteService) SubmitInquiry(input dto.ContactInquiryInput) dto.FormResponse {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return dto.FormResponse{Success: false, Message: inquiryMissingFieldsMsg}
	}

	inquiry := &domain.ContactInquiry{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}

	if err := s.inquiryRepo.CreateInquiry(inquiry); err != nil {
		log.Printf("create inquiry error: %v", err)
		return dto.FormResponse{Success: false, Message: inquiryFailedMsg}
	}

	s.publishEvent("inquiry.received", dto.InquiryReceivedEvent{
		InquiryID:   inquiry.ID,
		Name:        inquiry.Name,
		Email:       inquiry.Email,
		SubmittedAt: inquiry.SubmittedAt.Format(time.RFC3339),
	})

	return dto.FormResponse{Success: true, Message: inquiryThanksMsg}
}

func (s *siteService) JobsAjax(filter dto.JobFilter) ([]dto.JobSummary, error) {
	// filter.JobType is accepted but not applied yet; the frontend sends it
	// ahead of the filter being wired up.
	jobs, err := s.jobRepo.ListActive(filter.Query, filter.Location)
	if err != nil {
		return nil, err
	}

	if len(jobs) > ajaxJobsLimit {
		jobs = jobs[:ajaxJobsLimit]
	}

	summaries := make([]dto.JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, dto.JobSummary{
			ID:          job.ID,
			Title:       job.Title,
			Description: utils.TruncateWithEllipsis(job.Description, descriptionPreviewLen),
			Location:    job.Location,
			PostedAt:    utils.FormatPostDate(job.PostedAt),
		})
	}
	return summaries, nil
}

func (s *siteService) OfficeByKey(key string) (*dto.OfficePayload, error) {
	country, ok := CountryForOfficeKey(key)
	if !ok {
		return nil, ErrNotFound
	}

	office, err := s.officeRepo.FindFirstByCountry(country)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, ErrNotFound
	}

	payload := BuildOfficePayload(*office)
	return &payload, nil
}

// publishEvent sends a notification event. Publish failures are logged and
// never fail the originating submission.
func (s *siteService) publishEvent(key string, event any) {
	if s.producer == nil {
		return
	}
	value, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal %s event error: %v", key, err)
		return
	}
	if err := s.producer.PublishMessage([]byte(key), value); err != nil {
		log.Printf("publish %s event error: %v", key, err)
	}
}
