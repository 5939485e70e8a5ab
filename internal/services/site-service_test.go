package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/GlobisHR/site_service/internal/domain"
	"github.com/GlobisHR/site_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ---------- fakes ----------

type fakeJobRepo struct {
	jobs    []domain.Job
	findErr error
}

func (r *fakeJobRepo) ListActive(query, location string) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if !j.IsActive {
			continue
		}
		if query != "" {
			q := strings.ToLower(query)
			if !strings.Contains(strings.ToLower(j.Title), q) &&
				!strings.Contains(strings.ToLower(j.Description), q) {
				continue
			}
		}
		if location != "" &&
			!strings.Contains(strings.ToLower(j.Location), strings.ToLower(location)) {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].PostedAt.After(out[k].PostedAt) })
	return out, nil
}

func (r *fakeJobRepo) DistinctActiveLocations() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, j := range r.jobs {
		if j.IsActive && !seen[j.Location] {
			seen[j.Location] = true
			out = append(out, j.Location)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeJobRepo) FindJobByID(id uint) (*domain.Job, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, j := range r.jobs {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeJobRepo) ListAll() ([]domain.Job, error)  { return r.jobs, nil }
func (r *fakeJobRepo) CreateJob(j *domain.Job) error   { r.jobs = append(r.jobs, *j); return nil }
func (r *fakeJobRepo) SaveJob(j *domain.Job) error     { return nil }
func (r *fakeJobRepo) DeleteJob(id uint) error         { return nil }

type fakeAppRepo struct {
	apps      []domain.Application
	createErr error
}

func (r *fakeAppRepo) CreateApplication(app *domain.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	app.ID = uint(len(r.apps) + 1)
	app.AppliedAt = time.Now()
	r.apps = append(r.apps, *app)
	return nil
}

func (r *fakeAppRepo) ListApplications(limit, offset int) ([]domain.Application, error) {
	return r.apps, nil
}

func (r *fakeAppRepo) ListApplicationsByJob(jobID uint) ([]domain.Application, error) {
	var out []domain.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) CountApplicationsByJob(jobID uint) (int64, error) {
	apps, _ := r.ListApplicationsByJob(jobID)
	return int64(len(apps)), nil
}

type fakeBlogRepo struct {
	posts []domain.BlogPost
}

func (r *fakeBlogRepo) ListPosts() ([]domain.BlogPost, error) {
	out := append([]domain.BlogPost(nil), r.posts...)
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

func (r *fakeBlogRepo) ListRecentPosts(limit int, excludeID uint) ([]domain.BlogPost, error) {
	all, _ := r.ListPosts()
	var out []domain.BlogPost
	for _, p := range all {
		if excludeID != 0 && p.ID == excludeID {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeBlogRepo) FindPostByID(id uint) (*domain.BlogPost, error) {
	for _, p := range r.posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeBlogRepo) CreatePost(p *domain.BlogPost) error  { r.posts = append(r.posts, *p); return nil }
func (r *fakeBlogRepo) SavePost(p *domain.BlogPost) error    { return nil }
func (r *fakeBlogRepo) DeletePost(id uint) error             { return nil }
func (r *fakeBlogRepo) AddImage(i *domain.BlogImage) error   { return nil }
func (r *fakeBlogRepo) AddVideo(v *domain.BlogVideo) error   { return nil }

type fakeOfficeRepo struct {
	offices []domain.Office
}

func (r *fakeOfficeRepo) ListOffices() ([]domain.Office, error) {
	out := append([]domain.Office(nil), r.offices...)
	sort.Slice(out, func(i, k int) bool { return out[i].Country < out[k].Country })
	return out, nil
}

func (r *fakeOfficeRepo) FindFirstByCountry(country string) (*domain.Office, error) {
	for _, o := range r.offices {
		if o.Country == country {
			office := o
			return &office, nil
		}
	}
	return nil, nil
}

func (r *fakeOfficeRepo) FindOfficeByID(id uint) (*domain.Office, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeOfficeRepo) CreateOffice(o *domain.Office) error { return nil }
func (r *fakeOfficeRepo) SaveOffice(o *domain.Office) error   { return nil }
func (r *fakeOfficeRepo) DeleteOffice(id uint) error          { return nil }

type fakeAboutRepo struct {
	about *domain.AboutUs
}

func (r *fakeAboutRepo) GetAbout() (*domain.AboutUs, error)      { return r.about, nil }
func (r *fakeAboutRepo) UpsertAbout(a *domain.AboutUs) error     { r.about = a; return nil }

type fakeServiceRepo struct {
	services []domain.Service
}

func (r *fakeServiceRepo) ListServices() ([]domain.Service, error)        { return r.services, nil }
func (r *fakeServiceRepo) FindServiceByID(id uint) (*domain.Service, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeServiceRepo) CreateService(s *domain.Service) error { return nil }
func (r *fakeServiceRepo) SaveService(s *domain.Service) error   { return nil }
func (r *fakeServiceRepo) DeleteService(id uint) error           { return nil }

type fakeInquiryRepo struct {
	inquiries []domain.ContactInquiry
	createErr error
}

func (r *fakeInquiryRepo) CreateInquiry(q *domain.ContactInquiry) error {
	if r.createErr != nil {
		return r.createErr
	}
	q.ID = uint(len(r.inquiries) + 1)
	q.SubmittedAt = time.Now()
	r.inquiries = append(r.inquiries, *q)
	return nil
}

func (r *fakeInquiryRepo) ListInquiries(limit, offset int) ([]domain.ContactInquiry, error) {
	return r.inquiries, nil
}

type fakeUploader struct {
	uploads int
	err     error
}

func (u *fakeUploader) UploadBytes(ctx context.Context, folder, filename string, b []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.uploads++
	return "https://cdn.example/" + folder + "/" + filename, nil
}

type fakeProducer struct {
	keys []string
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	return nil
}

type siteFixture struct {
	jobs      *fakeJobRepo
	apps      *fakeAppRepo
	blog      *fakeBlogRepo
	offices   *fakeOfficeRepo
	about     *fakeAboutRepo
	services  *fakeServiceRepo
	inquiries *fakeInquiryRepo
	uploader  *fakeUploader
	producer  *fakeProducer
	svc       SiteService
}

func newSiteFixture() *siteFixture {
	f := &siteFixture{
		jobs:      &fakeJobRepo{},
		apps:      &fakeAppRepo{},
		blog:      &fakeBlogRepo{},
		offices:   &fakeOfficeRepo{},
		about:     &fakeAboutRepo{},
		services:  &fakeServiceRepo{},
		inquiries: &fakeInquiryRepo{},
		uploader:  &fakeUploader{},
		producer:  &fakeProducer{},
	}
	f.svc = NewSiteService(
		f.about, f.services, f.jobs, f.apps, f.blog, f.offices, f.inquiries,
		f.uploader, f.producer,
	)
	return f
}

func activeJob(id uint, title, description, location string, postedDaysAgo int) domain.Job {
	return domain.Job{
		ID:          id,
		Title:       title,
		Description: description,
		Location:    location,
		IsActive:    true,
		PostedAt:    time.Now().Add(-time.Duration(postedDaysAgo) * 24 * time.Hour),
	}
}

func validApply(jobID string) dto.ApplyJobInput {
	return dto.ApplyJobInput{
		JobID:      jobID,
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+1 555 0100",
		CVFilename: "cv.pdf",
		CV:         []byte("%PDF-1.4"),
	}
}

// ---------- apply ----------

func TestApplyJobMissingFields(t *testing.T) {
	f := newSiteFixture()
	f.jobs.jobs = []domain.Job{activeJob(1, "Backend Engineer", "Go services", "Berlin", 1)}

	inputs := []dto.ApplyJobInput{
		{},
		{Name: "Jane", Email: "j@e.com", Phone: "1", CV: []byte("x")},                  // no job_id
		{JobID: "1", Email: "j@e.com", Phone: "1", CV: []byte("x")},                    // no name
		{JobID: "1", Name: "Jane", Phone: "1", CV: []byte("x")},                        // no email
		{JobID: "1", Name: "Jane", Email: "j@e.com", CV: []byte("x")},                  // no phone
		{JobID: "1", Name: "Jane", Email: "j@e.com", Phone: "1"},                       // no cv
	}
	for _, input := range inputs {
		resp := f.svc.ApplyJob(context.Background(), input)
		assert.False(t, resp.Success)
		assert.Equal(t, "All required fields must be filled.", resp.Message)
	}
	assert.Empty(t, f.apps.apps, "no application row may be created")
	assert.Empty(t, f.producer.keys)
}

func TestApplyJobMissingJob(t *testing.T) {
	f := newSiteFixture()

	resp := f.svc.ApplyJob(context.Background(), validApply("42"))

	assert.False(t, resp.Success)
	assert.Equal(t, "Job not found.", resp.Message)
	assert.Empty(t, f.apps.apps)
}

func TestApplyJobInactiveJob(t *testing.T) {
	f := newSiteFixture()
	job := activeJob(7, "Recruiter", "hiring", "London", 1)
	job.IsActive = false
	f.jobs.jobs = []domain.Job{job}

	resp := f.svc.ApplyJob(context.Background(), validApply("7"))

	assert.False(t, resp.Success)
	assert.Equal(t, "Job not found.", resp.Message)
	assert.Empty(t, f.apps.apps)
}

func TestApplyJobSuccess(t *testing.T) {
	f := newSiteFixture()
	f.jobs.jobs = []domain.Job{activeJob(3, "Backend Engineer", "Go services", "Berlin", 1)}

	input := validApply("3")
	input.CoverLetter = "I am keen."
	resp := f.svc.ApplyJob(context.Background(), input)

	require.True(t, resp.Success)
	assert.Equal(t, "Application submitted successfully for Backend Engineer!", resp.Message)

	require.Len(t, f.apps.apps, 1)
	app := f.apps.apps[0]
	assert.Equal(t, uint(3), app.JobID)
	assert.Contains(t, app.CV, "https://cdn.example/cvs/")
	require.NotNil(t, app.CoverLetter)
	assert.Equal(t, "I am keen.", *app.CoverLetter)

	assert.Equal(t, []string{"application.received"}, f.producer.keys)
}

func TestApplyJobUploadFailure(t *testing.T) {
	f := newSiteFixture()
	f.jobs.jobs = []domain.Job{activeJob(3, "Backend Engineer", "Go services", "Berlin", 1)}
	f.uploader.err = errors.New("cdn down")

	resp := f.svc.ApplyJob(context.Background(), validApply("3"))

	assert.False(t, resp.Success)
	assert.Equal(t, "An error occurred while submitting your application.", resp.Message)
	assert.Empty(t, f.apps.apps)
}

func TestApplyJobPersistFailure(t *testing.T) {
	f := newSiteFixture()
	f.jobs.jobs = []domain.Job{activeJob(3, "Backend Engineer", "Go services", "Berlin", 1)}
	f.apps.createErr = errors.New("db down")

	resp := f.svc.ApplyJob(context.Background(), validApply("3"))

	assert.False(t, resp.Success)
	assert.Equal(t, "An error occurred while submitting your application.", resp.Message)
	assert.Empty(t, f.producer.keys)
}

// ---------- inquiries ----------

func TestSubmitInquiryMissingFields(t *testing.T) {
	f := newSiteFixture()

	inputs := []dto.ContactInquiryInput{
		{Email: "a@b.com", Message: "hi"},
		{Name: "Jane", Message: "hi"},
		{Name: "Jane", Email: "a@b.com"},
	}
	for _, input := range inputs {
		resp := f.svc.SubmitInquiry(input)
		assert.False(t, resp.Success)
		assert.Equal(t, "Name, email, and message are required.", resp.Message)
	}
	assert.Empty(t, f.inquiries.inquiries)
}

func TestSubmitInquirySuccess(t *testing.T) {
	f := newSiteFixture()

	resp := f.svc.SubmitInquiry(dto.ContactInquiryInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Please call me back.",
	})

	require.True(t, resp.Success)
	assert.Equal(t, "Thank you for your inquiry! We will get back to you soon.", resp.Message)
	require.Len(t, f.inquiries.inquiries, 1)
	assert.Equal(t, "", f.inquiries.inquiries[0].Phone)
	assert.Equal(t, []string{"inquiry.received"}, f.producer.keys)
}

func TestSubmitInquiryPersistFailure(t *testing.T) {
	f := newSiteFixture()
	f.inquiries.createErr = errors.New("db down")

	resp := f.svc.SubmitInquiry(dto.ContactInquiryInput{
		Name: "Jane", Email: "jane@example.com", Message: "hi",
	})

	assert.False(t, resp.Success)
	assert.Equal(t, "An error occurred while sending your message.", resp.Message)
}

// ---------- listings ----------

func TestJobsPageFiltersAndPaginates(t *testing.T) {
	f := newSiteFixture()
	for i := 1; i <= 25; i++ {
		f.jobs.jobs = append(f.jobs.jobs,
			activeJob(uint(i), "Engineer", "builds systems", "Berlin", i))
	}
	f.jobs.jobs = append(f.jobs.jobs,
		activeJob(100, "Designer", "crafts PIXELS daily", "Remote", 0))

	page, err := f.svc.JobsPage(dto.JobFilter{Query: "pixels"}, 1)
	require.NoError(t, err)
	require.Len(t, page.Jobs, 1)
	assert.Equal(t, uint(100), page.Jobs[0].ID)

	// query and location intersect
	page, err = f.svc.JobsPage(dto.JobFilter{Query: "pixels", Location: "berlin"}, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Jobs)

	// page size 10, out-of-range page clamps to last
	page, err = f.svc.JobsPage(dto.JobFilter{}, 9)
	require.NoError(t, err)
	assert.Equal(t, 10, page.Meta.PageSize)
	assert.Equal(t, 3, page.Meta.Page)
	assert.Len(t, page.Jobs, 6)
	assert.ElementsMatch(t, []string{"Berlin", "Remote"}, page.AllLocations)
}

func TestJobDetailAllowsInactive(t *testing.T) {
	f := newSiteFixture()
	job := activeJob(5, "Paused Role", "on hold", "Oslo", 2)
	job.IsActive = false
	f.jobs.jobs = []domain.Job{job}

	got, err := f.svc.JobDetail(5)
	require.NoError(t, err)
	assert.Equal(t, "Paused Role", got.Title)
}

func TestJobDetailNotFound(t *testing.T) {
	f := newSiteFixture()

	_, err := f.svc.JobDetail(9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobsAjaxTruncatesLimitsAndFormats(t *testing.T) {
	f := newSiteFixture()
	long := strings.Repeat("x", 150)
	for i := 1; i <= 25; i++ {
		job := activeJob(uint(i), "Engineer", long, "Berlin", i)
		job.PostedAt = time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
		f.jobs.jobs = append(f.jobs.jobs, job)
	}
	inactive := activeJob(99, "Hidden", "not listed", "Berlin", 0)
	inactive.IsActive = false
	f.jobs.jobs = append(f.jobs.jobs, inactive)

	summaries, err := f.svc.JobsAjax(dto.JobFilter{JobType: "full_time"})
	require.NoError(t, err)

	assert.Len(t, summaries, 20)
	for _, s := range summaries {
		assert.NotEqual(t, uint(99), s.ID)
		assert.Equal(t, strings.Repeat("x", 100)+"...", s.Description)
		assert.Equal(t, "Jan 05, 2024", s.PostedAt)
	}
}

func TestJobsAjaxShortDescriptionPassesThrough(t *testing.T) {
	f := newSiteFixture()
	f.jobs.jobs = []domain.Job{activeJob(1, "Engineer", "short blurb", "Berlin", 1)}

	summaries, err := f.svc.JobsAjax(dto.JobFilter{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "short blurb", summaries[0].Description)
}

// ---------- blog ----------

func TestBlogDetailRelatedExcludesCurrent(t *testing.T) {
	f := newSiteFixture()
	for i := 1; i <= 5; i++ {
		f.blog.posts = append(f.blog.posts, domain.BlogPost{
			ID:        uint(i),
			Title:     "Post",
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}

	page, err := f.svc.BlogDetail(2)
	require.NoError(t, err)

	assert.Equal(t, uint(2), page.Post.ID)
	require.Len(t, page.RelatedPosts, 3)
	for _, p := range page.RelatedPosts {
		assert.NotEqual(t, uint(2), p.ID)
	}
	// newest first
	assert.Equal(t, uint(1), page.RelatedPosts[0].ID)
}

func TestBlogDetailNotFound(t *testing.T) {
	f := newSiteFixture()

	_, err := f.svc.BlogDetail(404)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ---------- home ----------

func TestHomeFeaturedJobsCapped(t *testing.T) {
	f := newSiteFixture()
	for i := 1; i <= 5; i++ {
		f.jobs.jobs = append(f.jobs.jobs, activeJob(uint(i), "J", "d", "Berlin", i))
	}
	f.offices.offices = []domain.Office{{Country: "Canada", City: "Toronto", Address: "1 King St"}}

	page, err := f.svc.Home()
	require.NoError(t, err)

	assert.Len(t, page.FeaturedJobs, 3)
	assert.Len(t, page.AllJobs, 5)
	assert.Equal(t, uint(1), page.FeaturedJobs[0].ID, "newest-posted first")
	assert.Contains(t, page.OfficesData, "canada")
	assert.Nil(t, page.About)
}

// ---------- offices ----------

func TestOfficeByKey(t *testing.T) {
	f := newSiteFixture()
	f.offices.offices = []domain.Office{
		{Country: "United States", City: "New York", Address: "12 Main St"},
	}

	payload, err := f.svc.OfficeByKey("USA")
	require.NoError(t, err)
	assert.Equal(t, "United States - New York", payload.Label)

	_, err = f.svc.OfficeByKey("germany")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.OfficeByKey("uk")
	assert.ErrorIs(t, err, ErrNotFound, "mapped key without an office row")
}
