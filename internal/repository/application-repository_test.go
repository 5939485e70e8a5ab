package repository

import (
	"testing"
	"time"

	"github.com/GlobisHR/site_service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationsByJob(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)

	jobs := NewJobRepository(db)
	require.NoError(t, jobs.CreateJob(&domain.Job{Title: "A", Description: "d", Location: "Berlin", IsActive: true}))
	require.NoError(t, jobs.CreateJob(&domain.Job{Title: "B", Description: "d", Location: "Oslo", IsActive: true}))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateApplication(&domain.Application{
			JobID: 1, Name: "Jane", Email: "j@e.com", Phone: "1", CV: "ref",
		}))
	}
	require.NoError(t, repo.CreateApplication(&domain.Application{
		JobID: 2, Name: "Ola", Email: "o@e.com", Phone: "2", CV: "ref",
	}))

	byJob, err := repo.ListApplicationsByJob(1)
	require.NoError(t, err)
	assert.Len(t, byJob, 3)

	n, err := repo.CountApplicationsByJob(2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	all, err := repo.ListApplications(10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	paged, err := repo.ListApplications(2, 2)
	require.NoError(t, err)
	assert.Len(t, paged, 2)
}

func TestInquiriesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)

	old := domain.ContactInquiry{Name: "A", Email: "a@e.com", Message: "first",
		SubmittedAt: time.Now().Add(-time.Hour)}
	recent := domain.ContactInquiry{Name: "B", Email: "b@e.com", Message: "second",
		SubmittedAt: time.Now()}
	require.NoError(t, repo.CreateInquiry(&old))
	require.NoError(t, repo.CreateInquiry(&recent))

	got, err := repo.ListInquiries(10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Message)
}
