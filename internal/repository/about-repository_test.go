package repository

import (
	"testing"

	"github.com/GlobisHR/site_service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAboutEmpty(t *testing.T) {
	repo := NewAboutRepository(newTestDB(t))

	about, err := repo.GetAbout()
	require.NoError(t, err)
	assert.Nil(t, about)
}

func TestUpsertAboutStaysSingleton(t *testing.T) {
	db := newTestDB(t)
	repo := NewAboutRepository(db)

	require.NoError(t, repo.UpsertAbout(&domain.AboutUs{
		Title:       "About Our Company",
		Description: "first version",
	}))
	require.NoError(t, repo.UpsertAbout(&domain.AboutUs{
		Title:              "About Our Company",
		Description:        "second version",
		ClientSatisfaction: 97,
	}))

	var count int64
	require.NoError(t, db.Model(&domain.AboutUs{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	about, err := repo.GetAbout()
	require.NoError(t, err)
	require.NotNil(t, about)
	assert.Equal(t, domain.AboutUsID, about.ID)
	assert.Equal(t, "second version", about.Description)
	assert.Equal(t, uint(97), about.ClientSatisfaction)
}
