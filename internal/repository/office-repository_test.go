package repository

import (
	"testing"

	"github.com/GlobisHR/site_service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOfficesOrderedByCountry(t *testing.T) {
	repo := NewOfficeRepository(newTestDB(t))
	require.NoError(t, repo.CreateOffice(&domain.Office{Country: "United States", City: "New York", Address: "a"}))
	require.NoError(t, repo.CreateOffice(&domain.Office{Country: "Australia", City: "Sydney", Address: "b"}))
	require.NoError(t, repo.CreateOffice(&domain.Office{Country: "Canada", City: "Toronto", Address: "c"}))

	offices, err := repo.ListOffices()
	require.NoError(t, err)

	require.Len(t, offices, 3)
	assert.Equal(t, "Australia", offices[0].Country)
	assert.Equal(t, "United States", offices[2].Country)
}

func TestFindFirstByCountry(t *testing.T) {
	repo := NewOfficeRepository(newTestDB(t))
	require.NoError(t, repo.CreateOffice(&domain.Office{Country: "Canada", City: "Toronto", Address: "a"}))
	require.NoError(t, repo.CreateOffice(&domain.Office{Country: "Canada", City: "Vancouver", Address: "b"}))

	office, err := repo.FindFirstByCountry("Canada")
	require.NoError(t, err)
	require.NotNil(t, office)
	assert.Equal(t, "Toronto", office.City)

	missing, err := repo.FindFirstByCountry("Germany")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
