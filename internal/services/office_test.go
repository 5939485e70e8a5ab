package services

import (
	"testing"

	"github.com/GlobisHR/site_service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestOfficeKey(t *testing.T) {
	cases := map[string]string{
		"United States":  "usa",
		"United Kingdom": "uk",
		"Canada":         "canada",
		"Australia":      "australia",
		"New Zealand":    "newzealand",
	}
	for country, want := range cases {
		assert.Equal(t, want, OfficeKey(country), "country %q", country)
	}
}

func TestCountryForOfficeKey(t *testing.T) {
	country, ok := CountryForOfficeKey("USA")
	assert.True(t, ok)
	assert.Equal(t, "United States", country)

	_, ok = CountryForOfficeKey("germany")
	assert.False(t, ok)
}

func TestBuildOfficePayloadMultilineAddress(t *testing.T) {
	payload := BuildOfficePayload(domain.Office{
		Country:       "United States",
		City:          "New York",
		Address:       "12 Main St\nSuite 400",
		WorkingHours:  "9-5",
		Phone:         "+1 555 0100",
		Email:         "ny@example.com",
		GoogleMapLink: "https://maps.example/x",
	})

	assert.Equal(t, "United States - New York", payload.Label)
	assert.Equal(t, []string{"12 Main St", "Suite 400"}, payload.AddressLines)
	assert.Equal(t, "https://maps.example/x", payload.MapEmbed)
}

func TestBuildOfficePayloadSingleLineAddress(t *testing.T) {
	payload := BuildOfficePayload(domain.Office{
		Country: "Canada",
		City:    "Toronto",
		Address: "1 King St",
	})

	assert.Equal(t, []string{"1 King St"}, payload.AddressLines)
}

func TestBuildOfficePayloadConstructedMapEmbed(t *testing.T) {
	payload := BuildOfficePayload(domain.Office{
		Country:       "Australia",
		City:          "Sydney",
		Address:       "5 George St & Pier",
		GoogleMapLink: "see address",
	})

	assert.Contains(t, payload.MapEmbed, "https://www.google.com/maps?q=")
	assert.Contains(t, payload.MapEmbed, "5+George+St+%26+Pier")
	assert.Contains(t, payload.MapEmbed, "&output=embed")
}

func TestBuildOfficesDataKeysEveryOffice(t *testing.T) {
	data := BuildOfficesData([]domain.Office{
		{Country: "United States", City: "New York", Address: "a"},
		{Country: "United Kingdom", City: "London", Address: "b"},
	})

	assert.Len(t, data, 2)
	assert.Contains(t, data, "usa")
	assert.Contains(t, data, "uk")
}
