package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/GlobisHR/site_service/internal/domain"
	"github.com/GlobisHR/site_service/internal/dto"
)

// Country names whose normalized form is replaced by a short frontend key.
// An explicit table instead of chained string replacements, so unexpected
// country strings can never collide with a short key.
var countryShortKeys = map[string]string{
	"unitedstates":  "usa",
	"unitedkingdom": "uk",
}

// Fixed set of keys the office AJAX endpoint accepts.
var officeKeyCountries = map[string]string{
	"usa":       "United States",
	"uk":        "United Kingdom",
	"canada":    "Canada",
	"australia": "Australia",
}

// OfficeKey derives the frontend lookup key for a country: lowercase with
// spaces removed, short-keyed for the countries the widget abbreviates.
// "United States" -> "usa", "Canada" -> "canada".
func OfficeKey(country string) string {
	normalized := strings.ReplaceAll(strings.ToLower(country), " ", "")
	if short, ok := countryShortKeys[normalized]; ok {
		return short
	}
	return normalized
}

// CountryForOfficeKey resolves an AJAX office key (case-insensitive) to its
// country name.
func CountryForOfficeKey(key string) (string, bool) {
	country, ok := officeKeyCountries[strings.ToLower(key)]
	return country, ok
}

// BuildOfficePayload shapes one office for the frontend map widget. The
// address is split on newlines; an address without newlines comes through
// as a single line. A google_map_link that is not a URL falls back to a
// constructed maps query over the escaped address text.
func BuildOfficePayload(office domain.Office) dto.OfficePayload {
	mapEmbed := office.GoogleMapLink
	if !strings.HasPrefix(mapEmbed, "http") {
		mapEmbed = "https://www.google.com/maps?q=" + url.QueryEscape(office.Address) + "&output=embed"
	}

	return dto.OfficePayload{
		Label:        fmt.Sprintf("%s - %s", office.Country, office.City),
		AddressLines: strings.Split(office.Address, "\n"),
		Hours:        office.WorkingHours,
		Phone:        office.Phone,
		Email:        office.Email,
		MapEmbed:     mapEmbed,
	}
}

// BuildOfficesData keys every office payload for the map widget.
func BuildOfficesData(offices []domain.Office) map[string]dto.OfficePayload {
	data := make(map[string]dto.OfficePayload, len(offices))
	for _, office := range offices {
		data[OfficeKey(office.Country)] = BuildOfficePayload(office)
	}
	return data
}
