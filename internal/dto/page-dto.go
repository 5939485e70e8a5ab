package dto

import (
	"github.com/GlobisHR/site_service/internal/domain"
	"github.com/GlobisHR/site_service/pkg/utils"
)

// Page contexts returned to the rendering layer. Shapes mirror what the
// templates already consume.

type HomePage struct {
	About        *domain.AboutUs          `json:"about"`
	Services     []domain.Service         `json:"services"`
	FeaturedJobs []domain.Job             `json:"featured_jobs"`
	AllJobs      []domain.Job             `json:"all_jobs"`
	BlogPosts    []domain.BlogPost        `json:"blog_posts"`
	Offices      []domain.Office          `json:"offices"`
	OfficesData  map[string]OfficePayload `json:"offices_data"`
}

type JobsPage struct {
	Jobs         []domain.Job   `json:"jobs"`
	Meta         utils.PageMeta `json:"meta"`
	Query        string         `json:"query"`
	Location     string         `json:"location"`
	AllLocations []string       `json:"all_locations"`
}

type BlogPage struct {
	Posts []domain.BlogPost `json:"posts"`
	Meta  utils.PageMeta    `json:"meta"`
}

type BlogDetailPage struct {
	Post         domain.BlogPost   `json:"post"`
	RelatedPosts []domain.BlogPost `json:"related_posts"`
}

type ContactPage struct {
	Offices     []domain.Office          `json:"offices"`
	OfficesData map[string]OfficePayload `json:"offices_data"`
}
