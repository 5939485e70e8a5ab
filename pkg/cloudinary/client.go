package cloudinary

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// New builds a client from a cloudinary:// URL. An empty url falls back to
// the CLOUDINARY_URL environment variable.
func New(url string) (*cloudinary.Cloudinary, error) {
	if url == "" {
		return cloudinary.New()
	}
	return cloudinary.NewFromURL(url)
}
