package repository

import (
	"github.com/GlobisHR/site_service/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogRepository interface {
	// ListPosts returns every post newest-created first.
	ListPosts() ([]domain.BlogPost, error)
	// ListRecentPosts returns at most limit posts newest-created first,
	// optionally excluding one post id (0 excludes nothing).
	ListRecentPosts(limit int, excludeID uint) ([]domain.BlogPost, error)
	FindPostByID(id uint) (*domain.BlogPost, error)

	// back office
	CreatePost(post *domain.BlogPost) error
	SavePost(post *domain.BlogPost) error
	DeletePost(id uint) error
	AddImage(img *domain.BlogImage) error
	AddVideo(vid *domain.BlogVideo) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) ListPosts() ([]domain.BlogPost, error) {
	var posts []domain.BlogPost
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) ListRecentPosts(limit int, excludeID uint) ([]domain.BlogPost, error) {
	tx := r.db.Order("created_at DESC").Limit(limit)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	var posts []domain.BlogPost
	if err := tx.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) FindPostByID(id uint) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.db.Preload("Images").Preload("Videos").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) CreatePost(post *domain.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *blogRepository) SavePost(post *domain.BlogPost) error {
	return r.db.Save(post).Error
}

// DeletePost removes the post and its images/videos through the
// associations, mirroring the FK cascade.
func (r *blogRepository) DeletePost(id uint) error {
	return r.db.Select(clause.Associations).Delete(&domain.BlogPost{ID: id}).Error
}

func (r *blogRepository) AddImage(img *domain.BlogImage) error {
	return r.db.Create(img).Error
}

func (r *blogRepository) AddVideo(vid *domain.BlogVideo) error {
	return r.db.Create(vid).Error
}
