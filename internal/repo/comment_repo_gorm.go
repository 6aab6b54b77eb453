package repo

import (
	"gorm.io/gorm"

	"violethacks/internal/domain"
)

type CommentRepo struct{ db *gorm.DB }

func NewCommentRepo(db *gorm.DB) *CommentRepo { return &CommentRepo{db: db} }

func (r *CommentRepo) Create(c *domain.Comment) error { return r.db.Create(c).Error }

// ListByListing 最新在前
func (r *CommentRepo) ListByListing(listingID string) ([]domain.Comment, error) {
	var cs []domain.Comment
	err := r.db.Where("listing_id = ?", listingID).Order("created_at desc").Find(&cs).Error
	return cs, err
}

func (r *CommentRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Comment{}).Count(&n).Error
	return n, err
}
