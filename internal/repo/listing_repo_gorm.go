package repo

import (
	"errors"

	"gorm.io/gorm"

	"violethacks/internal/domain"
)

type ListingRepo struct{ db *gorm.DB }

func NewListingRepo(db *gorm.DB) *ListingRepo { return &ListingRepo{db: db} }

func (r *ListingRepo) Create(l *domain.Listing) error { return r.db.Create(l).Error }

func (r *ListingRepo) FindByID(id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &l, err
}

// ListByStatus 目录查询，最新在前
func (r *ListingRepo) ListByStatus(status domain.ModerationStatus) ([]domain.Listing, error) {
	var ls []domain.Listing
	err := r.db.Where("moderation = ?", status).Order("created_at desc").Find(&ls).Error
	return ls, err
}

func (r *ListingRepo) ListByAuthor(authorID string) ([]domain.Listing, error) {
	var ls []domain.Listing
	err := r.db.Where("author_id = ?", authorID).Order("created_at desc").Find(&ls).Error
	return ls, err
}

func (r *ListingRepo) Update(l *domain.Listing) error { return r.db.Save(l).Error }

// IncrementDownloads 单条 SQL 自增，N 次调用严格 +N
func (r *ListingRepo) IncrementDownloads(id string) (int64, error) {
	res := r.db.Model(&domain.Listing{}).Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + ?", 1))
	return res.RowsAffected, res.Error
}

// DeleteCascade 列表连同其全部评论在一个事务里删除
func (r *ListingRepo) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Listing{}).Error
	})
}
