package repo

import (
	"errors"

	"gorm.io/gorm"

	"violethacks/internal/domain"
)

type AccountRepo struct{ db *gorm.DB }

func NewAccountRepo(db *gorm.DB) *AccountRepo { return &AccountRepo{db: db} }

func (r *AccountRepo) Create(a *domain.Account) error { return r.db.Create(a).Error }

func (r *AccountRepo) FindByID(id string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AccountRepo) FindByEmail(email string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.First(&a, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

// List 按加入顺序返回；q 可按 email/username 模糊搜
func (r *AccountRepo) List(q string, offset, limit int) ([]domain.Account, int64, error) {
	tx := r.db.Model(&domain.Account{})
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("email LIKE ? OR username LIKE ?", like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var as []domain.Account
	if err := tx.Order("joined_at asc").Offset(offset).Limit(limit).Find(&as).Error; err != nil {
		return nil, 0, err
	}
	return as, total, nil
}

// Update 整条记录 last-write-wins，没有字段级合并
func (r *AccountRepo) Update(a *domain.Account) error { return r.db.Save(a).Error }

func (r *AccountRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Account{}).Count(&n).Error
	return n, err
}

// Latest 最近加入的账号（统计用）
func (r *AccountRepo) Latest() (*domain.Account, error) {
	var a domain.Account
	err := r.db.Order("joined_at desc").First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}
