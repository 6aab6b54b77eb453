package domain

import "time"

// SafetyStatus 上传者自报的安全状态，不走审核策略
type SafetyStatus string

const (
	SafetyUndetected SafetyStatus = "UNDETECTED"
	SafetyDetected   SafetyStatus = "DETECTED"
	SafetyTesting    SafetyStatus = "TESTING"
)

func (s SafetyStatus) Valid() bool {
	switch s {
	case SafetyUndetected, SafetyDetected, SafetyTesting:
		return true
	}
	return false
}

// ModerationStatus 审核状态，只有 VERIFIED 进入公开目录
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "PENDING"
	ModerationVerified ModerationStatus = "VERIFIED"
	ModerationRejected ModerationStatus = "REJECTED"
)

func (s ModerationStatus) Valid() bool {
	switch s {
	case ModerationPending, ModerationVerified, ModerationRejected:
		return true
	}
	return false
}

type Listing struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"size:191" json:"title"`
	Game        string `gorm:"size:128" json:"game"`
	Version     string `gorm:"size:64" json:"version"`
	Description string `gorm:"size:4000" json:"description"`
	DownloadURL string `gorm:"size:512" json:"downloadUrl"`

	// 作者快照：创建时拷贝，之后改名不回写
	AuthorID   string `gorm:"size:36;index" json:"authorId"`
	AuthorName string `gorm:"size:64" json:"authorName"`

	Downloads  int64            `json:"downloads"`
	Safety     SafetyStatus     `gorm:"size:16" json:"status"`
	Moderation ModerationStatus `gorm:"size:16;index" json:"verificationStatus"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Listing) TableName() string { return "listings" }
