package domain

import "time"

// Comment 评论。作者展示字段为创建时快照，随列表级联删除
type Comment struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ListingID string `gorm:"size:36;index" json:"cheatId"`
	UserID    string `gorm:"size:36" json:"userId"`

	// 作者快照
	Username   string `gorm:"size:64" json:"username"`
	UserAvatar string `gorm:"size:255" json:"userAvatar"`
	UserRole   Role   `gorm:"size:16" json:"userRole"`

	Text      string    `gorm:"size:2000" json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Comment) TableName() string { return "comments" }

func (c *Comment) AuthorIsAdmin() bool { return c.UserRole == RoleAdmin }
