package domain

import "time"

// Role 账号权限等级。SUPPORTER/MODERATOR 互不包含，均高于 MEMBER，ADMIN 最高
type Role string

const (
	RoleMember    Role = "MEMBER"
	RoleSupporter Role = "SUPPORTER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleSupporter, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// AboveMember MEMBER 之上的任意等级（分类判断，不是数值比较）
func (r Role) AboveMember() bool {
	return r == RoleSupporter || r == RoleModerator || r == RoleAdmin
}

type Account struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	Username     string    `gorm:"size:64" json:"username"`
	PasswordHash string    `gorm:"size:191" json:"-"`
	Avatar       string    `gorm:"size:255" json:"avatar"`
	Bio          string    `gorm:"size:500" json:"bio"`
	Role         Role      `gorm:"size:16;default:MEMBER" json:"role"`
	Banned       bool      `json:"isBanned"`
	AdminNotes   string    `gorm:"size:2000" json:"adminNotes,omitempty"`
	Badges       []string  `gorm:"serializer:json" json:"badges"`
	JoinedAt     time.Time `gorm:"autoCreateTime" json:"joinedAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Account) TableName() string { return "accounts" }

// IsAdmin 由 Role 派生，不单独存储
func (a *Account) IsAdmin() bool { return a.Role == RoleAdmin }
