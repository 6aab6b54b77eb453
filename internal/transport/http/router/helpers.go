package router

import (
	"github.com/gin-gonic/gin"

	"violethacks/internal/domain"
	"violethacks/internal/repo"
	httpez "violethacks/internal/transport/http/ez"
)

// currentAccount 用 token 里的 uid 取库里最新状态；
// 角色/封禁以库为准，不信任 token 快照
func currentAccount(c *gin.Context, accounts *repo.AccountRepo) (*domain.Account, error) {
	uid := c.GetString("userId")
	if uid == "" {
		return nil, httpez.Unauthorized("unauthorized")
	}
	a, err := accounts.FindByID(uid)
	if err != nil {
		return nil, httpez.Internal("db error", err)
	}
	if a == nil {
		return nil, httpez.Unauthorized("account not found")
	}
	return a, nil
}

// accountView 对外展示的账号字段；adminNotes 只在管理端视图出现
func accountView(a *domain.Account, withAdminData bool) gin.H {
	v := gin.H{
		"id":       a.ID,
		"email":    a.Email,
		"username": a.Username,
		"avatar":   a.Avatar,
		"bio":      a.Bio,
		"role":     a.Role,
		"isAdmin":  a.IsAdmin(),
		"isBanned": a.Banned,
		"joinedAt": a.JoinedAt,
		"badges":   a.Badges,
	}
	if withAdminData {
		v["adminNotes"] = a.AdminNotes
	}
	return v
}

func commentView(c *domain.Comment) gin.H {
	return gin.H{
		"id":         c.ID,
		"cheatId":    c.ListingID,
		"userId":     c.UserID,
		"username":   c.Username,
		"userAvatar": c.UserAvatar,
		"userRole":   c.UserRole,
		"isAdmin":    c.AuthorIsAdmin(),
		"text":       c.Text,
		"createdAt":  c.CreatedAt,
	}
}

func commentViews(cs []domain.Comment) []gin.H {
	out := make([]gin.H, 0, len(cs))
	for i := range cs {
		out = append(out, commentView(&cs[i]))
	}
	return out
}
