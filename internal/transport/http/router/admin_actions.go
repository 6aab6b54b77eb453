package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"violethacks/internal/domain"
	httpez "violethacks/internal/transport/http/ez"
)

// 管理端接口集中在这里注册。token 带 ADMIN 只是门票，
// 每个动作仍按库里的最新角色走 policy 判断
func mountAdminActions(admin *gin.RouterGroup, d Deps) {
	ez := httpez.New(admin)

	// --- 账号目录 ---
	type listQ struct {
		Offset int    `form:"offset,default=0"`
		Limit  int    `form:"limit,default=20"`
		Q      string `form:"q"` // 按 email/username 模糊搜
	}
	type listOut struct {
		Total int64   `json:"total"`
		Items []gin.H `json:"items"`
	}
	httpez.RegisterAction[listQ, listOut](ez, d.DB, httpez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/accounts",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *listQ) (listOut, error) {
			if in.Limit <= 0 || in.Limit > 100 {
				in.Limit = 20
			}
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return listOut{}, err
			}
			as, total, err := d.AccountSvc.List(actor, in.Q, in.Offset, in.Limit)
			if err != nil {
				return listOut{}, httpez.FromDomain(err)
			}
			out := listOut{Total: total, Items: make([]gin.H, 0, len(as))}
			for i := range as {
				out.Items = append(out.Items, accountView(&as[i], true))
			}
			return out, nil
		},
	})

	// --- 封禁 / 解封 ---
	type banIn struct {
		Banned bool `json:"banned"`
	}
	httpez.RegisterAction[banIn, gin.H](ez, d.DB, httpez.Action[banIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/accounts/:id/ban",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *banIn) (gin.H, error) {
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			a, err := d.AccountSvc.SetBanned(actor, c.Param("id"), in.Banned)
			if err != nil {
				return nil, httpez.FromDomain(err)
			}
			if a == nil {
				return nil, httpez.NotFound("account not found")
			}
			return accountView(a, true), nil
		},
	})

	// --- 改角色 ---
	type roleIn struct {
		Role string `json:"role" binding:"required"`
	}
	httpez.RegisterAction[roleIn, gin.H](ez, d.DB, httpez.Action[roleIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/accounts/:id/role",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *roleIn) (gin.H, error) {
			role := domain.Role(in.Role)
			if !role.Valid() {
				return nil, httpez.BadRequest("invalid role")
			}
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			a, err := d.AccountSvc.SetRole(actor, c.Param("id"), role)
			if err != nil {
				return nil, httpez.FromDomain(err)
			}
			if a == nil {
				return nil, httpez.NotFound("account not found")
			}
			return accountView(a, true), nil
		},
	})

	// --- 管理员备注 + 徽章 ---
	type adminDataIn struct {
		Notes  string   `json:"notes"  binding:"max=2000"`
		Badges []string `json:"badges"`
	}
	httpez.RegisterAction[adminDataIn, gin.H](ez, d.DB, httpez.Action[adminDataIn, gin.H]{
		Method: http.MethodPut,
		Path:   "/accounts/:id/admin-data",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *adminDataIn) (gin.H, error) {
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			a, err := d.AccountSvc.SetAdminData(actor, c.Param("id"), in.Notes, in.Badges)
			if err != nil {
				return nil, httpez.FromDomain(err)
			}
			if a == nil {
				return nil, httpez.NotFound("account not found")
			}
			return accountView(a, true), nil
		},
	})

	// --- 审核队列 ---
	type queueQ struct {
		Status string `form:"status,default=PENDING"`
	}
	httpez.RegisterAction[queueQ, []domain.Listing](ez, d.DB, httpez.Action[queueQ, []domain.Listing]{
		Method: http.MethodGet,
		Path:   "/listings",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *queueQ) ([]domain.Listing, error) {
			status := domain.ModerationStatus(in.Status)
			if !status.Valid() {
				return nil, httpez.BadRequest("invalid status")
			}
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			ls, err := d.Listings.ListByStatus(actor, status)
			if err != nil {
				return nil, httpez.FromDomain(err)
			}
			return ls, nil
		},
	})

	// --- 审核状态流转 ---
	type statusIn struct {
		Status string `json:"status" binding:"required"`
	}
	httpez.RegisterAction[statusIn, *domain.Listing](ez, d.DB, httpez.Action[statusIn, *domain.Listing]{
		Method: http.MethodPost,
		Path:   "/listings/:id/status",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *statusIn) (*domain.Listing, error) {
			status := domain.ModerationStatus(in.Status)
			if !status.Valid() {
				return nil, httpez.BadRequest("invalid status")
			}
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			l, err := d.Listings.SetModerationStatus(c.Param("id"), status, actor)
			if err != nil {
				return nil, httpez.FromDomain(err)
			}
			if l == nil {
				return nil, httpez.NotFound("listing not found")
			}
			return l, nil
		},
	})

	// --- 删除任意列表（级联评论） ---
	httpez.RegisterAction[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/listings/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			if err := d.Listings.Delete(c.Param("id"), actor); err != nil {
				return nil, httpez.FromDomain(err)
			}
			return gin.H{"id": c.Param("id")}, nil
		},
	})
}
