package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	httpez "violethacks/internal/transport/http/ez"
)

func mountAuthActions(api, authed *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(api)

	// /auth/login：管理员走固定密钥；未知邮箱自动注册并发 JWT
	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token string `json:"token"`
		IsNew bool   `json:"isNew"`
		User  gin.H  `json:"user"`
	}
	httpez.RegisterAction[loginIn, loginOut](ezPublic, d.DB, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *loginIn) (loginOut, error) {
			a, isNew, err := d.Auth.Authenticate(in.Email, in.Password)
			if err != nil {
				return loginOut{}, httpez.FromDomain(err)
			}
			tok, err := d.JWT.Issue(a.ID, string(a.Role))
			if err != nil || tok == "" {
				return loginOut{}, httpez.Internal("issue token failed", err)
			}
			return loginOut{Token: tok, IsNew: isNew, User: accountView(a, false)}, nil
		},
	})

	ezAuth := httpez.New(authed)

	httpez.RegisterAction[struct{}, gin.H](ezAuth, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			a, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			return accountView(a, false), nil
		},
	})

	// /me/profile：本人改 bio/avatar，重复提交同样输入结果不变
	type profileIn struct {
		Bio    string `json:"bio"    binding:"max=500"`
		Avatar string `json:"avatar" binding:"max=255"`
	}
	httpez.RegisterAction[profileIn, gin.H](ezAuth, d.DB, httpez.Action[profileIn, gin.H]{
		Method: http.MethodPut,
		Path:   "/me/profile",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *profileIn) (gin.H, error) {
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			a, err := d.AccountSvc.UpdateProfile(actor, in.Bio, in.Avatar)
			if err != nil {
				return nil, httpez.FromDomain(err)
			}
			if a == nil {
				return nil, httpez.NotFound("account not found")
			}
			return accountView(a, false), nil
		},
	})
}
