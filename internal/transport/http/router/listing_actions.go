package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"violethacks/internal/domain"
	"violethacks/internal/service"
	httpez "violethacks/internal/transport/http/ez"
)

// listingIn 创建/编辑共用的内容字段
type listingIn struct {
	Title       string `json:"title"       binding:"required,max=191"`
	Game        string `json:"game"        binding:"required,max=128"`
	Version     string `json:"version"     binding:"max=64"`
	Description string `json:"description" binding:"max=4000"`
	DownloadURL string `json:"downloadUrl" binding:"required,max=512"`
	Status      string `json:"status"      binding:"required"`
}

func (in *listingIn) validate() (domain.SafetyStatus, error) {
	if !strings.HasPrefix(in.DownloadURL, "http://") && !strings.HasPrefix(in.DownloadURL, "https://") {
		return "", httpez.BadRequest("downloadUrl must start with http:// or https://")
	}
	s := domain.SafetyStatus(in.Status)
	if !s.Valid() {
		return "", httpez.BadRequest("invalid status")
	}
	return s, nil
}

func mountListingActions(api, authed *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(api)
	ezAuth := httpez.New(authed)

	// 公开目录：只有 VERIFIED，最新在前
	httpez.RegisterAction[struct{}, []domain.Listing](ezPublic, d.DB, httpez.Action[struct{}, []domain.Listing]{
		Method: http.MethodGet,
		Path:   "/listings",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.Listing, error) {
			return d.Listings.ListVerified()
		},
	})

	// 下载计数：不要求登录，不存在返回 404
	httpez.RegisterAction[struct{}, *domain.Listing](ezPublic, d.DB, httpez.Action[struct{}, *domain.Listing]{
		Method: http.MethodPost,
		Path:   "/listings/:id/download",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.Listing, error) {
			l, err := d.Listings.IncrementDownloads(c.Param("id"))
			if err != nil {
				return nil, httpez.Internal("increment failed", err)
			}
			if l == nil {
				return nil, httpez.NotFound("listing not found")
			}
			return l, nil
		},
	})

	// 自己的全部列表，含待审/驳回
	httpez.RegisterAction[struct{}, []domain.Listing](ezAuth, d.DB, httpez.Action[struct{}, []domain.Listing]{
		Method: http.MethodGet,
		Path:   "/listings/mine",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]domain.Listing, error) {
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			return d.Listings.ListMine(actor)
		},
	})

	httpez.RegisterAction[listingIn, *domain.Listing](ezAuth, d.DB, httpez.Action[listingIn, *domain.Listing]{
		Method: http.MethodPost,
		Path:   "/listings",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *listingIn) (*domain.Listing, error) {
			safety, err := in.validate()
			if err != nil {
				return nil, err
			}
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			l, err := d.Listings.Create(toInput(in, safety), actor)
			if err != nil {
				return nil, httpez.FromDomain(err)
			}
			return l, nil
		},
	})

	httpez.RegisterAction[listingIn, *domain.Listing](ezAuth, d.DB, httpez.Action[listingIn, *domain.Listing]{
		Method: http.MethodPut,
		Path:   "/listings/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *listingIn) (*domain.Listing, error) {
			safety, err := in.validate()
			if err != nil {
				return nil, err
			}
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			l, err := d.Listings.Update(c.Param("id"), toInput(in, safety), actor)
			if err != nil {
				return nil, httpez.FromDomain(err)
			}
			if l == nil {
				return nil, httpez.NotFound("listing not found")
			}
			return l, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](ezAuth, d.DB, httpez.Action[struct{}, gin.H]{
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

func toInput(in *listingIn, safety domain.SafetyStatus) service.ListingInput {
	return service.ListingInput{
		Title:       strings.TrimSpace(in.Title),
		Game:        strings.TrimSpace(in.Game),
		Version:     strings.TrimSpace(in.Version),
		Description: in.Description,
		DownloadURL: strings.TrimSpace(in.DownloadURL),
		Safety:      safety,
	}
}
