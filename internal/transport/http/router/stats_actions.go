package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"violethacks/internal/domain"
	httpez "violethacks/internal/transport/http/ez"
)

func mountStatsActions(api *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(api)

	httpez.RegisterAction[struct{}, *domain.SiteStats](ezPublic, d.DB, httpez.Action[struct{}, *domain.SiteStats]{
		Method: http.MethodGet,
		Path:   "/stats",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (*domain.SiteStats, error) {
			s, err := d.Stats.Compute(c.Request.Context())
			if err != nil {
				return nil, httpez.Internal("compute stats failed", err)
			}
			return s, nil
		},
	})
}
