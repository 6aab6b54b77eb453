package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"violethacks/internal/core/auth"
	"violethacks/internal/repo"
	"violethacks/internal/service"
	mdw "violethacks/internal/transport/http/middleware"
)

// Deps 两个引擎共用的依赖
type Deps struct {
	DB       *gorm.DB
	JWT      *auth.JWTer
	Accounts *repo.AccountRepo

	Auth       *service.AuthService
	AccountSvc *service.AccountService
	Listings   *service.ListingService
	Comments   *service.CommentService
	Stats      *service.StatsService
}

// NewAPIEngine 用户端：目录、登录、上传、评论、统计
func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(), // 单页前端跨域
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	api := r.Group("/api/v1")

	// 鉴权分组（拿得到 userId 的路由都挂这里）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWT, ""))

	mountAuthActions(api, authed, d)
	mountListingActions(api, authed, d)
	mountCommentActions(api, authed, d)
	mountStatsActions(api, d)

	return r
}
