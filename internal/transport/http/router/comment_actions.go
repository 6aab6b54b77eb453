package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	httpez "violethacks/internal/transport/http/ez"
)

func mountCommentActions(api, authed *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(api)
	ezAuth := httpez.New(authed)

	httpez.RegisterAction[struct{}, []gin.H](ezPublic, d.DB, httpez.Action[struct{}, []gin.H]{
		Method: http.MethodGet,
		Path:   "/listings/:id/comments",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) ([]gin.H, error) {
			cs, err := d.Comments.List(c.Param("id"))
			if err != nil {
				return nil, httpez.Internal("list comments failed", err)
			}
			return commentViews(cs), nil
		},
	})

	type commentIn struct {
		Text string `json:"text" binding:"required,max=2000"`
	}
	httpez.RegisterAction[commentIn, gin.H](ezAuth, d.DB, httpez.Action[commentIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/listings/:id/comments",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, _ *gorm.DB, in *commentIn) (gin.H, error) {
			actor, err := currentAccount(c, d.Accounts)
			if err != nil {
				return nil, err
			}
			cm, err := d.Comments.Add(c.Param("id"), actor, in.Text)
			if err != nil {
				return nil, httpez.FromDomain(err)
			}
			if cm == nil {
				return nil, httpez.NotFound("listing not found")
			}
			return commentView(cm), nil
		},
	})
}
