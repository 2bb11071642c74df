package handler

import (
	"context"

	"github.com/ForumApp/content-service/internal/model"
	"github.com/ForumApp/content-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Handler struct {
	services *service.Service
	logger   *zap.Logger
}

func New(services *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET"},
		AllowCredentials: true,
	}))
	r.Use(h.requestLogMiddleware)

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.POST("", h.notRequiredAuthMiddleware, h.postsCreate)
			posts.GET("", h.postsGetAll)
			posts.GET("/search", h.postsSearch)

			post := posts.Group("/:postID")
			{
				post.GET("", h.postsGetByID)
				post.GET("/comments", h.commentsGetByPost)
			}
		}

		comments := v1.Group("/comments")
		{
			comments.POST("", h.notRequiredAuthMiddleware, h.commentsCreate)
			comments.GET("/:commentID/replies", h.commentsGetReplies)
		}

		communities := v1.Group("/communities")
		{
			communities.GET("", h.communitiesGet)
			communities.GET("/search", h.communitiesSearch)
		}

		v1.GET("/flags", h.flagsGet)
	}

	return r
}

func (h *Handler) getUserDataFromClaims(ctx context.Context, claims jwt.MapClaims) (*model.CachedUser, error) {
	idFloat, ok := claims["id"].(float64)
	if !ok {
		return nil, errNotAuthorized
	}

	user, err := h.services.UserCache.FindByID(ctx, int64(idFloat))
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.CachedUser {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.CachedUser)
	if !ok {
		return nil
	}

	return &user
}
