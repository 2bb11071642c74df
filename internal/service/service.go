package service

import (
	"context"

	"github.com/ForumApp/content-service/internal/dto"
	"github.com/ForumApp/content-service/internal/model"
	"github.com/ForumApp/content-service/internal/rabbitmq"
	"github.com/ForumApp/content-service/internal/repository"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, input dto.CreatePostRequest) (*dto.PostResponse, error)
	FindByID(ctx context.Context, id int64) (*dto.PostResponse, error)
	FindAll(ctx context.Context, communityID *int64) ([]dto.PostResponse, error)
	Search(ctx context.Context, q string) ([]dto.PostResponse, error)
}

type Comment interface {
	Create(ctx context.Context, input dto.CreateCommentRequest) (*dto.CommentResponse, error)
	FindPostComments(ctx context.Context, postID int64) ([]dto.CommentResponse, error)
	FindCommentReplies(ctx context.Context, commentID int64) ([]dto.CommentResponse, error)
}

type Community interface {
	FindPaginated(ctx context.Context, page int, size int) (*dto.CommunitiesPage, error)
	Search(ctx context.Context, q string) ([]dto.NamedRef, error)
	FindAllFlags(ctx context.Context) ([]dto.NamedRef, error)
}

type UserCache interface {
	Create(ctx context.Context, cachedUser model.CachedUser) error
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	FindByID(ctx context.Context, id int64) (*model.CachedUser, error)
	StartConsume(ctx context.Context)
}

type Service struct {
	Post
	Comment
	Community
	UserCache
}

func New(logger *zap.Logger, repo *repository.Repository, rabbitmq *rabbitmq.MQConn) *Service {
	return &Service{
		Post:      newPostService(logger, repo),
		Comment:   newCommentService(logger, repo),
		Community: newCommunityService(logger, repo),
		UserCache: newUserCacheService(logger, repo, rabbitmq),
	}
}

func (s *Service) StartConsumeAll(ctx context.Context) {
	s.UserCache.StartConsume(ctx)
}
