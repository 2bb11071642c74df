package service

import (
	"context"
	"time"

	"github.com/ForumApp/content-service/internal/dto"
	"github.com/ForumApp/content-service/internal/model"
	"github.com/ForumApp/content-service/internal/repository"
	"github.com/ForumApp/content-service/internal/repository/redisrepo"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

// Create requires a resolvable postId and treats everything else as
// best-effort: an author or parent that does not resolve is left
// unset. No check that the parent belongs to the same post; a
// resolvable cross-post parent is attached as supplied.
func (s *commentService) Create(ctx context.Context, input dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if !input.PostID.Present {
		return nil, ErrPostIDRequired
	}
	if !input.PostID.Valid {
		return nil, ErrInvalidPostID
	}

	postID := input.PostID.Int64
	exists, err := s.repo.Postgres.Post.ExistsByID(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check post(%d) existence: %s", postID, err.Error())
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment := model.Comment{
		PostID:    postID,
		Body:      input.Body,
		CreatedAt: time.Now(),
	}

	var author *model.CachedUser
	if id := input.AuthorID.Value(); id != nil {
		found, err := s.repo.Postgres.UserCache.FindByID(ctx, *id)
		if err == nil {
			author = found
			comment.AuthorID = &found.ID
		} else if err != pgx.ErrNoRows {
			s.logger.Sugar().Errorf("failed to resolve comment author(%d): %s", *id, err.Error())
		}
	}

	if id := input.ParentID.Value(); id != nil {
		parentExists, err := s.repo.Postgres.Comment.ExistsByID(ctx, *id)
		if err != nil {
			s.logger.Sugar().Errorf("failed to check parent comment(%d) existence: %s", *id, err.Error())
		} else if parentExists {
			comment.ParentID = id
		}
	}

	created, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create comment on post(%d): %s", postID, err.Error())
		return nil, ErrInternal
	}

	// The post's top-level count and the parent's reply count are
	// cached inside projections; drop them.
	s.invalidateCommentCaches(ctx, postID)

	resp := dto.NewCommentResponse(&model.FullComment{
		Comment: *created,
		Author:  author,
	})
	return &resp, nil
}

// FindPostComments returns only top-level comments, distinguishing a
// missing post from a post with no comments.
func (s *commentService) FindPostComments(ctx context.Context, postID int64) ([]dto.CommentResponse, error) {
	exists, err := s.repo.Postgres.Post.ExistsByID(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check post(%d) existence: %s", postID, err.Error())
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comments, err := s.repo.Postgres.Comment.FindTopLevel(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return dto.NewCommentResponses(comments), nil
}

// FindCommentReplies returns one level of children.
func (s *commentService) FindCommentReplies(ctx context.Context, commentID int64) ([]dto.CommentResponse, error) {
	exists, err := s.repo.Postgres.Comment.ExistsByID(ctx, commentID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check comment(%d) existence: %s", commentID, err.Error())
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrCommentNotFound
	}

	replies, err := s.repo.Postgres.Comment.FindReplies(ctx, commentID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find comment(%d) replies: %s", commentID, err.Error())
		return nil, ErrInternal
	}

	return dto.NewCommentResponses(replies), nil
}

func (s *commentService) invalidateCommentCaches(ctx context.Context, postID int64) {
	keys := []string{redisrepo.PostKey(postID)}

	listKeys, err := s.repo.Redis.Default.Keys(ctx, redisrepo.POST_LIST_PATTERN).Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to collect post list cache keys: %s", err.Error())
	} else {
		keys = append(keys, listKeys...)
	}

	if err := s.repo.Redis.Default.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate caches for post(%d): %s", postID, err.Error())
	}
}
