package service

import (
	"context"
	"strings"
	"time"

	"github.com/ForumApp/content-service/internal/dto"
	"github.com/ForumApp/content-service/internal/model"
	"github.com/ForumApp/content-service/internal/repository"
	"github.com/ForumApp/content-service/internal/repository/redisrepo"
	"github.com/ForumApp/content-service/pkg/hashtag"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheTTL = time.Hour

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

// Create builds a post from a best-effort payload: the author, every
// hashtag reference, the community and the flag are each attached only
// if they resolve, and a reference that does not resolve is dropped
// without failing the request.
func (s *postService) Create(ctx context.Context, input dto.CreatePostRequest) (*dto.PostResponse, error) {
	post := model.Post{
		Title:     input.Title,
		Body:      input.Body,
		CreatedAt: time.Now(),
	}

	var author *model.CachedUser
	if id := input.AuthorID.Value(); id != nil {
		found, err := s.repo.Postgres.UserCache.FindByID(ctx, *id)
		if err == nil {
			author = found
			post.AuthorID = &found.ID
		} else if err != pgx.ErrNoRows {
			s.logger.Sugar().Errorf("failed to resolve post author(%d): %s", *id, err.Error())
		}
	}

	tags := make(map[int64]model.NamedRef)

	var explicitIDs []int64
	for _, id := range input.HashtagIDs {
		if v := id.Value(); v != nil {
			explicitIDs = append(explicitIDs, *v)
		}
	}
	if len(explicitIDs) > 0 {
		refs, err := s.repo.Postgres.Hashtag.FindByIDs(ctx, explicitIDs)
		if err != nil {
			s.logger.Sugar().Errorf("failed to resolve hashtag ids: %s", err.Error())
		}
		for _, ref := range refs {
			tags[ref.ID] = ref
		}
	}

	for name := range hashtag.Extract(input.Hashtags) {
		if ref := resolveName(ctx, s.logger, s.repo.Postgres.Hashtag, name); ref != nil {
			tags[ref.ID] = *ref
		}
	}

	var community *model.NamedRef
	if ref := resolveName(ctx, s.logger, s.repo.Postgres.Community, input.Community); ref != nil {
		community = ref
		post.CommunityID = &ref.ID
	}

	var flag *model.NamedRef
	if ref := resolveName(ctx, s.logger, s.repo.Postgres.Flag, input.Flag); ref != nil {
		flag = ref
		post.FlagID = &ref.ID
	}

	hashtagIDs := make([]int64, 0, len(tags))
	hashtags := make([]model.NamedRef, 0, len(tags))
	for id, ref := range tags {
		hashtagIDs = append(hashtagIDs, id)
		hashtags = append(hashtags, ref)
	}

	created, err := s.repo.Postgres.Post.Create(ctx, post, hashtagIDs)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post: %s", err.Error())
		return nil, ErrInternal
	}

	s.invalidateListCaches(ctx)
	if community != nil {
		// Resolution may have created the community; cached pages
		// could be stale either way.
		s.invalidateCommunityCaches(ctx)
	}

	full := &model.FullPost{
		Post:      *created,
		Author:    author,
		Hashtags:  hashtags,
		Community: community,
		Flag:      flag,
	}
	resp := dto.NewPostResponse(full)
	return &resp, nil
}

func (s *postService) FindByID(ctx context.Context, id int64) (*dto.PostResponse, error) {
	cachedPost, err := redisrepo.Get[model.FullPost](s.repo.Redis.Default, ctx, redisrepo.PostKey(id))
	if err == nil && cachedPost != nil {
		resp := dto.NewPostResponse(cachedPost)
		return &resp, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post(%d) from redis: %s", id, err.Error())
	}

	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d) from postgres: %s", id, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.PostKey(id), post, cacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set post(%d) in redis: %s", id, err.Error())
	}

	resp := dto.NewPostResponse(post)
	return &resp, nil
}

func (s *postService) FindAll(ctx context.Context, communityID *int64) ([]dto.PostResponse, error) {
	return s.listPosts(ctx, communityID, "")
}

// Search falls back to the unfiltered listing when the query is
// blank, so an empty search box and the front page show the same
// posts.
func (s *postService) Search(ctx context.Context, q string) ([]dto.PostResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.FindAll(ctx, nil)
	}
	return s.listPosts(ctx, nil, q)
}

func (s *postService) listPosts(ctx context.Context, communityID *int64, q string) ([]dto.PostResponse, error) {
	key := redisrepo.PostListKey(communityID, q)

	cachedPosts, err := redisrepo.GetMany[model.FullPost](s.repo.Redis.Default, ctx, key)
	if err == nil {
		return dto.NewPostResponses(cachedPosts), nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get post list(%s) from redis: %s", key, err.Error())
	}

	var posts []*model.FullPost
	if q != "" {
		posts, err = s.repo.Postgres.Post.SearchTitleOrBody(ctx, q)
	} else {
		posts, err = s.repo.Postgres.Post.FindAll(ctx, communityID)
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to list posts(%s) from postgres: %s", key, err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, key, posts, cacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set post list(%s) in redis: %s", key, err.Error())
	}

	return dto.NewPostResponses(posts), nil
}

// invalidateListCaches drops every memoized post listing; any write
// that adds a post can change any of them.
func (s *postService) invalidateListCaches(ctx context.Context) {
	keys, err := s.repo.Redis.Default.Keys(ctx, redisrepo.POST_LIST_PATTERN).Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to collect post list cache keys: %s", err.Error())
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.repo.Redis.Default.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate post list caches: %s", err.Error())
	}
}

func (s *postService) invalidateCommunityCaches(ctx context.Context) {
	keys, err := s.repo.Redis.Default.Keys(ctx, redisrepo.COMMUNITIES_PATTERN).Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to collect community cache keys: %s", err.Error())
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.repo.Redis.Default.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate community caches: %s", err.Error())
	}
}
