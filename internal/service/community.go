package service

import (
	"context"
	"strings"

	"github.com/ForumApp/content-service/internal/dto"
	"github.com/ForumApp/content-service/internal/repository"
	"github.com/ForumApp/content-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultCommunityPageSize = 10
	maxCommunityPageSize     = 50
	communitySearchLimit     = 5
)

type communityService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommunityService(logger *zap.Logger, repo *repository.Repository) Community {
	return &communityService{
		logger: logger,
		repo:   repo,
	}
}

// FindPaginated lists communities name-ascending, one zero-based page
// at a time.
func (s *communityService) FindPaginated(ctx context.Context, page int, size int) (*dto.CommunitiesPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultCommunityPageSize
	}
	if size > maxCommunityPageSize {
		size = maxCommunityPageSize
	}

	key := redisrepo.CommunitiesPageKey(page, size)
	cachedPage, err := redisrepo.Get[dto.CommunitiesPage](s.repo.Redis.Default, ctx, key)
	if err == nil && cachedPage != nil {
		return cachedPage, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get communities page(%s) from redis: %s", key, err.Error())
	}

	total, err := s.repo.Postgres.Community.Count(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count communities: %s", err.Error())
		return nil, ErrInternal
	}

	refs, err := s.repo.Postgres.Community.List(ctx, size, page*size)
	if err != nil {
		s.logger.Sugar().Errorf("failed to list communities: %s", err.Error())
		return nil, ErrInternal
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	result := &dto.CommunitiesPage{
		Content:       dto.NewNamedRefs(refs),
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalElements: total,
		HasNext:       page+1 < totalPages,
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, key, result, cacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set communities page(%s) in redis: %s", key, err.Error())
	}

	return result, nil
}

// Search is a typeahead helper: case-insensitive substring match,
// capped to a handful of results. A blank query matches nothing.
func (s *communityService) Search(ctx context.Context, q string) ([]dto.NamedRef, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []dto.NamedRef{}, nil
	}

	refs, err := s.repo.Postgres.Community.Search(ctx, q, communitySearchLimit)
	if err != nil {
		s.logger.Sugar().Errorf("failed to search communities(%s): %s", q, err.Error())
		return nil, ErrInternal
	}

	return dto.NewNamedRefs(refs), nil
}

func (s *communityService) FindAllFlags(ctx context.Context) ([]dto.NamedRef, error) {
	refs, err := s.repo.Postgres.Flag.ListAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to list flags: %s", err.Error())
		return nil, ErrInternal
	}

	return dto.NewNamedRefs(refs), nil
}
