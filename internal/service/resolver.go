package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ForumApp/content-service/internal/model"
	"github.com/ForumApp/content-service/internal/repository/postgres"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// resolveName turns a free-text name into its canonical entity:
// case-insensitive lookup, create on miss, and one re-lookup when the
// create loses a race on the unique name index. Every failure mode
// degrades to nil so callers can drop the reference instead of
// failing the whole request. Blank names resolve to nothing.
func resolveName(ctx context.Context, logger *zap.Logger, repo postgres.Named, name string) *model.NamedRef {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	existing, err := repo.FindByNameInsensitive(ctx, name)
	if err == nil {
		return existing
	}
	if err != pgx.ErrNoRows {
		logger.Sugar().Errorf("failed to look up name(%s): %s", name, err.Error())
		return nil
	}

	created, err := repo.Create(ctx, name)
	if err == nil {
		return created
	}

	if errors.Is(err, postgres.ErrUniqueViolation) {
		// Another writer created the same name first; its row is the
		// canonical one.
		winner, err := repo.FindByNameInsensitive(ctx, name)
		if err == nil {
			return winner
		}
		logger.Sugar().Warnf("failed to re-look up name(%s) after conflict: %s", name, err.Error())
		return nil
	}

	logger.Sugar().Errorf("failed to create name(%s): %s", name, err.Error())
	return nil
}
