package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ForumApp/content-service/internal/config"
	"github.com/ForumApp/content-service/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUniqueViolation signals that an insert lost a race against a
// concurrent writer on a unique index. Resolvers recover from it with
// a re-lookup instead of failing the request.
var ErrUniqueViolation = errors.New("unique constraint violation")

const uniqueViolationCode = "23505"

type Post interface {
	Create(ctx context.Context, post model.Post, hashtagIDs []int64) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.FullPost, error)
	FindAll(ctx context.Context, communityID *int64) ([]*model.FullPost, error)
	SearchTitleOrBody(ctx context.Context, q string) ([]*model.FullPost, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindTopLevel(ctx context.Context, postID int64) ([]*model.FullComment, error)
	FindReplies(ctx context.Context, parentID int64) ([]*model.FullComment, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// Named is the uniform store contract for the canonical named
// entities: hashtags, communities and flags.
type Named interface {
	FindByNameInsensitive(ctx context.Context, name string) (*model.NamedRef, error)
	Create(ctx context.Context, name string) (*model.NamedRef, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.NamedRef, error)
	List(ctx context.Context, limit int, offset int) ([]model.NamedRef, error)
	ListAll(ctx context.Context) ([]model.NamedRef, error)
	Search(ctx context.Context, q string, limit int) ([]model.NamedRef, error)
	Count(ctx context.Context) (int64, error)
}

type UserCache interface {
	Create(ctx context.Context, cachedUser model.CachedUser) error
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	FindByID(ctx context.Context, id int64) (*model.CachedUser, error)
}

type PostgresRepository struct {
	Post
	Comment
	Hashtag   Named
	Community Named
	Flag      Named
	UserCache
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:      newPostRepo(db),
		Comment:   newCommentRepo(db),
		Hashtag:   newNamedRepo(db, "hashtags"),
		Community: newNamedRepo(db, "communities"),
		Flag:      newNamedRepo(db, "flags"),
		UserCache: newUserCacheRepo(db),
	}
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
	return pgxpool.New(ctx, connString)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
