package postgres

import (
	"context"
	"time"

	"github.com/ForumApp/content-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO comments(parent_id, post_id, author_id, body, created_at) VALUES($1, $2, $3, $4, $5) RETURNING id",
		comment.ParentID,
		comment.PostID,
		comment.AuthorID,
		comment.Body,
		comment.CreatedAt,
	).Scan(&comment.ID); err != nil {
		return nil, err
	}

	return &comment, nil
}

const fullCommentQuery = `SELECT
	c.id, c.parent_id, c.post_id, c.author_id, c.body, c.created_at,
	u.name,
	(SELECT COUNT(*) FROM comments r WHERE r.parent_id = c.id)
	FROM comments c
	LEFT JOIN cached_users u ON c.author_id = u.id`

func (r *commentRepo) FindTopLevel(ctx context.Context, postID int64) ([]*model.FullComment, error) {
	rows, err := r.db.Query(
		ctx,
		fullCommentQuery+" WHERE c.post_id = $1 AND c.parent_id IS NULL ORDER BY c.created_at ASC, c.id ASC",
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFullComments(rows)
}

func (r *commentRepo) FindReplies(ctx context.Context, parentID int64) ([]*model.FullComment, error) {
	rows, err := r.db.Query(
		ctx,
		fullCommentQuery+" WHERE c.parent_id = $1 ORDER BY c.created_at ASC, c.id ASC",
		parentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFullComments(rows)
}

func (r *commentRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)", id).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func scanFullComments(rows pgx.Rows) ([]*model.FullComment, error) {
	var comments []*model.FullComment
	for rows.Next() {
		var (
			comment    model.FullComment
			authorName *string
		)
		if err := rows.Scan(
			&comment.Comment.ID,
			&comment.Comment.ParentID,
			&comment.Comment.PostID,
			&comment.Comment.AuthorID,
			&comment.Comment.Body,
			&comment.Comment.CreatedAt,
			&authorName,
			&comment.ReplyCount,
		); err != nil {
			return nil, err
		}

		if comment.Comment.AuthorID != nil && authorName != nil {
			comment.Author = &model.CachedUser{ID: *comment.Comment.AuthorID, Name: *authorName}
		}

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
