package postgres

import (
	"context"
	"time"

	"github.com/ForumApp/content-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post, hashtagIDs []int64) (*model.Post, error) {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(
		ctx,
		"INSERT INTO posts(author_id, community_id, flag_id, title, body, created_at) VALUES($1, $2, $3, $4, $5, $6) RETURNING id",
		post.AuthorID,
		post.CommunityID,
		post.FlagID,
		post.Title,
		post.Body,
		post.CreatedAt,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	for _, hashtagID := range hashtagIDs {
		if _, err := tx.Exec(
			ctx,
			"INSERT INTO post_hashtags(post_id, hashtag_id) VALUES($1, $2) ON CONFLICT DO NOTHING",
			post.ID,
			hashtagID,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &post, nil
}

const fullPostQuery = `SELECT
	p.id, p.author_id, p.community_id, p.flag_id, p.title, p.body, p.created_at,
	u.name,
	c.name,
	f.name,
	h.id, h.name,
	(SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id AND cm.parent_id IS NULL)
	FROM posts p
	LEFT JOIN cached_users u ON p.author_id = u.id
	LEFT JOIN communities c ON p.community_id = c.id
	LEFT JOIN flags f ON p.flag_id = f.id
	LEFT JOIN post_hashtags ph ON p.id = ph.post_id
	LEFT JOIN hashtags h ON ph.hashtag_id = h.id`

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	rows, err := r.db.Query(ctx, fullPostQuery+" WHERE p.id = $1", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts, err := scanFullPosts(rows)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return nil, pgx.ErrNoRows
	}

	return posts[0], nil
}

func (r *postRepo) FindAll(ctx context.Context, communityID *int64) ([]*model.FullPost, error) {
	query := fullPostQuery
	args := []interface{}{}
	if communityID != nil {
		query += " WHERE p.community_id = $1"
		args = append(args, *communityID)
	}
	query += " ORDER BY p.created_at DESC, p.id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFullPosts(rows)
}

func (r *postRepo) SearchTitleOrBody(ctx context.Context, q string) ([]*model.FullPost, error) {
	query := fullPostQuery +
		" WHERE p.title ILIKE '%' || $1 || '%' OR p.body ILIKE '%' || $1 || '%'" +
		" ORDER BY p.created_at DESC, p.id DESC"

	rows, err := r.db.Query(ctx, query, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFullPosts(rows)
}

func (r *postRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)", id).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// scanFullPosts merges the hashtag join's row multiplication back into
// one FullPost per post id, keeping the query's row order.
func scanFullPosts(rows pgx.Rows) ([]*model.FullPost, error) {
	postMap := make(map[int64]*model.FullPost)
	var order []int64

	for rows.Next() {
		var (
			id            int64
			authorID      *int64
			communityID   *int64
			flagID        *int64
			title         string
			body          string
			createdAt     time.Time
			authorName    *string
			communityName *string
			flagName      *string
			hashtagID     *int64
			hashtagName   *string
			commentCount  int64
		)
		if err := rows.Scan(
			&id,
			&authorID,
			&communityID,
			&flagID,
			&title,
			&body,
			&createdAt,
			&authorName,
			&communityName,
			&flagName,
			&hashtagID,
			&hashtagName,
			&commentCount,
		); err != nil {
			return nil, err
		}

		post, exists := postMap[id]
		if !exists {
			post = &model.FullPost{
				Post: model.Post{
					ID:          id,
					AuthorID:    authorID,
					CommunityID: communityID,
					FlagID:      flagID,
					Title:       title,
					Body:        body,
					CreatedAt:   createdAt,
				},
				CommentCount: commentCount,
			}
			if authorID != nil && authorName != nil {
				post.Author = &model.CachedUser{ID: *authorID, Name: *authorName}
			}
			if communityID != nil && communityName != nil {
				post.Community = &model.NamedRef{ID: *communityID, Name: *communityName}
			}
			if flagID != nil && flagName != nil {
				post.Flag = &model.NamedRef{ID: *flagID, Name: *flagName}
			}
			postMap[id] = post
			order = append(order, id)
		}

		if hashtagID != nil && hashtagName != nil {
			post.Hashtags = append(post.Hashtags, model.NamedRef{ID: *hashtagID, Name: *hashtagName})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	posts := make([]*model.FullPost, 0, len(order))
	for _, id := range order {
		posts = append(posts, postMap[id])
	}

	return posts, nil
}
