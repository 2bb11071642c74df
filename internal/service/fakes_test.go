package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/ForumApp/content-service/internal/model"
	"github.com/ForumApp/content-service/internal/repository"
	"github.com/ForumApp/content-service/internal/repository/postgres"
	"github.com/ForumApp/content-service/internal/repository/redisrepo"
	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// fakeNamed is an in-memory Named store enforcing the same
// case-insensitive uniqueness the real table does. Scripting hooks
// let tests inject the conflict path.
type fakeNamed struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]model.NamedRef

	// createErrs is consumed one error per Create call; nil entries
	// mean "behave normally".
	createErrs []error
	// missNextFind forces the next FindByNameInsensitive calls to miss.
	missNextFind int
}

func newFakeNamed() *fakeNamed {
	return &fakeNamed{byID: make(map[int64]model.NamedRef)}
}

func (f *fakeNamed) FindByNameInsensitive(_ context.Context, name string) (*model.NamedRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.missNextFind > 0 {
		f.missNextFind--
		return nil, pgx.ErrNoRows
	}

	for _, ref := range f.byID {
		if strings.EqualFold(ref.Name, name) {
			r := ref
			return &r, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeNamed) Create(_ context.Context, name string) (*model.NamedRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	for _, ref := range f.byID {
		if strings.EqualFold(ref.Name, name) {
			return nil, postgres.ErrUniqueViolation
		}
	}

	f.nextID++
	ref := model.NamedRef{ID: f.nextID, Name: name}
	f.byID[ref.ID] = ref
	return &ref, nil
}

func (f *fakeNamed) FindByIDs(_ context.Context, ids []int64) ([]model.NamedRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var refs []model.NamedRef
	for _, id := range ids {
		if ref, ok := f.byID[id]; ok {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

func (f *fakeNamed) List(_ context.Context, limit int, offset int) ([]model.NamedRef, error) {
	all, _ := f.ListAll(context.Background())
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeNamed) ListAll(_ context.Context) ([]model.NamedRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	refs := make([]model.NamedRef, 0, len(f.byID))
	for _, ref := range f.byID {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (f *fakeNamed) Search(_ context.Context, q string, limit int) ([]model.NamedRef, error) {
	all, _ := f.ListAll(context.Background())
	var refs []model.NamedRef
	for _, ref := range all {
		if strings.Contains(strings.ToLower(ref.Name), strings.ToLower(q)) {
			refs = append(refs, ref)
		}
		if len(refs) == limit {
			break
		}
	}
	return refs, nil
}

func (f *fakeNamed) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byID)), nil
}

func (f *fakeNamed) add(name string) model.NamedRef {
	ref, _ := f.Create(context.Background(), name)
	return *ref
}

type createdPost struct {
	post       model.Post
	hashtagIDs []int64
}

type fakePostRepo struct {
	mu      sync.Mutex
	nextID  int64
	posts   map[int64]*model.FullPost
	created []createdPost
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]*model.FullPost)}
}

func (f *fakePostRepo) Create(_ context.Context, post model.Post, hashtagIDs []int64) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	post.ID = f.nextID
	f.created = append(f.created, createdPost{post: post, hashtagIDs: hashtagIDs})
	f.posts[post.ID] = &model.FullPost{Post: post}
	return &post, nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id int64) (*model.FullPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return post, nil
}

func (f *fakePostRepo) FindAll(_ context.Context, communityID *int64) ([]*model.FullPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var posts []*model.FullPost
	for id := f.nextID; id >= 1; id-- { // newest first
		post, ok := f.posts[id]
		if !ok {
			continue
		}
		if communityID != nil && (post.Post.CommunityID == nil || *post.Post.CommunityID != *communityID) {
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (f *fakePostRepo) SearchTitleOrBody(_ context.Context, q string) ([]*model.FullPost, error) {
	all, _ := f.FindAll(context.Background(), nil)
	var posts []*model.FullPost
	for _, post := range all {
		title := strings.ToLower(post.Post.Title)
		body := strings.ToLower(post.Post.Body)
		if strings.Contains(title, strings.ToLower(q)) || strings.Contains(body, strings.ToLower(q)) {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (f *fakePostRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.posts[id]
	return ok, nil
}

func (f *fakePostRepo) put(post *model.FullPost) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if post.Post.ID > f.nextID {
		f.nextID = post.Post.ID
	}
	f.posts[post.Post.ID] = post
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	nextID   int64
	comments map[int64]*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*model.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment model.Comment) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	comment.ID = f.nextID
	stored := comment
	f.comments[comment.ID] = &stored
	return &comment, nil
}

func (f *fakeCommentRepo) FindTopLevel(_ context.Context, postID int64) ([]*model.FullComment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var comments []*model.FullComment
	for id := int64(1); id <= f.nextID; id++ {
		comment, ok := f.comments[id]
		if !ok || comment.PostID != postID || comment.ParentID != nil {
			continue
		}
		comments = append(comments, &model.FullComment{Comment: *comment, ReplyCount: f.replyCountLocked(id)})
	}
	return comments, nil
}

func (f *fakeCommentRepo) FindReplies(_ context.Context, parentID int64) ([]*model.FullComment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var comments []*model.FullComment
	for id := int64(1); id <= f.nextID; id++ {
		comment, ok := f.comments[id]
		if !ok || comment.ParentID == nil || *comment.ParentID != parentID {
			continue
		}
		comments = append(comments, &model.FullComment{Comment: *comment, ReplyCount: f.replyCountLocked(id)})
	}
	return comments, nil
}

func (f *fakeCommentRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.comments[id]
	return ok, nil
}

func (f *fakeCommentRepo) replyCountLocked(id int64) int64 {
	var count int64
	for _, comment := range f.comments {
		if comment.ParentID != nil && *comment.ParentID == id {
			count++
		}
	}
	return count
}

type fakeUserCacheRepo struct {
	mu    sync.Mutex
	users map[int64]model.CachedUser
}

func newFakeUserCacheRepo() *fakeUserCacheRepo {
	return &fakeUserCacheRepo{users: make(map[int64]model.CachedUser)}
}

func (f *fakeUserCacheRepo) Create(_ context.Context, cachedUser model.CachedUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[cachedUser.ID] = cachedUser
	return nil
}

func (f *fakeUserCacheRepo) Update(_ context.Context, id int64, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if name, ok := updates["name"].(string); ok {
		user.Name = name
	}
	f.users[id] = user
	return nil
}

func (f *fakeUserCacheRepo) FindByID(_ context.Context, id int64) (*model.CachedUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

// testEnv wires fakes plus a miniredis-backed cache into the real
// repository aggregate.
type testEnv struct {
	repo      *repository.Repository
	posts     *fakePostRepo
	comments  *fakeCommentRepo
	hashtags  *fakeNamed
	community *fakeNamed
	flags     *fakeNamed
	users     *fakeUserCacheRepo
	redis     *miniredis.Miniredis
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	env := &testEnv{
		posts:     newFakePostRepo(),
		comments:  newFakeCommentRepo(),
		hashtags:  newFakeNamed(),
		community: newFakeNamed(),
		flags:     newFakeNamed(),
		users:     newFakeUserCacheRepo(),
		redis:     mr,
	}
	env.repo = &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			Post:      env.posts,
			Comment:   env.comments,
			Hashtag:   env.hashtags,
			Community: env.community,
			Flag:      env.flags,
			UserCache: env.users,
		},
		Redis: redisrepo.New(rdb),
	}
	return env
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
