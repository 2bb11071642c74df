package redisrepo

import "fmt"

// Cache keys are built from the exact filter tuple of the query they
// memoize, so a write only has to drop the keys it can affect.
const (
	POST_KEY             = "post:%d"                // <postID>
	POST_LIST_KEY        = "posts:list:%s:q=%s"     // <communityScope>:<searchQuery>
	POST_LIST_PATTERN    = "posts:list:*"
	COMMUNITIES_PAGE_KEY = "communities:page:%d:%d" // <page>:<size>
	COMMUNITIES_PATTERN  = "communities:page:*"
	USER_CACHE_KEY       = "user-cache:%d" // <userID>
)

func PostKey(postID int64) string {
	return fmt.Sprintf(POST_KEY, postID)
}

func PostListKey(communityID *int64, q string) string {
	scope := "all"
	if communityID != nil {
		scope = fmt.Sprintf("community:%d", *communityID)
	}
	return fmt.Sprintf(POST_LIST_KEY, scope, q)
}

func CommunitiesPageKey(page int, size int) string {
	return fmt.Sprintf(COMMUNITIES_PAGE_KEY, page, size)
}

func UserCacheKey(userID int64) string {
	return fmt.Sprintf(USER_CACHE_KEY, userID)
}
