package model

// CachedUser is the local replica of a user-service account, kept in
// sync through the user event queues. Only what projections need.
type CachedUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
