package model

// NamedRef is a canonical named entity (hashtag, community or flag).
// Names are unique ignoring case; the first writer's casing wins.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
