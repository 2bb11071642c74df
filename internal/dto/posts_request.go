package dto

type CreatePostRequest struct {
	Title      string       `json:"title"`
	Body       string       `json:"body"`
	AuthorID   OptionalID   `json:"authorId"`
	HashtagIDs []OptionalID `json:"hashtagIds"`
	Hashtags   string       `json:"hashtags"`
	Community  string       `json:"community"`
	Flag       string       `json:"flag"`
}
