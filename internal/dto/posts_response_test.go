package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ForumApp/content-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostResponse_ShallowReferencesOnly(t *testing.T) {
	created := time.Date(2025, 3, 9, 12, 30, 0, 0, time.UTC)
	authorID := int64(4)

	full := &model.FullPost{
		Post: model.Post{
			ID:        1,
			AuthorID:  &authorID,
			Title:     "title",
			Body:      "body",
			CreatedAt: created,
		},
		Author:       &model.CachedUser{ID: 4, Name: "mira"},
		Hashtags:     []model.NamedRef{{ID: 2, Name: "go"}},
		Community:    &model.NamedRef{ID: 3, Name: "dev"},
		CommentCount: 5,
	}

	resp := NewPostResponse(full)

	require.NotNil(t, resp.CreatedAt)
	assert.Equal(t, "2025-03-09T12:30:00Z", *resp.CreatedAt)
	require.NotNil(t, resp.Author)
	assert.Equal(t, AuthorRef{ID: 4, Name: "mira"}, *resp.Author)
	assert.Equal(t, []NamedRef{{ID: 2, Name: "go"}}, resp.Hashtags)
	assert.Nil(t, resp.Flag)
	assert.Equal(t, int64(5), resp.CommentCount)

	// The wire form must carry counts, never nested comment lists.
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "commentCount")
	assert.NotContains(t, decoded, "comments")
	assert.NotContains(t, decoded, "replies")
}

func TestNewPostResponse_ZeroTimestampIsNull(t *testing.T) {
	resp := NewPostResponse(&model.FullPost{})
	assert.Nil(t, resp.CreatedAt)
	assert.Nil(t, resp.Author)
	assert.NotNil(t, resp.Hashtags, "empty set serializes as [] not null")
}

func TestNewCommentResponse(t *testing.T) {
	parentID := int64(10)
	full := &model.FullComment{
		Comment: model.Comment{
			ID:        11,
			ParentID:  &parentID,
			PostID:    2,
			Body:      "reply",
			CreatedAt: time.Date(2025, 3, 9, 13, 0, 0, 0, time.UTC),
		},
		ReplyCount: 3,
	}

	resp := NewCommentResponse(full)

	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, int64(2), resp.PostID)
	require.NotNil(t, resp.ParentID)
	assert.Equal(t, parentID, *resp.ParentID)
	assert.Nil(t, resp.Author)
	assert.Equal(t, int64(3), resp.ReplyCount)
}
