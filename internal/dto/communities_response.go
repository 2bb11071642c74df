package dto

import "github.com/ForumApp/content-service/internal/model"

// CommunitiesPage mirrors the pagination envelope the dashboard
// client expects.
type CommunitiesPage struct {
	Content       []NamedRef `json:"content"`
	CurrentPage   int        `json:"currentPage"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int64      `json:"totalElements"`
	HasNext       bool       `json:"hasNext"`
}

func NewNamedRefs(refs []model.NamedRef) []NamedRef {
	out := make([]NamedRef, 0, len(refs))
	for _, r := range refs {
		out = append(out, NamedRef{ID: r.ID, Name: r.Name})
	}
	return out
}
