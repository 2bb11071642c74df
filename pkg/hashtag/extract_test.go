package hashtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \t\n",
			want: []string{},
		},
		{
			name: "no tags",
			text: "plain text without mentions",
			want: []string{},
		},
		{
			name: "duplicates collapse, case preserved",
			text: "hello @Alice and @bob-2 again @Alice",
			want: []string{"Alice", "bob-2"},
		},
		{
			name: "underscores digits and hyphens",
			text: "@tag_1 @tag-2 @3tag",
			want: []string{"tag_1", "tag-2", "3tag"},
		},
		{
			name: "tag stops at punctuation",
			text: "ship it @golang! and @rust, soon",
			want: []string{"golang", "rust"},
		},
		{
			name: "bare at sign is not a tag",
			text: "email me @ the office",
			want: []string{},
		},
		{
			name: "case variants are distinct candidates",
			text: "@Go and @go",
			want: []string{"Go", "go"},
		},
		{
			name: "adjacent to text",
			text: "see@tag1 mid@tag2end",
			want: []string{"tag1", "tag2end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)

			names := make([]string, 0, len(got))
			for name := range got {
				names = append(names, name)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}
