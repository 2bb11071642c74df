package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityService_FindPaginated(t *testing.T) {
	env := newTestEnv(t)
	svc := newCommunityService(testLogger(), env.repo)

	for _, name := range []string{"delta", "alpha", "echo", "bravo", "golf", "charlie", "foxtrot"} {
		env.community.add(name)
	}

	page0, err := svc.FindPaginated(context.Background(), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), page0.TotalElements)
	assert.Equal(t, 3, page0.TotalPages)
	assert.Equal(t, 0, page0.CurrentPage)
	assert.True(t, page0.HasNext)
	require.Len(t, page0.Content, 3)
	assert.Equal(t, "alpha", page0.Content[0].Name)
	assert.Equal(t, "bravo", page0.Content[1].Name)

	page2, err := svc.FindPaginated(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.False(t, page2.HasNext)
	assert.Len(t, page2.Content, 1)
	assert.Equal(t, "golf", page2.Content[0].Name)
}

func TestCommunityService_FindPaginated_DefaultsAndClamps(t *testing.T) {
	env := newTestEnv(t)
	svc := newCommunityService(testLogger(), env.repo)
	env.community.add("one")

	page, err := svc.FindPaginated(context.Background(), -5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, page.CurrentPage)
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestCommunityService_Search(t *testing.T) {
	env := newTestEnv(t)
	svc := newCommunityService(testLogger(), env.repo)

	for _, name := range []string{"golang", "go-gardening", "gophers", "going-out", "gold", "chess"} {
		env.community.add(name)
	}

	// Blank query matches nothing rather than everything.
	blank, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, blank)

	results, err := svc.Search(context.Background(), "GO")
	require.NoError(t, err)
	assert.Len(t, results, 5, "typeahead results are capped")
	for _, r := range results {
		assert.NotEqual(t, "chess", r.Name)
	}
}

func TestCommunityService_FindAllFlags(t *testing.T) {
	env := newTestEnv(t)
	svc := newCommunityService(testLogger(), env.repo)

	env.flags.add("Question")
	env.flags.add("Announcement")

	flags, err := svc.FindAllFlags(context.Background())
	require.NoError(t, err)
	require.Len(t, flags, 2)
	assert.Equal(t, "Announcement", flags[0].Name, "name ascending")
}
