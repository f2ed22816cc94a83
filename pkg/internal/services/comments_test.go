package services

import (
	"testing"
	"time"

	"chronicle/pkg/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommentWithPostOrdering(t *testing.T) {
	useTestDatabase(t)

	now := time.Now()
	alice := makeAccount(t, "alice")
	bob := makeAccount(t, "bob")
	post := makePost(t, alice, true, now.Add(-time.Hour), nil)

	first := makeComment(t, bob, post, "first")
	second := makeComment(t, alice, post, "second")
	third := makeComment(t, bob, post, "third")

	// Pin distinct timestamps so the ordering is deterministic.
	require.NoError(t, database.C.Model(&first).Update("created_at", now.Add(-3*time.Minute)).Error)
	require.NoError(t, database.C.Model(&second).Update("created_at", now.Add(-2*time.Minute)).Error)
	require.NoError(t, database.C.Model(&third).Update("created_at", now.Add(-time.Minute)).Error)

	items, err := ListCommentWithPost(post.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Threads render oldest first.
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.Before(items[i-1].CreatedAt))
	}
	assert.Equal(t, "first", items[0].Text)
	assert.Equal(t, bob.Name, items[0].Author.Name)
}

func TestNewCommentStampsAuthorAndPost(t *testing.T) {
	useTestDatabase(t)

	now := time.Now()
	alice := makeAccount(t, "alice")
	bob := makeAccount(t, "bob")
	post := makePost(t, alice, true, now.Add(-time.Hour), nil)

	item, err := NewComment(bob, post, "hello there")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, item.AuthorID)
	assert.Equal(t, post.ID, item.PostID)
}

func TestGetCommentScopedToPost(t *testing.T) {
	useTestDatabase(t)

	now := time.Now()
	alice := makeAccount(t, "alice")
	first := makePost(t, alice, true, now.Add(-time.Hour), nil)
	second := makePost(t, alice, true, now.Add(-time.Hour), nil)
	comment := makeComment(t, alice, first, "on the first post")

	_, err := GetComment(comment.ID, first.ID)
	assert.NoError(t, err)

	// The same comment id under another post is not found.
	_, err = GetComment(comment.ID, second.ID)
	assert.Error(t, err)
}
