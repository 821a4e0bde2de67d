package services

import (
	"testing"

	"crow/internal/db"
	"crow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	post := createTestPost(t, user, "first")

	comment, err := CreateComment(user.ID, post.ID, nil, "nice post")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.Cid)
	assert.Nil(t, comment.ParentID)
}

func TestCreateReply(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	other := createTestUser(t, "bob")
	post := createTestPost(t, user, "first")

	parent, err := CreateComment(user.ID, post.ID, nil, "nice post")
	require.NoError(t, err)

	reply, err := CreateComment(other.ID, post.ID, &parent.ID, "agreed")
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

// Threading is one level deep: replying to a reply is rejected.
func TestCreateReplyDepthLimit(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	post := createTestPost(t, user, "first")

	parent, err := CreateComment(user.ID, post.ID, nil, "top")
	require.NoError(t, err)
	reply, err := CreateComment(user.ID, post.ID, &parent.ID, "reply")
	require.NoError(t, err)

	_, err = CreateComment(user.ID, post.ID, &reply.ID, "reply to reply")
	assert.ErrorIs(t, err, ErrReplyDepth)
}

// A reply's parent must belong to the same post as the reply itself.
func TestCreateReplyParentMismatch(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	postA := createTestPost(t, user, "a")
	postB := createTestPost(t, user, "b")

	parent, err := CreateComment(user.ID, postA.ID, nil, "on post a")
	require.NoError(t, err)

	_, err = CreateComment(user.ID, postB.ID, &parent.ID, "wrong thread")
	assert.ErrorIs(t, err, ErrParentMismatch)
}

func TestCreateCommentValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	post := createTestPost(t, user, "first")

	_, err := CreateComment(user.ID, post.ID, nil, "  ")
	assert.ErrorIs(t, err, ErrEmptyContent)

	_, err = CreateComment(0, post.ID, nil, "hello")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = CreateComment(user.ID, 9999, nil, "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFillCommentCounts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	p1 := createTestPost(t, user, "one")
	p2 := createTestPost(t, user, "two")

	_, err := CreateComment(user.ID, p1.ID, nil, "a")
	require.NoError(t, err)
	_, err = CreateComment(user.ID, p1.ID, nil, "b")
	require.NoError(t, err)

	posts := []models.Post{*p1, *p2}
	FillCommentCounts(posts)

	assert.Equal(t, 2, posts[0].CommentCount)
	assert.Equal(t, 0, posts[1].CommentCount)

	// Deleting the post cascades its comments away.
	require.NoError(t, db.DB.Delete(p1).Error)
	var count int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", p1.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}
