package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"retroboard/internal/models"
	"retroboard/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	return New(testutil.NewDB(t))
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreate_DefaultsAndUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	author := testutil.CreateUser(t, s.db, "alice")

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		session, err := s.Create(ctx, nil, nil, author)
		require.NoError(t, err)
		require.NotNil(t, session)

		assert.NotEmpty(t, session.ID)
		assert.False(t, seen[session.ID], "duplicate session id %s", session.ID)
		seen[session.ID] = true

		assert.Equal(t, author.ID, session.CreatedBy.ID)
		assert.Equal(t, models.DefaultSessionOptions(), session.Options)
		require.Len(t, session.Columns, 3)
		for j, c := range session.Columns {
			assert.Equal(t, j, c.Index)
			assert.NotEmpty(t, c.ID)
		}
		assert.Equal(t, models.ColumnTypeWell, session.Columns[0].Type)
		assert.Empty(t, session.Posts)
	}
}

func TestCreate_CustomOptionsAndColumns(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	author := testutil.CreateUser(t, s.db, "alice")

	options := &models.SessionOptions{MaxUpVotes: intPtr(3), AllowSelfVoting: true}
	columns := []models.Column{
		{Type: models.ColumnTypeStart, Label: "Start"},
		{Type: models.ColumnTypeStop, Label: "Stop"},
	}

	session, err := s.Create(ctx, options, columns, author)
	require.NoError(t, err)

	require.NotNil(t, session.Options.MaxUpVotes)
	assert.Equal(t, 3, *session.Options.MaxUpVotes)
	assert.True(t, session.Options.AllowSelfVoting)
	assert.False(t, session.Options.AllowActions)
	require.Len(t, session.Columns, 2)
	assert.Equal(t, "Stop", session.Columns[1].Label)
}

func TestCreate_IDCollision(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	author := testutil.CreateUser(t, s.db, "alice")
	s.newSessionID = func() string { return "fixed-id" }

	_, err := s.Create(ctx, nil, nil, author)
	require.NoError(t, err)

	_, err = s.Create(ctx, nil, nil, author)
	assert.ErrorIs(t, err, ErrSessionExists)

	session, err := s.GetSession(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Len(t, session.Columns, 3, "the failed create must not touch the existing columns")
}

func TestGetSession_Missing(t *testing.T) {
	s := newTestStore(t)

	session, err := s.GetSession(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestGetSession_PostsOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := testutil.CreateUser(t, s.db, "alice")
	session, err := s.Create(ctx, nil, nil, alice)
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{3 * time.Minute, time.Minute, 2 * time.Minute} {
		_, err := s.SavePost(ctx, alice.ID, session.ID, &models.Post{
			Content:     []string{"third", "first", "second"}[i],
			ColumnIndex: i,
			CreatedAt:   base.Add(offset),
		})
		require.NoError(t, err)
	}

	got, err := s.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, got.Posts, 3)
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, got.Posts[i].Content)
		assert.Equal(t, alice.ID, got.Posts[i].User.ID)
	}
	for i := 1; i < len(got.Posts); i++ {
		assert.True(t, got.Posts[i-1].CreatedAt.Before(got.Posts[i].CreatedAt))
	}
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := testutil.CreateUser(t, s.db, "alice")

	got, err := s.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	missing, err := s.GetUser(ctx, "00000000-0000-0000-0000-000000000000")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveSession_UpdatesFieldsAndColumns(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := testutil.CreateUser(t, s.db, "alice")
	bob := testutil.CreateUser(t, s.db, "bob")
	session, err := s.Create(ctx, nil, nil, alice)
	require.NoError(t, err)
	firstColumnID := session.Columns[0].ID

	session.Name = strPtr("Sprint 42")
	session.Options.BlurCards = true
	session.Options.AllowGiphy = false
	session.Columns = []models.Column{
		{Type: models.ColumnTypeWell, Label: "Good"},
		{Type: models.ColumnTypeNotWell, Label: "Bad"},
	}
	require.NoError(t, s.SaveSession(ctx, bob.ID, session))

	got, err := s.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Sprint 42", *got.Name)
	assert.True(t, got.Options.BlurCards)
	assert.False(t, got.Options.AllowGiphy)
	assert.Equal(t, alice.ID, got.CreatedBy.ID, "saving never changes the creator")
	require.Len(t, got.Columns, 2)
	assert.Equal(t, "Good", got.Columns[0].Label)
	assert.Equal(t, firstColumnID, got.Columns[0].ID)
	assert.Equal(t, "Bad", got.Columns[1].Label)
}

func TestSaveSession_InsertsNewSession(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := testutil.CreateUser(t, s.db, "alice")

	session := &models.Session{ID: "imported", Name: strPtr("Imported"), Options: models.DefaultSessionOptions()}
	require.NoError(t, s.SaveSession(ctx, alice.ID, session))

	got, err := s.GetSession(ctx, "imported")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, alice.ID, got.CreatedBy.ID)
	assert.Empty(t, got.Columns, "nil columns leave the column set untouched")
}

func TestSavePost_AuthorEdits(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := testutil.CreateUser(t, s.db, "alice")
	session, err := s.Create(ctx, nil, nil, alice)
	require.NoError(t, err)

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	post, err := s.SavePost(ctx, alice.ID, session.ID, &models.Post{Content: "draft", CreatedAt: created})
	require.NoError(t, err)
	require.NotEmpty(t, post.ID)
	assert.Equal(t, alice.ID, post.UserID)

	edit := &models.Post{ID: post.ID, Content: "edited", ColumnIndex: 2, Action: strPtr("follow up")}
	saved, err := s.SavePost(ctx, alice.ID, session.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, "edited", saved.Content)
	assert.True(t, created.Equal(saved.CreatedAt), "an edit keeps the creation time")

	got, err := s.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, got.Posts, 1)
	assert.Equal(t, "edited", got.Posts[0].Content)
	assert.Equal(t, 2, got.Posts[0].ColumnIndex)
	assert.Equal(t, "follow up", *got.Posts[0].Action)
	assert.Equal(t, alice.ID, got.Posts[0].User.ID)
}

func TestSavePost_RejectsForeignID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := testutil.CreateUser(t, s.db, "alice")
	bob := testutil.CreateUser(t, s.db, "bob")
	aliceBoard, err := s.Create(ctx, nil, nil, alice)
	require.NoError(t, err)
	bobBoard, err := s.Create(ctx, nil, nil, bob)
	require.NoError(t, err)

	post, err := s.SavePost(ctx, alice.ID, aliceBoard.ID, &models.Post{Content: "alice original"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		userID    string
		sessionID string
	}{
		{"other author, same session", bob.ID, aliceBoard.ID},
		{"other author, other session", bob.ID, bobBoard.ID},
		{"same author, other session", alice.ID, bobBoard.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SavePost(ctx, tt.userID, tt.sessionID, &models.Post{ID: post.ID, Content: "hijack", ColumnIndex: 1})
			assert.ErrorIs(t, err, ErrForbidden)
		})
	}

	got, err := s.GetSession(ctx, aliceBoard.ID)
	require.NoError(t, err)
	require.Len(t, got.Posts, 1)
	assert.Equal(t, "alice original", got.Posts[0].Content)
	assert.Equal(t, 0, got.Posts[0].ColumnIndex)
	assert.Equal(t, alice.ID, got.Posts[0].User.ID)

	other, err := s.GetSession(ctx, bobBoard.ID)
	require.NoError(t, err)
	assert.Empty(t, other.Posts)
}

func TestSaveVote_Upsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := testutil.CreateUser(t, s.db, "alice")
	bob := testutil.CreateUser(t, s.db, "bob")
	session, err := s.Create(ctx, nil, nil, alice)
	require.NoError(t, err)
	post, err := s.SavePost(ctx, alice.ID, session.ID, &models.Post{Content: "ship it"})
	require.NoError(t, err)

	vote, err := s.SaveVote(ctx, bob.ID, session.ID, post.ID, &models.Vote{Type: models.VoteTypeLike})
	require.NoError(t, err)
	assert.Equal(t, 1, vote.Weight)

	vote.Type = models.VoteTypeDislike
	_, err = s.SaveVote(ctx, bob.ID, session.ID, post.ID, vote)
	require.NoError(t, err)

	got, err := s.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, got.Posts[0].Votes, 1)
	assert.Equal(t, models.VoteTypeDislike, got.Posts[0].Votes[0].Type)
	assert.Equal(t, bob.ID, got.Posts[0].Votes[0].User.ID)

	likes, dislikes := got.Posts[0].Tally()
	assert.Equal(t, 0, likes)
	assert.Equal(t, 1, dislikes)

	_, err = s.SaveVote(ctx, alice.ID, session.ID, post.ID, &models.Vote{ID: vote.ID, Type: models.VoteTypeLike})
	assert.ErrorIs(t, err, ErrForbidden, "a vote id cast by someone else cannot be reused")

	got, err = s.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, got.Posts[0].Votes, 1)
	assert.Equal(t, models.VoteTypeDislike, got.Posts[0].Votes[0].Type)
	assert.Equal(t, bob.ID, got.Posts[0].Votes[0].User.ID)
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := testutil.CreateUser(t, s.db, "alice")
	bob := testutil.CreateUser(t, s.db, "bob")
	session, err := s.Create(ctx, nil, nil, alice)
	require.NoError(t, err)
	post, err := s.SavePost(ctx, alice.ID, session.ID, &models.Post{Content: "mine"})
	require.NoError(t, err)
	_, err = s.SaveVote(ctx, bob.ID, session.ID, post.ID, &models.Vote{Type: models.VoteTypeLike})
	require.NoError(t, err)

	t.Run("other user is forbidden", func(t *testing.T) {
		err := s.DeletePost(ctx, bob.ID, session.ID, post.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		var authErr *AuthorizationError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, bob.ID, authErr.UserID)

		got, err := s.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Len(t, got.Posts, 1)
	})

	t.Run("wrong session is a no-op", func(t *testing.T) {
		assert.NoError(t, s.DeletePost(ctx, alice.ID, "other-session", post.ID))
	})

	t.Run("missing post is a no-op", func(t *testing.T) {
		assert.NoError(t, s.DeletePost(ctx, alice.ID, session.ID, "missing"))
	})

	t.Run("author deletes post and votes", func(t *testing.T) {
		require.NoError(t, s.DeletePost(ctx, alice.ID, session.ID, post.ID))

		got, err := s.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Posts)

		var votes int64
		require.NoError(t, s.db.Model(&models.Vote{}).Where("post_id = ?", post.ID).Count(&votes).Error)
		assert.Zero(t, votes)
	})
}

func TestGetOrSaveUser_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.GetOrSaveUser(ctx, &models.User{Username: "carol"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, models.AccountTypeAnonymous, first.AccountType)

	second, err := s.GetOrSaveUser(ctx, &models.User{Username: "carol", AccountType: models.AccountTypeAnonymous})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := s.GetOrSaveUser(ctx, &models.User{Username: "carol", AccountType: models.AccountTypeGitHub})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID, "account type is part of the identity")
}

func TestPreviousSessions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice := testutil.CreateUser(t, s.db, "alice")
	bob := testutil.CreateUser(t, s.db, "bob")
	carol := testutil.CreateUser(t, s.db, "carol")

	created, err := s.Create(ctx, nil, nil, bob)
	require.NoError(t, err)

	posted, err := s.Create(ctx, nil, nil, alice)
	require.NoError(t, err)
	_, err = s.SavePost(ctx, bob.ID, posted.ID, &models.Post{Content: "one"})
	require.NoError(t, err)
	_, err = s.SavePost(ctx, bob.ID, posted.ID, &models.Post{Content: "two"})
	require.NoError(t, err)

	voted, err := s.Create(ctx, nil, nil, alice)
	require.NoError(t, err)
	post, err := s.SavePost(ctx, alice.ID, voted.ID, &models.Post{Content: "vote on me"})
	require.NoError(t, err)
	_, err = s.SaveVote(ctx, bob.ID, voted.ID, post.ID, &models.Vote{Type: models.VoteTypeLike})
	require.NoError(t, err)
	_, err = s.SaveVote(ctx, bob.ID, voted.ID, post.ID, &models.Vote{Type: models.VoteTypeLike})
	require.NoError(t, err)

	untouched, err := s.Create(ctx, nil, nil, carol)
	require.NoError(t, err)

	sessions, err := s.PreviousSessions(ctx, bob.ID)
	require.NoError(t, err)

	ids := make([]string, 0, len(sessions))
	for _, session := range sessions {
		ids = append(ids, session.ID)
	}
	assert.ElementsMatch(t, []string{created.ID, posted.ID, voted.ID}, ids)
	assert.NotContains(t, ids, untouched.ID)

	none, err := s.PreviousSessions(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}
