// Package store is the storage-agnostic facade the rest of the application
// depends on. It composes the five repositories behind the Store interface so
// handlers never touch GORM directly.
package store

import (
	"context"
	"errors"
	"fmt"

	"retroboard/internal/models"
	"retroboard/internal/repository"
	"retroboard/internal/utils"

	"gorm.io/gorm"
)

const sessionIDLength = 10

type Store interface {
	Create(ctx context.Context, options *models.SessionOptions, columns []models.Column, author *models.User) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	SaveSession(ctx context.Context, userID string, session *models.Session) error
	SavePost(ctx context.Context, userID, sessionID string, post *models.Post) (*models.Post, error)
	SaveVote(ctx context.Context, userID, sessionID, postID string, vote *models.Vote) (*models.Vote, error)
	DeletePost(ctx context.Context, userID, sessionID, postID string) error
	GetOrSaveUser(ctx context.Context, user *models.User) (*models.User, error)
	PreviousSessions(ctx context.Context, userID string) ([]models.Session, error)
}

// SQLStore implements Store on a single pooled *gorm.DB.
type SQLStore struct {
	db       *gorm.DB
	sessions *repository.SessionRepository
	posts    *repository.PostRepository
	columns  *repository.ColumnRepository
	votes    *repository.VoteRepository
	users    *repository.UserRepository

	newSessionID func() string
}

var _ Store = (*SQLStore)(nil)

func New(db *gorm.DB) *SQLStore {
	return &SQLStore{
		db:       db,
		sessions: repository.NewSessionRepository(db),
		posts:    repository.NewPostRepository(db),
		columns:  repository.NewColumnRepository(db),
		votes:    repository.NewVoteRepository(db),
		users:    repository.NewUserRepository(db),
		newSessionID: func() string {
			return utils.RandomID(sessionIDLength)
		},
	}
}

// Create starts a new board owned by author. nil options and empty columns
// fall back to the defaults. Uniqueness of the id is left to the primary key:
// a conflicting insert writes nothing and yields ErrSessionExists.
func (s *SQLStore) Create(ctx context.Context, options *models.SessionOptions, columns []models.Column, author *models.User) (*models.Session, error) {
	session := &models.Session{
		ID:          s.newSessionID(),
		CreatedByID: author.ID,
		Options:     models.DefaultSessionOptions(),
	}
	if options != nil {
		session.Options = *options
	}
	if len(columns) == 0 {
		columns = models.DefaultColumns()
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inserted, err := s.sessions.WithTx(tx).Insert(ctx, session)
		if err != nil {
			return err
		}
		if !inserted {
			return ErrSessionExists
		}
		return s.columns.WithTx(tx).ReplaceForSession(ctx, session.ID, columns)
	})
	if err != nil {
		if errors.Is(err, ErrSessionExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create session: %w", err)
	}

	return s.GetSession(ctx, session.ID)
}

// GetSession returns nil, nil when the session does not exist.
func (s *SQLStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	if session == nil {
		return nil, nil
	}

	if session.Columns, err = s.columns.FindBySession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("get columns of %s: %w", sessionID, err)
	}
	if session.Posts, err = s.posts.FindBySession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("get posts of %s: %w", sessionID, err)
	}
	return session, nil
}

func (s *SQLStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

// SaveSession upserts the session fields and its columns. Posts in the
// payload are ignored; they are saved one by one through SavePost.
func (s *SQLStore) SaveSession(ctx context.Context, userID string, session *models.Session) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.sessions.WithTx(tx).SaveFromJSON(ctx, session, userID); err != nil {
			return err
		}
		if session.Columns == nil {
			return nil
		}
		return s.columns.WithTx(tx).ReplaceForSession(ctx, session.ID, session.Columns)
	})
	if err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

// SavePost upserts a post under sessionID. Reusing the id of a post from
// another session or by another author is an *AuthorizationError and changes
// nothing. The returned post is re-read so it carries the stored author and
// creation time.
func (s *SQLStore) SavePost(ctx context.Context, userID, sessionID string, post *models.Post) (*models.Post, error) {
	var saved *models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		posts := s.posts.WithTx(tx)

		row, written, err := posts.SaveFromJSON(ctx, sessionID, userID, post)
		if err != nil {
			return err
		}
		if !written {
			return &AuthorizationError{UserID: userID, Resource: "post", ID: row.ID}
		}

		saved, err = posts.FindInSession(ctx, sessionID, row.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			return nil, err
		}
		return nil, fmt.Errorf("save post in %s: %w", sessionID, err)
	}
	return saved, nil
}

// SaveVote upserts a vote on postID. An existing vote id cast by someone else
// or on another post is an *AuthorizationError.
func (s *SQLStore) SaveVote(ctx context.Context, userID, sessionID, postID string, vote *models.Vote) (*models.Vote, error) {
	saved, written, err := s.votes.SaveFromJSON(ctx, postID, userID, vote)
	if err != nil {
		return nil, fmt.Errorf("save vote on %s/%s: %w", sessionID, postID, err)
	}
	if !written {
		return nil, &AuthorizationError{UserID: userID, Resource: "vote", ID: saved.ID}
	}
	return saved, nil
}

// DeletePost removes a post authored by userID. A post that does not exist
// in the session is a no-op; someone else's post is an *AuthorizationError.
func (s *SQLStore) DeletePost(ctx context.Context, userID, sessionID, postID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		posts := s.posts.WithTx(tx)

		post, err := posts.FindInSession(ctx, sessionID, postID)
		if err != nil {
			return fmt.Errorf("find post %s: %w", postID, err)
		}
		if post == nil {
			return nil
		}
		if post.UserID != userID {
			return &AuthorizationError{UserID: userID, Resource: "post", ID: postID}
		}

		if err := posts.Delete(ctx, postID); err != nil {
			return fmt.Errorf("delete post %s: %w", postID, err)
		}
		return nil
	})
}

// GetOrSaveUser is keyed by (username, accountType). Two concurrent callers
// both end up with the row the unique index let through.
func (s *SQLStore) GetOrSaveUser(ctx context.Context, user *models.User) (*models.User, error) {
	accountType := user.AccountType
	if accountType == "" {
		accountType = models.AccountTypeAnonymous
	}

	existing, err := s.users.FindByIdentity(ctx, user.Username, accountType)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", user.Username, err)
	}
	if existing != nil {
		return existing, nil
	}

	candidate := *user
	candidate.AccountType = accountType
	if err := s.users.InsertIfAbsent(ctx, &candidate); err != nil {
		return nil, fmt.Errorf("save user %s: %w", user.Username, err)
	}

	saved, err := s.users.FindByIdentity(ctx, user.Username, accountType)
	if err != nil {
		return nil, fmt.Errorf("reload user %s: %w", user.Username, err)
	}
	if saved == nil {
		return nil, fmt.Errorf("save user %s: id %s already taken", user.Username, user.ID)
	}
	return saved, nil
}

// PreviousSessions lists the sessions userID created, posted in or voted in, newest first.
func (s *SQLStore) PreviousSessions(ctx context.Context, userID string) ([]models.Session, error) {
	sessions, err := s.sessions.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("previous sessions of %s: %w", userID, err)
	}
	return sessions, nil
}
