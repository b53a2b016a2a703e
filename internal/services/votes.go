package services

import (
	"fmt"
	"net/http"

	"retroboard/internal/models"
)

// PolicyError 投票违反了 session 的选项
type PolicyError struct {
	Status  int
	Code    string
	Message string
}

func (e *PolicyError) Error() string {
	return e.Message
}

const (
	CodePostNotFound   = "POST_NOT_FOUND"
	CodeInvalidVote    = "INVALID_VOTE_TYPE"
	CodeSelfVote       = "SELF_VOTE_NOT_ALLOWED"
	CodeAlreadyVoted   = "ALREADY_VOTED"
	CodeVoteLimitReach = "VOTE_LIMIT_REACHED"
)

// CheckVote decides whether userID may cast a vote of the given type on
// postID. session must have its posts and their votes loaded.
func CheckVote(session *models.Session, userID, postID string, voteType models.VoteType) error {
	if voteType != models.VoteTypeLike && voteType != models.VoteTypeDislike {
		return &PolicyError{http.StatusBadRequest, CodeInvalidVote, fmt.Sprintf("unknown vote type %q", voteType)}
	}

	post := findPost(session, postID)
	if post == nil {
		return &PolicyError{http.StatusNotFound, CodePostNotFound, "post not found in this session"}
	}

	opts := session.Options
	if !opts.AllowSelfVoting && post.UserID == userID {
		return &PolicyError{http.StatusForbidden, CodeSelfVote, "you cannot vote on your own post"}
	}

	if !opts.AllowMultipleVotes {
		for _, v := range post.Votes {
			if v.UserID == userID && v.Type == voteType {
				return &PolicyError{http.StatusUnprocessableEntity, CodeAlreadyVoted, "you already voted on this post"}
			}
		}
	}

	if remaining, limited := RemainingVotes(session, userID, voteType); limited && remaining <= 0 {
		return &PolicyError{http.StatusUnprocessableEntity, CodeVoteLimitReach, fmt.Sprintf("you don't have any %s remaining", voteType)}
	}
	return nil
}

// RemainingVotes returns how many more votes of voteType userID may cast in
// the session. limited is false when the session sets no maximum.
func RemainingVotes(session *models.Session, userID string, voteType models.VoteType) (remaining int, limited bool) {
	limit := session.Options.MaxUpVotes
	if voteType == models.VoteTypeDislike {
		limit = session.Options.MaxDownVotes
	}
	if limit == nil {
		return 0, false
	}

	used := 0
	for _, p := range session.Posts {
		for _, v := range p.Votes {
			if v.UserID == userID && v.Type == voteType {
				used++
			}
		}
	}
	if used >= *limit {
		return 0, true
	}
	return *limit - used, true
}

func findPost(session *models.Session, postID string) *models.Post {
	for i := range session.Posts {
		if session.Posts[i].ID == postID {
			return &session.Posts[i]
		}
	}
	return nil
}
