package handlers

import (
	"net/http"

	"retroboard/internal/middleware"
	"retroboard/internal/models"
	"retroboard/internal/services"
	"retroboard/internal/store"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	store    store.Store
	sessions *SessionHandler
}

func NewVoteHandler(st store.Store) *VoteHandler {
	return &VoteHandler{store: st, sessions: NewSessionHandler(st)}
}

type voteRequest struct {
	Type models.VoteType `json:"type" binding:"required,oneof=like dislike"`
}

type voteResponse struct {
	*models.Vote
	// Remaining is omitted when the session sets no limit for this vote type.
	Remaining *int `json:"remaining,omitempty"`
}

// Vote 投票前先按 session 选项校验
func (h *VoteHandler) Vote(c *gin.Context) {
	var req voteRequest
	if !bindJSON(c, &req, false) {
		return
	}
	session, ok := h.sessions.load(c)
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)
	postID := c.Param("pid")

	if err := services.CheckVote(session, user.ID, postID, req.Type); err != nil {
		RespondError(c, err)
		return
	}

	vote, err := h.store.SaveVote(c.Request.Context(), user.ID, session.ID, postID, &models.Vote{Type: req.Type})
	if err != nil {
		RespondError(c, err)
		return
	}
	vote.User = *user

	resp := voteResponse{Vote: vote}
	if remaining, limited := services.RemainingVotes(session, user.ID, req.Type); limited {
		left := remaining - 1
		resp.Remaining = &left
	}
	c.JSON(http.StatusCreated, resp)
}
