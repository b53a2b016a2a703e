package handlers

import (
	"net/http"

	"retroboard/internal/errs"
	"retroboard/internal/middleware"
	"retroboard/internal/models"
	"retroboard/internal/store"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	store    store.Store
	sessions *SessionHandler
}

func NewPostHandler(st store.Store) *PostHandler {
	return &PostHandler{store: st, sessions: NewSessionHandler(st)}
}

type postRequest struct {
	ID      string  `json:"id" binding:"omitempty,uuid"`
	Column  int     `json:"column" binding:"gte=0"`
	Content string  `json:"content" binding:"max=4000"`
	Action  *string `json:"action" binding:"omitempty,max=1000"`
	Giphy   *string `json:"giphy" binding:"omitempty,max=512"`
}

// Save creates a post, or edits one the current user wrote. The client may
// choose the id of a new post.
func (h *PostHandler) Save(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req, false) {
		return
	}
	session, ok := h.sessions.load(c)
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	if req.Column >= len(session.Columns) {
		RespondError(c, errs.NewBadRequestError("column does not exist"))
		return
	}
	if req.Action != nil && !session.Options.AllowActions {
		RespondError(c, errs.NewForbiddenError("actions are disabled for this session"))
		return
	}
	if req.Giphy != nil && !session.Options.AllowGiphy {
		RespondError(c, errs.NewForbiddenError("giphy is disabled for this session"))
		return
	}

	var existing *models.Post
	for i := range session.Posts {
		if session.Posts[i].ID == req.ID {
			existing = &session.Posts[i]
			break
		}
	}
	if existing != nil && existing.UserID != user.ID {
		RespondError(c, errs.NewForbiddenError("you can only edit your own posts"))
		return
	}

	post := &models.Post{
		ID:          req.ID,
		ColumnIndex: req.Column,
		Content:     req.Content,
		Action:      req.Action,
		Giphy:       req.Giphy,
	}
	status := http.StatusCreated
	if existing != nil {
		post.CreatedAt = existing.CreatedAt
		status = http.StatusOK
	}

	saved, err := h.store.SavePost(c.Request.Context(), user.ID, session.ID, post)
	if err != nil {
		RespondError(c, err)
		return
	}
	saved.User = *user
	if existing != nil {
		saved.Votes = existing.Votes
	}
	if saved.Votes == nil {
		saved.Votes = []models.Vote{}
	}
	c.JSON(status, saved)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := h.store.DeletePost(c.Request.Context(), user.ID, c.Param("id"), c.Param("pid")); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
