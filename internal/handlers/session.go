package handlers

import (
	"net/http"

	"retroboard/internal/errs"
	"retroboard/internal/middleware"
	"retroboard/internal/models"
	"retroboard/internal/services"
	"retroboard/internal/store"
	"retroboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	store store.Store
}

func NewSessionHandler(st store.Store) *SessionHandler {
	return &SessionHandler{store: st}
}

type columnRequest struct {
	Type  models.ColumnType `json:"type" binding:"required,max=32"`
	Label string            `json:"label" binding:"max=256"`
	Color string            `json:"color" binding:"omitempty,max=16"`
	Icon  *string           `json:"icon"`
}

type optionsRequest struct {
	models.SessionOptions
}

type createSessionRequest struct {
	Options *optionsRequest `json:"options"`
	Columns []columnRequest `json:"columns" binding:"omitempty,max=16,dive"`
}

type saveSessionRequest struct {
	Name    *string         `json:"name" binding:"omitempty,max=256"`
	Options optionsRequest  `json:"options"`
	Columns []columnRequest `json:"columns" binding:"omitempty,max=16,dive"`
}

func (o *optionsRequest) check() error {
	if o.MaxUpVotes != nil && *o.MaxUpVotes < 0 {
		return errs.NewBadRequestError("maxUpVotes must not be negative")
	}
	if o.MaxDownVotes != nil && *o.MaxDownVotes < 0 {
		return errs.NewBadRequestError("maxDownVotes must not be negative")
	}
	return nil
}

func toColumns(reqs []columnRequest) []models.Column {
	if reqs == nil {
		return nil
	}
	columns := make([]models.Column, len(reqs))
	for i, r := range reqs {
		columns[i] = models.Column{Type: r.Type, Label: r.Label, Color: r.Color, Icon: r.Icon}
	}
	return columns
}

// Create starts a board owned by the current user. Both options and columns
// are optional; omitted ones use the defaults.
func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if !bindJSON(c, &req, true) {
		return
	}

	var options *models.SessionOptions
	if req.Options != nil {
		if err := req.Options.check(); err != nil {
			RespondError(c, err)
			return
		}
		options = &req.Options.SessionOptions
	}

	session, err := h.store.Create(c.Request.Context(), options, toColumns(req.Columns), middleware.CurrentUser(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) Get(c *gin.Context) {
	session, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session)
}

// maxSessionIDLength matches the width of sessions.id.
const maxSessionIDLength = 32

// Save updates name, options and columns. Only the creator may change an
// existing board; an unknown id creates it for the current user, with the
// default columns when none are given.
func (h *SessionHandler) Save(c *gin.Context) {
	id := c.Param("id")
	if !utils.ValidID(id, maxSessionIDLength) {
		RespondError(c, errs.NewBadRequestError("invalid session id"))
		return
	}

	var req saveSessionRequest
	if !bindJSON(c, &req, false) {
		return
	}
	if err := req.Options.check(); err != nil {
		RespondError(c, err)
		return
	}

	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)

	existing, err := h.store.GetSession(ctx, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	if existing != nil && existing.CreatedBy.ID != user.ID {
		RespondError(c, errs.NewForbiddenError("only the creator can change this session"))
		return
	}

	session := &models.Session{
		ID:      id,
		Name:    req.Name,
		Options: req.Options.SessionOptions,
		Columns: toColumns(req.Columns),
	}
	if existing != nil {
		session.CreatedAt = existing.CreatedAt
	} else if session.Columns == nil {
		session.Columns = models.DefaultColumns()
	}
	if err := h.store.SaveSession(ctx, user.ID, session); err != nil {
		RespondError(c, err)
		return
	}

	saved, err := h.store.GetSession(ctx, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Previous lists the boards the current user took part in.
func (h *SessionHandler) Previous(c *gin.Context) {
	sessions, err := h.store.PreviousSessions(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		RespondError(c, err)
		return
	}
	if sessions == nil {
		sessions = []models.Session{}
	}
	c.JSON(http.StatusOK, sessions)
}

// Summary renders the board; ?format=markdown returns the raw Markdown.
func (h *SessionHandler) Summary(c *gin.Context) {
	session, ok := h.load(c)
	if !ok {
		return
	}

	summary := services.Summary(session, requestLanguage(c))
	if c.Query("format") == "markdown" {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(summary.Markdown))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// load fetches the :id session, writing a 404 when it does not exist.
func (h *SessionHandler) load(c *gin.Context) (*models.Session, bool) {
	session, err := h.store.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return nil, false
	}
	if session == nil {
		RespondError(c, errs.NewNotFoundError("session not found"))
		return nil, false
	}
	return session, true
}
