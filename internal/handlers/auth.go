package handlers

import (
	"net/http"

	"retroboard/internal/errs"
	"retroboard/internal/middleware"
	"retroboard/internal/models"
	"retroboard/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store store.Store
}

func NewAuthHandler(st store.Store) *AuthHandler {
	return &AuthHandler{store: st}
}

type loginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
}

// Login signs in anonymously: the same username always maps to the same user.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, false) {
		return
	}

	user, err := h.store.GetOrSaveUser(c.Request.Context(), &models.User{
		Username:    req.Username,
		AccountType: models.AccountTypeAnonymous,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserID, user.ID)
	if err := session.Save(); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		RespondError(c, errs.NewUnauthorizedError("login required"))
		return
	}
	c.JSON(http.StatusOK, user)
}
