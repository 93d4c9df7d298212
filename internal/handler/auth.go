package handler

import (
	"errors"
	"net/http"

	"eodly/internal/logger"
	"eodly/internal/middleware"
	"eodly/internal/model"
	"eodly/internal/service"
	"eodly/internal/view"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	dir    *service.Directory
	router *view.Router
}

func NewAuthHandler(dir *service.Directory, router *view.Router) *AuthHandler {
	return &AuthHandler{dir: dir, router: router}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.dir.SignIn(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found. Please sign up."})
		return
	}

	h.respondAuth(c, u)
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.dir.SignUp(req.Name, req.Email, req.Password, req.MBTI)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists. Please sign in."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.respondAuth(c, u)
}

func (h *AuthHandler) respondAuth(c *gin.Context, u *model.User) {
	token, err := middleware.IssueToken(u.ID, u.Name)
	if err != nil {
		logger.Error("issue token failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
		return
	}
	h.router.Navigate(view.Home)
	c.JSON(http.StatusOK, model.AuthResponse{Token: token, User: u.Sanitized()})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	h.dir.SignOut()
	h.router.Reset()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	u := h.dir.Current()
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}
	c.JSON(http.StatusOK, u.Sanitized())
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var u model.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if u.ID == "" {
		u.ID = c.GetString("user_id")
	}
	h.dir.UpdateProfile(u)
	c.JSON(http.StatusOK, u.Sanitized())
}

func (h *AuthHandler) Users(c *gin.Context) {
	users := h.dir.Users()
	out := make([]model.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) Theme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.dir.Theme()})
}

func (h *AuthHandler) SetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	h.dir.SetTheme(req.Theme)
	c.JSON(http.StatusOK, gin.H{"theme": h.dir.Theme()})
}
