package handlers

import (
	"net/http"

	"keyblogger/internal/auth"
	"keyblogger/internal/store"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register creates a user and logs them in right away.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(req.Username, req.Password)
	if err != nil {
		JSONError(c, err)
		return
	}

	token, err := auth.CreateToken(user.Username)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "username": user.Username})
}

// Profile returns a user and their blogs.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.users.Get(c.Param("username"))
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
