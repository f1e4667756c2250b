package handlers

import (
	"net/http"
	"strconv"

	"keyblogger/internal/middleware"
	"keyblogger/internal/store"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogs *store.BlogStore
}

func NewBlogHandler(blogs *store.BlogStore) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

type createBlogRequest struct {
	Title string `json:"title" binding:"required"`
}

// List returns all blogs ordered by title; ?search= matches titles,
// ?filter= matches owner usernames, search taking precedence.
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.blogs.List(filterFromQuery(c))
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

// Detail returns one blog with its posts.
func (h *BlogHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	blog, err := h.blogs.Get(id)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// Create makes a new blog owned by the authenticated user.
func (h *BlogHandler) Create(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
		return
	}

	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.blogs.Create(req.Title, username)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"blog": blog})
}

// Update partially updates a blog; only the owner may do this.
func (h *BlogHandler) Update(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
		return
	}

	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var changes store.BlogChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.blogs.Update(id, username, changes)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// Delete removes a blog; only the owner may do this.
func (h *BlogHandler) Delete(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
		return
	}

	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.blogs.Remove(id, username); err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
}

// Vote applies an up or down vote and returns the new count.
func (h *BlogHandler) Vote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	delta, ok := voteDelta(c.Param("direction"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be up or down"})
		return
	}

	votes, err := h.blogs.Vote(id, delta)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"votes": votes})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

func voteDelta(direction string) (int, bool) {
	switch direction {
	case "up":
		return 1, true
	case "down":
		return -1, true
	default:
		return 0, false
	}
}
