package handlers

import (
	"net/http"

	"keyblogger/internal/middleware"
	"keyblogger/internal/store"
	"keyblogger/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts *store.PostStore
}

func NewPostHandler(posts *store.PostStore) *PostHandler {
	return &PostHandler{posts: posts}
}

type createPostRequest struct {
	Title  string `json:"title" binding:"required"`
	Body   string `json:"body"`
	BlogID uint   `json:"blog_id" binding:"required"`
}

// List returns the recent-posts feed, newest first; ?search= matches
// titles, ?filter= matches owner usernames, search taking precedence.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(filterFromQuery(c))
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ListByBlog returns every post under one blog, oldest first.
func (h *PostHandler) ListByBlog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	posts, err := h.posts.ListByBlog(id)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Detail returns one post, with the body also rendered from markdown to
// sanitized HTML.
func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	post, err := h.posts.Get(id)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post, "html": utils.RenderMarkdown(post.Body)})
}

// Create makes a new post under a blog, owned by the authenticated user.
func (h *PostHandler) Create(c *gin.Context) {
	username, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.Create(store.PostInput{
		Title:  req.Title,
		Body:   req.Body,
		BlogID: req.BlogID,
	}, username)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// Update partially updates a post; only the owner may do this.
func (h *PostHandler) Update(c *gin.Context) {
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

	var changes store.PostChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.Update(id, username, changes)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Delete removes a post; only the owner may do this.
func (h *PostHandler) Delete(c *gin.Context) {
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

	if err := h.posts.Remove(id, username); err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// Vote applies an up or down vote and returns the new count.
func (h *PostHandler) Vote(c *gin.Context) {
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

	votes, err := h.posts.Vote(id, delta)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"votes": votes})
}
