package store

import (
	"errors"

	"keyblogger/internal/models"
	"keyblogger/internal/query"

	"gorm.io/gorm"
)

// Recent-first feed joined with the owning blog for its title.
var postList = query.ListSpec{
	Base: "SELECT posts.*, blogs.title AS blog_title FROM posts " +
		"INNER JOIN blogs ON posts.blog_id = blogs.id",
	SearchColumn: "posts.title",
	OwnerColumn:  "posts.username",
	OrderBy:      "posts.id DESC",
}

// PostInput carries the caller-supplied fields for a new post.
type PostInput struct {
	Title  string
	Body   string
	BlogID uint
}

// PostChanges holds the updatable post columns, nil meaning untouched.
type PostChanges struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

func (c PostChanges) assignments() []query.Assignment {
	var sets []query.Assignment
	if c.Title != nil {
		sets = append(sets, query.Assignment{Column: "title", Value: *c.Title})
	}
	if c.Body != nil {
		sets = append(sets, query.Assignment{Column: "body", Value: *c.Body})
	}
	return sets
}

type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// Create inserts a post under an existing blog with zero votes.
func (s *PostStore) Create(in PostInput, username string) (*models.Post, error) {
	var blog models.Blog
	if err := s.db.First(&blog, in.BlogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	post := models.Post{
		Title:    in.Title,
		Body:     in.Body,
		BlogID:   blog.ID,
		Username: username,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	post.BlogTitle = blog.Title
	return &post, nil
}

// Get returns a post with its blog title filled in.
func (s *PostStore) Get(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Blog").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	post.BlogTitle = post.Blog.Title
	return &post, nil
}

// List returns the recent-posts feed, optionally narrowed by a title
// search or an owner filter.
func (s *PostStore) List(f query.Filter) ([]models.Post, error) {
	sql, args := query.BuildList(postList, f)

	// Non-nil so an empty result serializes as [] rather than null.
	posts := []models.Post{}
	if err := s.db.Raw(sql, args...).Scan(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByBlog returns all posts of one blog, oldest first.
func (s *PostStore) ListByBlog(blogID uint) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.db.Where("blog_id = ?", blogID).Order("id ASC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update applies a partial update after the ownership check.
func (s *PostStore) Update(id uint, principal string, changes PostChanges) (*models.Post, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(current.Username, principal); err != nil {
		return nil, err
	}

	sql, args, err := query.BuildPartialUpdate("posts", changes.assignments(), "id", id)
	if err != nil {
		return nil, err
	}

	var post models.Post
	res := s.db.Raw(sql, args...).Scan(&post)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &post, nil
}

// Remove deletes a post after the ownership check.
func (s *PostStore) Remove(id uint, principal string) error {
	current, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(current.Username, principal); err != nil {
		return err
	}

	res := s.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Vote applies a ±1 delta clamped at zero and returns the new count.
func (s *PostStore) Vote(id uint, delta int) (int, error) {
	sql, args := query.BuildVote("posts", "id", delta, id)

	var votes int
	res := s.db.Raw(sql, args...).Scan(&votes)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return votes, nil
}
