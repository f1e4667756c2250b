package store

import (
	"errors"

	"keyblogger/internal/models"
	"keyblogger/internal/query"

	"gorm.io/gorm"
)

var blogList = query.ListSpec{
	Base:         "SELECT blogs.* FROM blogs",
	SearchColumn: "blogs.title",
	OwnerColumn:  "blogs.username",
	OrderBy:      "blogs.title ASC",
}

// BlogChanges holds the updatable blog columns. Nil fields are left
// untouched; the id can never be part of an update.
type BlogChanges struct {
	Title *string `json:"title"`
}

func (c BlogChanges) assignments() []query.Assignment {
	var sets []query.Assignment
	if c.Title != nil {
		sets = append(sets, query.Assignment{Column: "title", Value: *c.Title})
	}
	return sets
}

type BlogStore struct {
	db *gorm.DB
}

func NewBlogStore(db *gorm.DB) *BlogStore {
	return &BlogStore{db: db}
}

// Create inserts a blog with zero votes. Duplicate titles are rejected
// globally.
func (s *BlogStore) Create(title, username string) (*models.Blog, error) {
	blog := models.Blog{Title: title, Username: username}
	if err := s.db.Create(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	return &blog, nil
}

// Get returns a blog with its posts.
func (s *BlogStore) Get(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.Preload("Posts").First(&blog, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// List returns blogs ordered by title, optionally narrowed by a title
// search or an owner filter.
func (s *BlogStore) List(f query.Filter) ([]models.Blog, error) {
	sql, args := query.BuildList(blogList, f)

	// Non-nil so an empty result serializes as [] rather than null.
	blogs := []models.Blog{}
	if err := s.db.Raw(sql, args...).Scan(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// Update applies a partial update after the ownership check. Zero
// affected rows means the blog vanished between lookup and update.
func (s *BlogStore) Update(id uint, principal string, changes BlogChanges) (*models.Blog, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(current.Username, principal); err != nil {
		return nil, err
	}

	sql, args, err := query.BuildPartialUpdate("blogs", changes.assignments(), "id", id)
	if err != nil {
		return nil, err
	}

	var blog models.Blog
	res := s.db.Raw(sql, args...).Scan(&blog)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &blog, nil
}

// Remove deletes a blog after the ownership check.
func (s *BlogStore) Remove(id uint, principal string) error {
	current, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(current.Username, principal); err != nil {
		return err
	}

	res := s.db.Delete(&models.Blog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Vote applies a ±1 delta clamped at zero in a single statement and
// returns the new count.
func (s *BlogStore) Vote(id uint, delta int) (int, error) {
	sql, args := query.BuildVote("blogs", "id", delta, id)

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
