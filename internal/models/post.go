package models

import (
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Username  string    `gorm:"not null;index" json:"username"`
	BlogID    uint      `gorm:"not null;index" json:"blog_id"`
	Votes     int       `gorm:"not null;default:0" json:"votes"` // never negative
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:Username;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Blog Blog `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Not a stored column; filled by the list query's JOIN.
	BlogTitle string `gorm:"->;-:migration" json:"blog_title,omitempty"`
}
