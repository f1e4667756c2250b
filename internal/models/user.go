package models

import (
	"time"
)

type User struct {
	Username  string    `gorm:"primaryKey;size:50" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`

	Blogs []Blog `gorm:"foreignKey:Username;references:Username" json:"blogs,omitempty"`
}
