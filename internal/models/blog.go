package models

type Blog struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"uniqueIndex;not null" json:"title"`
	Username string `gorm:"not null;index" json:"username"`
	Votes    int    `gorm:"not null;default:0" json:"votes"` // never negative

	User  User   `gorm:"foreignKey:Username;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Posts []Post `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE;" json:"posts,omitempty"`
}
