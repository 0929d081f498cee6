package models

import "time"

// User is an account that can authenticate and own summaries.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:128;not null" json:"-"`

	Summaries []Summary `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// UserProfile holds the reverse side of the engagement relations: the sets
// of summaries this user has liked, disliked and favorited. It is created
// right after registration and cascade-deleted with the account.
//
// The three sets are not mutually exclusive; a user may appear in all three
// for the same summary.
type UserProfile struct {
	UserID uint  `gorm:"primaryKey" json:"user_id"`
	User   *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Likes     []*Summary `gorm:"many2many:profile_likes;constraint:OnDelete:CASCADE" json:"-"`
	Dislikes  []*Summary `gorm:"many2many:profile_dislikes;constraint:OnDelete:CASCADE" json:"-"`
	Favorites []*Summary `gorm:"many2many:profile_favorites;constraint:OnDelete:CASCADE" json:"-"`
}
