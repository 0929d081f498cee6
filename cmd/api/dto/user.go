package dto

import (
	"time"

	"summary-share/models"
	"summary-share/repositories"
)

// UserDTO is the public account shape; password hashes never leave the
// model layer.
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileDTO is the account plus its reaction id sets, returned from
// /users/me and from login/registration.
type ProfileDTO struct {
	UserDTO
	Likes     []int64 `json:"likes"`
	Dislikes  []int64 `json:"dislikes"`
	Favorites []int64 `json:"favorites"`
}

func MapUser(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func MapProfile(u *models.User, reactions *repositories.ReactionIDs) ProfileDTO {
	p := ProfileDTO{
		UserDTO:   MapUser(u),
		Likes:     []int64{},
		Dislikes:  []int64{},
		Favorites: []int64{},
	}
	if reactions != nil {
		if reactions.Likes != nil {
			p.Likes = reactions.Likes
		}
		if reactions.Dislikes != nil {
			p.Dislikes = reactions.Dislikes
		}
		if reactions.Favorites != nil {
			p.Favorites = reactions.Favorites
		}
	}
	return p
}
