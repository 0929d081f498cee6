package repositories

import (
	"context"

	"gorm.io/gorm"

	"summary-share/models"
)

// ReactionIDs is the id sets from a user's profile, used when serializing
// the profile for API responses.
type ReactionIDs struct {
	Likes     []int64
	Dislikes  []int64
	Favorites []int64
}

// UserRepository defines the store operations for accounts and profiles.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	GetReactionIDs(ctx context.Context, userID uint) (*ReactionIDs, error)
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create persists the account and its empty profile in one transaction, so
// a user never exists without a profile.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserProfile{UserID: user.ID}).Error
	})
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail finds an account by username or email. Empty
// arguments never match.
func (r *userRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	tx := r.db.WithContext(ctx)
	switch {
	case username != "" && email != "":
		tx = tx.Where("username = ? OR email = ?", username, email)
	case username != "":
		tx = tx.Where("username = ?", username)
	case email != "":
		tx = tx.Where("email = ?", email)
	default:
		return nil, gorm.ErrRecordNotFound
	}

	var user models.User
	if err := tx.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetReactionIDs(ctx context.Context, userID uint) (*ReactionIDs, error) {
	ids := &ReactionIDs{}
	for _, set := range []struct {
		table string
		dst   *[]int64
	}{
		{"profile_likes", &ids.Likes},
		{"profile_dislikes", &ids.Dislikes},
		{"profile_favorites", &ids.Favorites},
	} {
		if err := r.db.WithContext(ctx).Table(set.table).
			Where("user_profile_user_id = ?", userID).
			Pluck("summary_id", set.dst).Error; err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// Delete removes the account; profile, reaction rows and authored summaries
// go with it through the cascade constraints.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
