package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"summary-share/classifier"
	"summary-share/models"
	"summary-share/repositories"
)

// fakeSummaryRepository is an in-memory stand-in for the store layer.
type fakeSummaryRepository struct {
	summaries map[int64]*models.Summary
	members   map[string]map[uint]bool // reaction -> user set, keyed per summary via key()
	createErr error
	nextID    int64
}

func newFakeSummaryRepository() *fakeSummaryRepository {
	return &fakeSummaryRepository{
		summaries: map[int64]*models.Summary{},
		members:   map[string]map[uint]bool{},
		nextID:    1000,
	}
}

func key(reaction string, summaryID int64) string {
	return fmt.Sprintf("%s/%d", reaction, summaryID)
}

func (f *fakeSummaryRepository) Create(ctx context.Context, summary *models.Summary) error {
	if f.createErr != nil {
		return f.createErr
	}
	if summary.ID == 0 {
		f.nextID++
		summary.ID = f.nextID
	}
	copied := *summary
	f.summaries[summary.ID] = &copied
	return nil
}

func (f *fakeSummaryRepository) GetByID(ctx context.Context, id int64) (*models.Summary, error) {
	s, ok := f.summaries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSummaryRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.summaries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.summaries, id)
	return nil
}

func (f *fakeSummaryRepository) List(ctx context.Context, q repositories.ListQuery) ([]models.Summary, error) {
	var out []models.Summary
	for _, s := range f.summaries {
		if s.IsPrivate && s.AuthorID != q.ViewerID {
			continue
		}
		if q.MineOnly && s.AuthorID != q.ViewerID {
			continue
		}
		if q.ContentType != "" && s.ContentType != q.ContentType {
			continue
		}
		out = append(out, *s)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeSummaryRepository) Search(ctx context.Context, query string, limit int, viewerID uint) ([]models.Summary, error) {
	var out []models.Summary
	for _, s := range f.summaries {
		if s.IsPrivate && s.AuthorID != viewerID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSummaryRepository) SetReaction(ctx context.Context, userID uint, summaryID int64, reaction string, active bool) (*models.Summary, error) {
	s, ok := f.summaries[summaryID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	k := key(reaction, summaryID)
	if f.members[k] == nil {
		f.members[k] = map[uint]bool{}
	}
	member := f.members[k][userID]

	delta := 0
	switch {
	case active && !member:
		f.members[k][userID] = true
		delta = 1
	case !active && member:
		delete(f.members[k], userID)
		delta = -1
	}

	switch reaction {
	case repositories.ReactionLike:
		s.Likes += delta
	case repositories.ReactionDislike:
		s.Dislikes += delta
	case repositories.ReactionFavorite:
		s.Favorites += delta
	default:
		return nil, fmt.Errorf("unknown reaction %q", reaction)
	}

	copied := *s
	return &copied, nil
}

// fakeUserRepository is an in-memory stand-in for the account store.
type fakeUserRepository struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepository(users ...*models.User) *fakeUserRepository {
	f := &fakeUserRepository{users: map[uint]*models.User{}, nextID: 100}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepository) Create(ctx context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	for _, u := range f.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetReactionIDs(ctx context.Context, userID uint) (*repositories.ReactionIDs, error) {
	return &repositories.ReactionIDs{Likes: []int64{}, Dislikes: []int64{}, Favorites: []int64{}}, nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

// fakeClassifier returns a canned result, or an error when set.
type fakeClassifier struct {
	result *classifier.Result
	err    error

	lastContent     string
	lastInstruction string
	lastContentKind string
}

func (f *fakeClassifier) Classify(ctx context.Context, content, instruction, contentKind string) (*classifier.Result, error) {
	f.lastContent = content
	f.lastInstruction = instruction
	f.lastContentKind = contentKind
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
