package matches

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repo) Get(ctx context.Context, id int64) (*Match, error) {
	var m Match
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &m, nil
}

// List returns every match ordered by id, which is the order the console
// shows them in.
func (r *Repo) List(ctx context.Context) ([]Match, error) {
	var out []Match
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

func (r *Repo) CreateUnit(ctx context.Context, u *Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *Repo) Units(ctx context.Context) ([]Unit, error) {
	var out []Unit
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}
