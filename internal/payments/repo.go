package payments

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repo) List(ctx context.Context) ([]Payment, error) {
	var out []Payment
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}
