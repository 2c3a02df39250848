package lineups

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/xaitan80/academy/internal/matches"
)

var ErrFixtureNotFound = errors.New("fixture not found")

type Repo struct {
	db *gorm.DB
	mu sync.Mutex // held across the lineup read-modify-write in Assign
}

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) CreateFixture(ctx context.Context, f *Fixture) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *Repo) FixturesByUnit(ctx context.Context, unitID int64) ([]Fixture, error) {
	var out []Fixture
	err := r.db.WithContext(ctx).Where("unit_id = ?", unitID).Order("id").Find(&out).Error
	return out, err
}

func (r *Repo) fixture(ctx context.Context, id int64) error {
	var f Fixture
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("fixture %d: %w", id, ErrFixtureNotFound)
		}
		return err
	}
	return nil
}

// LineupFor returns the lineup of a fixture and category. A fixture with no
// lineup yet gets an empty one.
func (r *Repo) LineupFor(ctx context.Context, fixtureID int64, cat matches.Category) (Lineup, error) {
	if err := r.fixture(ctx, fixtureID); err != nil {
		return Lineup{}, err
	}
	var l Lineup
	err := r.db.WithContext(ctx).Where("fixture_id = ? AND category = ?", fixtureID, cat).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Lineup{FixtureID: fixtureID, Category: cat, Slots: []Slot{}}, nil
	}
	return l, err
}

// Save replaces the stored lineup for l's fixture and category.
func (r *Repo) Save(ctx context.Context, l *Lineup) error {
	if l.ID != 0 {
		return r.db.WithContext(ctx).Save(l).Error
	}
	return r.db.WithContext(ctx).Create(l).Error
}

// Assign sets one position of a lineup and stores it. The read and the write
// happen in one transaction.
func (r *Repo) Assign(ctx context.Context, fixtureID int64, cat matches.Category, position string, p matches.Player) (Lineup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out Lineup
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txr := &Repo{db: tx}
		l, err := txr.LineupFor(ctx, fixtureID, cat)
		if err != nil {
			return err
		}
		l.Assign(position, p)
		if err := txr.Save(ctx, &l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return Lineup{}, err
	}
	return out, nil
}
