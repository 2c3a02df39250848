package students

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
	mu sync.Mutex // serializes Register so enrollment numbers are not handed out twice
}

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, s *Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repo) List(ctx context.Context) ([]Student, error) {
	var out []Student
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// Register stores s with the next enrollment number of the given year,
// e.g. 2025006 after 2025005. It follows the highest number in use for the
// year.
func (r *Repo) Register(ctx context.Context, s *Student, year int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := strconv.Itoa(year)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last sql.NullInt64
		err := tx.Model(&Student{}).
			Select("MAX(CAST(substr(enrollment, ?) AS INTEGER))", len(prefix)+1).
			Where("enrollment LIKE ?", prefix+"%").
			Row().Scan(&last)
		if err != nil {
			return fmt.Errorf("next enrollment: %w", err)
		}
		s.Enrollment = fmt.Sprintf("%s%03d", prefix, last.Int64+1)
		return tx.Create(s).Error
	})
}
