package repositories

import (
	"context"
	"errors"

	"github.com/tuyendunghub/job-board/internal/entities"
	"gorm.io/gorm"
)

type Admins struct {
	db *gorm.DB
}

func NewAdminsRepository(db *gorm.DB) *Admins {
	return &Admins{db: db}
}

func (repo *Admins) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {

	var admin entities.Admin
	if err := repo.db.WithContext(ctx).First(&admin, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// EnsureDefault inserts the seed admin if no row with that username exists.
// An existing row is never overwritten.
func (repo *Admins) EnsureDefault(ctx context.Context, username, passwordHash, email string) error {
	return repo.db.WithContext(ctx).
		Where(entities.Admin{Username: username}).
		Attrs(entities.Admin{Password: passwordHash, Email: email}).
		FirstOrCreate(&entities.Admin{}).Error
}
