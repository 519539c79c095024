package database

import (
	"context"

	"gorm.io/gorm"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

// UserRepositoryAdapter implements the UserRepository port using GORM
type UserRepositoryAdapter struct {
	db *gorm.DB
}

func NewUserRepositoryAdapter(db *gorm.DB) ports.UserRepository {
	return &UserRepositoryAdapter{db: db}
}

// FindOrCreate returns the user with the given username, creating it when absent
func (r *UserRepositoryAdapter) FindOrCreate(ctx context.Context, username string) (*ports.UserData, error) {
	username, ok := validation.TrimAndValidate(username)
	if !ok {
		return nil, errors.NewValidationError("username is required")
	}

	var model UserModel
	result := r.db.WithContext(ctx).Where(UserModel{Username: username}).FirstOrCreate(&model)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to find or create user", result.Error)
	}

	return &ports.UserData{ID: model.ID, Username: model.Username, CreatedAt: model.CreatedAt}, nil
}
