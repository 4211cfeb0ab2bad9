package stores

import (
	"context"
	"strings"

	"github.com/Kariqs/amexan-store/models"
	"gorm.io/gorm"
)

type gormUsers struct {
	db *gorm.DB
}

func (s *gormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user)
	if result.Error != nil {
		return nil, mapGormError(result.Error)
	}
	return &user, nil
}

func (s *gormUsers) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, mapGormError(err)
	}
	return &user, nil
}

// Insert stores the email lower-cased so lookups can use the unique index.
func (s *gormUsers) Insert(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(user.Email)
	return mapGormError(s.db.WithContext(ctx).Create(user).Error)
}

func (s *gormUsers) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", strings.ToLower(email)).
		Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormUsers) UpdateProfile(ctx context.Context, user *models.User) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          user.Name,
			"address":       user.Address,
			"password_hash": user.PasswordHash,
		})
	return result.Error
}

func (s *gormUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}
