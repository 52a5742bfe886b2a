package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"nadi/internal/models"
)

var ErrNotFound = errors.New("record not found")

type UserStore struct{ db *gorm.DB }

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

// FindByEmail ищет по e-mail без учёта регистра (ключ логина).
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Where("lower(email) = ?", strings.ToLower(email)).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where(&models.User{ID: id}).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := s.db.WithContext(ctx).Order("created_at").Find(&out).Error
	return out, err
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}
