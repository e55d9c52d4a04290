package repository

import (
	"errors"
	"log"

	"github.com/zenith-max/Wellmed/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) error
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(userID uint) (*domain.User, error)
	SaveUser(user *domain.User) error
	CountByRole(role string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return r.db.Create(user).Error
}

// FindUserByEmail returns (nil, nil) when no user exists for the address, so
// callers can treat "unknown email" differently from a database failure.
func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find user by email error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUserByID(userID uint) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find user by id error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Save(user).Error; err != nil {
		log.Printf("save user error: %v", err)
		return err
	}
	return nil
}

func (r *userRepository) CountByRole(role string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}
