package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/taskvault/taskvault-api/internal/domain"
)

type UserRepository interface {
	FindByID(id uint) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	// CreateAtomic inserts the user inside a transaction. A lost uniqueness
	// race surfaces as ErrEmailTaken after rollback; no partial record
	// persists.
	CreateAtomic(user *domain.User) error
	Create(user *domain.User) error
	Update(id uint, updates map[string]any) error
	Delete(id uint) error
	List(req PageRequest) ([]domain.User, int64, error)
}

type GormUserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &GormUserRepository{db: db} }

func (r *GormUserRepository) FindByID(id uint) (*domain.User, error) {
	var u domain.User
	if err := r.db.Preload("Todos").First(&u, id).Error; err != nil {
		return nil, translateNotFound(err, ErrUserNotFound)
	}
	return &u, nil
}

func (r *GormUserRepository) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translateNotFound(err, ErrUserNotFound)
	}
	return &u, nil
}

func (r *GormUserRepository) CreateAtomic(user *domain.User) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (r *GormUserRepository) Create(user *domain.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (r *GormUserRepository) Update(id uint, updates map[string]any) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *GormUserRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *GormUserRepository) List(req PageRequest) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	err := r.db.Preload("Todos").
		Order("id desc").
		Offset(req.offset()).
		Limit(req.limit()).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
