package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInvalidRole           = errors.New("invalid role")
	ErrCannotDisableSelf     = errors.New("cannot disable your own account")
)

type UserUsecase interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id int) (*dto.UserResponse, error)
	List(ctx context.Context, role string, page, limit int) ([]dto.UserResponse, int64, error)
	Update(ctx context.Context, actorID, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, actorID, id int) error
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewUserUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
	}
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	db := u.db.WithContext(ctx)

	existing, err := u.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to check username: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Role:     req.Role,
		IsActive: true,
	}

	if err := u.userRepo.Create(db, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetByID(ctx context.Context, id int) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) List(ctx context.Context, role string, page, limit int) ([]dto.UserResponse, int64, error) {
	offset := (page - 1) * limit

	users, total, err := u.userRepo.FindAll(u.db.WithContext(ctx), role, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, 0, err
	}

	return converter.UsersToResponses(users), total, nil
}

func (u *userUsecase) Update(ctx context.Context, actorID, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Username != nil && *req.Username != user.Username {
		existing, err := u.userRepo.FindByUsername(db, *req.Username)
		if err != nil {
			u.log.Warnf("Failed to check username: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrUsernameAlreadyExists
		}
		user.Username = *req.Username
	}

	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if req.Role != nil {
		if !entity.ValidRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}

	if req.IsActive != nil {
		if !*req.IsActive && id == actorID {
			return nil, ErrCannotDisableSelf
		}
		user.IsActive = *req.IsActive
	}

	if err := u.userRepo.Update(db, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to update user %d: %+v", id, err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Deactivate(ctx context.Context, actorID, id int) error {
	if id == actorID {
		return ErrCannotDisableSelf
	}

	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", id, err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.IsActive = false
	if err := u.userRepo.Update(db, user); err != nil {
		u.log.Warnf("Failed to deactivate user %d: %+v", id, err)
		return err
	}

	return nil
}
