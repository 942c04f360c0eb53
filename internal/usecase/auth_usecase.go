package usecase

import (
	"context"
	"errors"
	"time"

	"vet-clinic-api/internal/converter"
	"vet-clinic-api/internal/delivery/dto"
	"vet-clinic-api/internal/domain/entity"
	"vet-clinic-api/internal/domain/repository"
	"vet-clinic-api/pkg/session"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid password")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*dto.MeResponse, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	sessions   session.Store
	sessionTTL time.Duration
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessions session.Store,
	sessionTTL time.Duration,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = entity.RoleStaff
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Role:         role,
	}

	if err := u.userRepo.Create(ctx, u.db, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByUsername(ctx, u.db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	identity := converter.UserToIdentity(user)
	token, err := u.sessions.Create(ctx, identity)
	if err != nil {
		u.log.Warnf("Failed to create session: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(u.sessionTTL.Seconds()),
		User:      *converter.IdentityToResponse(&identity),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if err := u.sessions.Destroy(ctx, token); err != nil {
		u.log.Warnf("Failed to destroy session: %+v", err)
		return err
	}
	return nil
}

// CurrentUser resolves the presented token, if any, and never fails on an
// absent or invalid session: the response simply carries a null user.
func (u *authUsecase) CurrentUser(ctx context.Context, token string) (*dto.MeResponse, error) {
	if token == "" {
		return &dto.MeResponse{User: nil}, nil
	}

	identity, err := u.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return &dto.MeResponse{User: nil}, nil
		}
		u.log.Warnf("Failed to resolve session: %+v", err)
		return nil, err
	}

	return &dto.MeResponse{User: converter.IdentityToResponse(identity)}, nil
}
