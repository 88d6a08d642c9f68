package service

import (
	"context"
	"errors"

	commonerrors "github.com/AlibekovAA/users-api/internal/common/errors"
	"github.com/AlibekovAA/users-api/internal/common/logger"
	"github.com/AlibekovAA/users-api/internal/observability/metrics"
	"github.com/AlibekovAA/users-api/internal/user/domain"
	"github.com/AlibekovAA/users-api/internal/user/repository"
)

type UserService struct {
	repo      repository.Repository
	validator *CreateUserValidator
	log       *logger.Logger
}

func NewUserService(repo repository.Repository, log *logger.Logger) *UserService {
	return &UserService{
		repo:      repo,
		validator: NewCreateUserValidator(),
		log:       log,
	}
}

// Ping reads the users table to prove the database is reachable.
func (s *UserService) Ping(ctx context.Context) error {
	if _, err := s.repo.List(ctx); err != nil {
		return s.databaseError(ctx, "ping", err)
	}
	return nil
}

// List returns every user when query is empty, otherwise the users whose
// name contains query, ignoring case.
func (s *UserService) List(ctx context.Context, query string) ([]domain.User, error) {
	var (
		users []domain.User
		err   error
	)
	if query == "" {
		users, err = s.repo.List(ctx)
	} else {
		users, err = s.repo.SearchByName(ctx, query)
	}
	if err != nil {
		return nil, s.databaseError(ctx, "list users", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (domain.User, error) {
	user, err := s.validator.Validate(in)
	if err != nil {
		return domain.User{}, err
	}

	if _, err := s.repo.FindByID(ctx, user.ID); err == nil {
		return domain.User{}, ErrIDAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, s.databaseError(ctx, "find user by id", err)
	}

	if _, err := s.repo.FindByEmail(ctx, user.Email); err == nil {
		return domain.User{}, ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, s.databaseError(ctx, "find user by email", err)
	}

	// The checks above only give an early answer; the unique constraints
	// decide when two creates race.
	if err := s.repo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrIDAlreadyExists):
			return domain.User{}, ErrIDAlreadyExists
		case errors.Is(err, repository.ErrEmailAlreadyExists):
			return domain.User{}, ErrEmailAlreadyExists
		default:
			return domain.User{}, s.databaseError(ctx, "create user", err)
		}
	}

	metrics.UsersCreatedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"user_id": user.ID,
		"action":  "user_created",
	}).Info("user created")

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id domain.ID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return s.databaseError(ctx, "find user by id", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return s.databaseError(ctx, "delete user", err)
	}

	metrics.UsersDeletedTotal.Inc()
	s.log.WithFields(ctx, logger.Fields{
		"user_id": id,
		"action":  "user_deleted",
	}).Info("user deleted")

	return nil
}

func (s *UserService) databaseError(ctx context.Context, operation string, err error) error {
	s.log.WithFields(ctx, logger.Fields{
		"operation": operation,
		"action":    "database_error",
	}).Errorf("database failure: %v", err)
	return commonerrors.ErrDatabase.WithCause(err)
}
