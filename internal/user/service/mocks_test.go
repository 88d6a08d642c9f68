package service

import (
	"context"

	"github.com/AlibekovAA/users-api/internal/user/domain"
	"github.com/AlibekovAA/users-api/internal/user/repository"
)

type mockUserRepo struct {
	listFunc         func(ctx context.Context) ([]domain.User, error)
	searchByNameFunc func(ctx context.Context, term string) ([]domain.User, error)
	findByIDFunc     func(ctx context.Context, id domain.ID) (domain.User, error)
	findByEmailFunc  func(ctx context.Context, email string) (domain.User, error)
	createFunc       func(ctx context.Context, user domain.User) error
	deleteFunc       func(ctx context.Context, id domain.ID) error

	created []domain.User
	deleted []domain.ID
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) SearchByName(ctx context.Context, term string) ([]domain.User, error) {
	if m.searchByNameFunc != nil {
		return m.searchByNameFunc(ctx, term)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) error {
	if m.createFunc != nil {
		if err := m.createFunc(ctx, user); err != nil {
			return err
		}
	}
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id domain.ID) error {
	if m.deleteFunc != nil {
		if err := m.deleteFunc(ctx, id); err != nil {
			return err
		}
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockUserRepo) Migrate(ctx context.Context) error {
	return nil
}
