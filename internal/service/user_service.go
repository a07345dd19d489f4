package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vex-labs/vex-backend/internal/domain"
	"github.com/vex-labs/vex-backend/internal/observability"
	"github.com/vex-labs/vex-backend/internal/store"
	apperrors "github.com/vex-labs/vex-backend/pkg/util"
)

// UserService owns user CRUD against the shared store.
type UserService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(st *store.Store, logger *zap.Logger) *UserService {
	return &UserService{store: st, logger: logger}
}

// UserUpdateInput carries the optional fields for UpdateUser. Nil fields are
// left untouched.
type UserUpdateInput struct {
	Name  *string
	Email *string
}

// CreateUser allocates the next user ID, stamps created_at and inserts. It
// never fails.
func (s *UserService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	st := s.store
	st.Lock()
	defer st.Unlock()

	user := &domain.User{
		ID:        st.UserSeq.Next(),
		Name:      name,
		Email:     email,
		CreatedAt: st.Now(),
	}
	st.Users.Put(user)
	st.MarkDirty()
	observability.SetEntityCount("user", st.Users.Len())
	s.logger.Info("user created", zap.Uint64("user_id", user.ID))

	stored := *user
	return &stored, nil
}

// GetUser performs a point lookup. Absence is a result here, not an error.
func (s *UserService) GetUser(ctx context.Context, id uint64) (*domain.User, bool) {
	st := s.store
	st.Lock()
	defer st.Unlock()

	user, ok := st.Users.Get(id)
	if !ok {
		return nil, false
	}
	stored := *user
	return &stored, true
}

// ListUsers returns all users in ascending ID order.
func (s *UserService) ListUsers(ctx context.Context) []domain.User {
	st := s.store
	st.Lock()
	defer st.Unlock()

	rows := st.Users.Ascend()
	users := make([]domain.User, 0, len(rows))
	for _, user := range rows {
		users = append(users, *user)
	}
	return users
}

// UpdateUser replaces the supplied fields, leaving omitted ones untouched.
func (s *UserService) UpdateUser(ctx context.Context, id uint64, input UserUpdateInput) (*domain.User, error) {
	st := s.store
	st.Lock()
	defer st.Unlock()

	user, ok := st.Users.Get(id)
	if !ok {
		return nil, apperrors.NewNotFound("user", id)
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	st.MarkDirty()

	stored := *user
	return &stored, nil
}

// DeleteUser removes the user. Tickets referencing the user keep their
// references; deletion does not cascade.
func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	st := s.store
	st.Lock()
	defer st.Unlock()

	if !st.Users.Delete(id) {
		return apperrors.NewNotFound("user", id)
	}
	st.MarkDirty()
	observability.SetEntityCount("user", st.Users.Len())
	s.logger.Info("user deleted", zap.Uint64("user_id", id))
	return nil
}
