package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

// UserService implements user management and login.
type UserService struct {
	repo   ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	guard  ports.LoginGuard
	logger zerolog.Logger
}

// NewUserService wires the user use cases. A nil guard disables login throttling.
func NewUserService(
	repo ports.UserRepository,
	roles ports.RoleRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	guard ports.LoginGuard,
	logger zerolog.Logger,
) *UserService {
	if guard == nil {
		guard = noGuard{}
	}
	return &UserService{
		repo:   repo,
		roles:  roles,
		hasher: hasher,
		tokens: tokens,
		guard:  guard,
		logger: logger,
	}
}

// Insert creates a user with a hashed password. Emails are unique. A user
// created without roles gets ROLE_USER.
func (s *UserService) Insert(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	exists, err := s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	authorities := in.Roles
	if len(authorities) == 0 {
		authorities = []string{domain.RoleUser}
	}
	roles, err := s.resolveRoles(ctx, authorities)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("insert user: hash password: %w", err)
	}

	u := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Roles:        roles,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("insert user: %w", err)
	}

	s.logger.Info().Str("user_id", u.ID.String()).Strs("roles", u.Authorities()).Msg("user created")
	return u, nil
}

func (s *UserService) FindAll(ctx context.Context, sort ports.Sort) ([]*domain.User, error) {
	return s.repo.FindAll(ctx, sort)
}

func (s *UserService) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update copies the mutable fields of in onto the stored user. The password is
// re-hashed only when in.Password is set; roles are replaced only when given.
func (s *UserService) Update(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Email != current.Email {
		exists, err := s.repo.ExistsByEmail(ctx, in.Email)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		if exists {
			return nil, domain.ErrUserExists
		}
	}

	roles := current.Roles
	if len(in.Roles) > 0 {
		if roles, err = s.resolveRoles(ctx, in.Roles); err != nil {
			return nil, err
		}
	}

	hash := current.PasswordHash
	if in.Password != "" {
		if hash, err = s.hasher.Hash(in.Password); err != nil {
			return nil, fmt.Errorf("update user: hash password: %w", err)
		}
	}

	applyUserUpdate(current, in, hash, roles)
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info().Str("user_id", current.ID.String()).Msg("user updated")
	return current, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info().Str("user_id", id.String()).Msg("user deleted")
	return nil
}

// Login verifies the credentials and issues a bearer token.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	blocked, err := s.guard.Blocked(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login guard check failed, continuing")
	} else if blocked {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if s.hasher.Compare(user.PasswordHash, password) != nil {
		if gerr := s.guard.RecordFailure(ctx, email); gerr != nil {
			s.logger.Warn().Err(gerr).Msg("failed to record login failure")
		}
		return nil, domain.ErrInvalidCredentials
	}

	if gerr := s.guard.Reset(ctx, email); gerr != nil {
		s.logger.Warn().Err(gerr).Msg("failed to reset login guard")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")
	return &ports.LoginResult{Token: token, User: user}, nil
}

func (s *UserService) resolveRoles(ctx context.Context, authorities []string) ([]domain.Role, error) {
	seen := make(map[string]struct{}, len(authorities))
	roles := make([]domain.Role, 0, len(authorities))
	for _, a := range authorities {
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}

		r, err := s.roles.FindByAuthority(ctx, a)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownRole) {
				return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRole, a)
			}
			return nil, fmt.Errorf("resolve role %s: %w", a, err)
		}
		roles = append(roles, *r)
	}
	return roles, nil
}

func applyUserUpdate(dst *domain.User, in ports.UserInput, passwordHash string, roles []domain.Role) {
	dst.FirstName = in.FirstName
	dst.LastName = in.LastName
	dst.Email = in.Email
	dst.PasswordHash = passwordHash
	dst.Roles = roles
}

type noGuard struct{}

func (noGuard) Blocked(context.Context, string) (bool, error) { return false, nil }
func (noGuard) RecordFailure(context.Context, string) error   { return nil }
func (noGuard) Reset(context.Context, string) error           { return nil }
