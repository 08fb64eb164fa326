package relational

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

// UserRepository implements ports.UserRepository on gorm. Role links live in
// tb_user_roles and are rewritten together with the user row.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	m := toUserModel(u)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		return linkRoles(tx, u.ID, u.Roles)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) Save(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", u.ID).Delete(&userRoleModel{}).Error; err != nil {
			return err
		}
		return linkRoles(tx, u.ID, u.Roles)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func linkRoles(tx *gorm.DB, userID uuid.UUID, roles []domain.Role) error {
	if len(roles) == 0 {
		return nil
	}
	links := make([]userRoleModel, 0, len(roles))
	for _, role := range roles {
		links = append(links, userRoleModel{UserID: userID, RoleID: role.ID})
	}
	return tx.Create(&links).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Preload("Roles").First(&m, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindAll(ctx context.Context, sort ports.Sort) ([]*domain.User, error) {
	var ms []userModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Order(orderBy("tb_user", userColumns, sort)).
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]*domain.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, &userModel{}, "id = ?", id)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.db, &userModel{}, "email = ?", email)
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&userRoleModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&userModel{}, "id = ?", id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// RoleRepository implements ports.RoleRepository on gorm.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindByAuthority(ctx context.Context, authority string) (*domain.Role, error) {
	var m roleModel
	if err := r.db.WithContext(ctx).First(&m, "authority = ?", authority).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownRole
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	role := m.toDomain()
	return &role, nil
}
