package relational

import (
	"time"

	"github.com/google/uuid"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

type categoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:50;not null;uniqueIndex:uk_category_name"`
	Description string     `gorm:"size:50;not null"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
}

func (categoryModel) TableName() string { return "tb_category" }

type productModel struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name        string        `gorm:"size:50;not null"`
	Description string        `gorm:"size:150;not null"`
	Price       float64       `gorm:"not null"`
	URL         string        `gorm:"column:img_url;size:50;not null"`
	CreatedAt   time.Time     `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   *time.Time    `gorm:"autoUpdateTime:false"`
	CategoryID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	Category    categoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (productModel) TableName() string { return "tb_product" }

type roleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Authority string    `gorm:"size:30;not null;uniqueIndex:uk_role_authority"`
}

func (roleModel) TableName() string { return "tb_role" }

type userModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	FirstName string      `gorm:"size:50;not null"`
	LastName  string      `gorm:"size:50;not null"`
	Email     string      `gorm:"size:100;not null;uniqueIndex:uk_user_email"`
	Password  string      `gorm:"size:100;not null"`
	Roles     []roleModel `gorm:"many2many:tb_user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
}

func (userModel) TableName() string { return "tb_user" }

type userRoleModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (userRoleModel) TableName() string { return "tb_user_roles" }

func toCategoryModel(c *domain.Category) categoryModel {
	return categoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m categoryModel) toDomain() *domain.Category {
	return &domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   utcPtr(m.UpdatedAt),
	}
}

func toProductModel(p *domain.Product) productModel {
	return productModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		URL:         p.URL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		CategoryID:  p.CategoryID,
	}
}

func (m productModel) toDomain() *domain.Product {
	return &domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		URL:         m.URL,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   utcPtr(m.UpdatedAt),
		CategoryID:  m.CategoryID,
		Category:    *m.Category.toDomain(),
	}
}

func (m roleModel) toDomain() domain.Role {
	return domain.Role{ID: m.ID, Authority: m.Authority}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.PasswordHash,
	}
}

func (m userModel) toDomain() *domain.User {
	u := &domain.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.Password,
		Roles:        make([]domain.Role, 0, len(m.Roles)),
	}
	for _, r := range m.Roles {
		u.Roles = append(u.Roles, r.toDomain())
	}
	return u
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
