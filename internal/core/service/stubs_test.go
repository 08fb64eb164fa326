package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
	"github.com/bgrbarbosa/product-catalog/internal/core/ports"
)

var discardLogger = zerolog.Nop()

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

type stubCategoryRepo struct {
	byID    map[uuid.UUID]*domain.Category
	saves   int
	findErr error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[uuid.UUID]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	c.ID = uuid.New()
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Save(_ context.Context, c *domain.Category) error {
	r.saves++
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context, _ ports.Sort) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.byID))
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *stubCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range r.byID {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	categories *stubCategoryRepo
	byID       map[uuid.UUID]*domain.Product
	listErr    error
}

func newStubProductRepo(categories *stubCategoryRepo) *stubProductRepo {
	return &stubProductRepo{categories: categories, byID: make(map[uuid.UUID]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	p.ID = uuid.New()
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Save(_ context.Context, p *domain.Product) error {
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) load(p *domain.Product) *domain.Product {
	clone := *p
	if c, ok := r.categories.byID[p.CategoryID]; ok {
		clone.Category = *c
	}
	return &clone
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return r.load(p), nil
}

// FindAll applies the same criteria the relational specification does.
func (r *stubProductRepo) FindAll(_ context.Context, f ports.ProductFilter, _ ports.Sort) ([]*domain.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Product
	for _, stored := range r.byID {
		p := r.load(stored)
		if f.Name != "" && !strings.Contains(p.Name, f.Name) {
			continue
		}
		if f.Description != "" && !strings.Contains(p.Description, f.Description) {
			continue
		}
		if f.Price != nil && p.Price != *f.Price {
			continue
		}
		if f.Category != "" && !strings.Contains(p.Category.Name, f.Category) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Users and roles
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID map[uuid.UUID]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[uuid.UUID]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	u.ID = uuid.New()
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) error {
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context, _ ports.Sort) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type stubRoleRepo map[string]domain.Role

func newStubRoleRepo() stubRoleRepo {
	return stubRoleRepo{
		domain.RoleAdmin: {ID: uuid.New(), Authority: domain.RoleAdmin},
		domain.RoleUser:  {ID: uuid.New(), Authority: domain.RoleUser},
	}
}

func (r stubRoleRepo) FindByAuthority(_ context.Context, authority string) (*domain.Role, error) {
	role, ok := r[authority]
	if !ok {
		return nil, domain.ErrUnknownRole
	}
	return &role, nil
}

// stubHasher prefixes instead of hashing so tests can assert on stored values.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type stubTokens struct{}

func (stubTokens) Issue(u *domain.User) (string, error) { return "token-for-" + u.Email, nil }

type stubGuard struct {
	failures map[string]int
	limit    int
}

func newStubGuard(limit int) *stubGuard {
	return &stubGuard{failures: make(map[string]int), limit: limit}
}

func (g *stubGuard) Blocked(_ context.Context, email string) (bool, error) {
	return g.failures[email] >= g.limit, nil
}

func (g *stubGuard) RecordFailure(_ context.Context, email string) error {
	g.failures[email]++
	return nil
}

func (g *stubGuard) Reset(_ context.Context, email string) error {
	delete(g.failures, email)
	return nil
}

// ---------------------------------------------------------------------------
// Reports and mail
// ---------------------------------------------------------------------------

type stubExporter struct {
	format domain.ReportFormat
	table  domain.ReportTable
	err    error
}

func (e *stubExporter) Export(w io.Writer, format domain.ReportFormat, table domain.ReportTable) error {
	e.format = format
	e.table = table
	if e.err != nil {
		return e.err
	}
	_, err := fmt.Fprintf(w, "%s:%d", format, len(table.Rows))
	return err
}

type stubMailer struct {
	sent []ports.MailMessage
	err  error
}

func (m *stubMailer) Send(_ context.Context, msg ports.MailMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type stubAudit struct {
	records []ports.EmailDispatch
	err     error
}

func (a *stubAudit) Record(_ context.Context, d ports.EmailDispatch) error {
	a.records = append(a.records, d)
	return a.err
}
