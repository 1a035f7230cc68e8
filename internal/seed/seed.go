// Package seed loads a YAML fixture of demo data through the domain services.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/odyssey-erp/inventory-api/internal/masterdata/categories"
	"github.com/odyssey-erp/inventory-api/internal/masterdata/products"
	"github.com/odyssey-erp/inventory-api/internal/masterdata/suppliers"
	"github.com/odyssey-erp/inventory-api/internal/orders"
	"github.com/odyssey-erp/inventory-api/internal/roles"
	"github.com/odyssey-erp/inventory-api/internal/users"
)

//go:embed seed.yaml
var defaultFixture []byte

// Fixture is the on-disk seed format. Users name their role; ids for roles are assigned on insert.
type Fixture struct {
	Categories []categories.Category `yaml:"categories"`
	Suppliers  []suppliers.Supplier  `yaml:"suppliers"`
	Products   []ProductSeed         `yaml:"products"`
	Orders     []orders.Order        `yaml:"orders"`
	Roles      []roles.Role          `yaml:"roles"`
	Users      []UserSeed            `yaml:"users"`
}

// ProductSeed carries the price as text so it parses exactly.
type ProductSeed struct {
	ID           int64  `yaml:"id"`
	SKU          string `yaml:"sku"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Price        string `yaml:"price"`
	CategoryID   int64  `yaml:"category_id"`
	StockLevel   int32  `yaml:"stock_level"`
	ReorderLevel int32  `yaml:"reorder_level"`
	SupplierID   *int64 `yaml:"supplier_id"`
}

// UserSeed holds a plaintext password that is hashed before insert.
type UserSeed struct {
	ID        int64  `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Role      string `yaml:"role"`
}

// Summary counts the rows inserted per entity.
type Summary struct {
	Categories int `json:"categories"`
	Suppliers  int `json:"suppliers"`
	Products   int `json:"products"`
	Orders     int `json:"orders"`
	Roles      int `json:"roles"`
	Users      int `json:"users"`
}

// Creators is the write surface the seeder needs from each service.
type Creators struct {
	Categories interface {
		Create(context.Context, categories.Category) (categories.Category, error)
	}
	Suppliers interface {
		Create(context.Context, suppliers.Supplier) (suppliers.Supplier, error)
	}
	Products interface {
		Create(context.Context, products.Product) (products.Product, error)
	}
	Orders interface {
		Create(context.Context, orders.Order) (orders.Order, error)
	}
	Roles interface {
		Create(context.Context, roles.Role) (roles.Role, error)
	}
	Users interface {
		Create(context.Context, users.User) (users.User, error)
	}
}

// Default returns the embedded demo fixture.
func Default() (Fixture, error) {
	return Parse(strings.NewReader(string(defaultFixture)))
}

// Parse decodes a fixture, rejecting unknown keys.
func Parse(r io.Reader) (Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Fixture{}, fmt.Errorf("seed: decode fixture: %w", err)
	}
	return f, nil
}

// Seeder inserts fixtures in dependency order.
type Seeder struct {
	creators Creators
	logger   *slog.Logger
	cost     int
}

func NewSeeder(creators Creators, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{creators: creators, logger: logger, cost: bcrypt.DefaultCost}
}

// Apply stops at the first failing row. Rows inserted before the failure are kept.
func (s *Seeder) Apply(ctx context.Context, f Fixture) (Summary, error) {
	var sum Summary
	for _, c := range f.Categories {
		if _, err := s.creators.Categories.Create(ctx, c); err != nil {
			return sum, fmt.Errorf("seed: category %d: %w", c.ID, err)
		}
		sum.Categories++
	}
	for _, sup := range f.Suppliers {
		if _, err := s.creators.Suppliers.Create(ctx, sup); err != nil {
			return sum, fmt.Errorf("seed: supplier %d: %w", sup.ID, err)
		}
		sum.Suppliers++
	}
	for _, p := range f.Products {
		product, err := p.toProduct()
		if err != nil {
			return sum, err
		}
		if _, err := s.creators.Products.Create(ctx, product); err != nil {
			return sum, fmt.Errorf("seed: product %d: %w", p.ID, err)
		}
		sum.Products++
	}
	for _, o := range f.Orders {
		if _, err := s.creators.Orders.Create(ctx, o); err != nil {
			return sum, fmt.Errorf("seed: order %d: %w", o.ID, err)
		}
		sum.Orders++
	}

	roleIDs := make(map[string]int64, len(f.Roles))
	for _, r := range f.Roles {
		created, err := s.creators.Roles.Create(ctx, r)
		if err != nil {
			return sum, fmt.Errorf("seed: role %q: %w", r.Name, err)
		}
		roleIDs[created.Name] = created.ID
		sum.Roles++
	}
	for _, u := range f.Users {
		roleID, ok := roleIDs[u.Role]
		if !ok {
			return sum, fmt.Errorf("seed: user %d: role %q is not part of the fixture", u.ID, u.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.cost)
		if err != nil {
			return sum, fmt.Errorf("seed: hash password for user %d: %w", u.ID, err)
		}
		user := users.User{
			ID:           u.ID,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			Email:        u.Email,
			PasswordHash: string(hash),
			RoleID:       roleID,
		}
		if _, err := s.creators.Users.Create(ctx, user); err != nil {
			return sum, fmt.Errorf("seed: user %d: %w", u.ID, err)
		}
		sum.Users++
	}

	s.logger.Info("seed applied",
		slog.Int("categories", sum.Categories),
		slog.Int("suppliers", sum.Suppliers),
		slog.Int("products", sum.Products),
		slog.Int("orders", sum.Orders),
		slog.Int("roles", sum.Roles),
		slog.Int("users", sum.Users),
	)
	return sum, nil
}

func (p ProductSeed) toProduct() (products.Product, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(p.Price))
	if err != nil {
		return products.Product{}, fmt.Errorf("seed: product %d: price: %w", p.ID, err)
	}
	return products.Product{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Price:        price,
		CategoryID:   p.CategoryID,
		StockLevel:   p.StockLevel,
		ReorderLevel: p.ReorderLevel,
		SupplierID:   p.SupplierID,
	}, nil
}
