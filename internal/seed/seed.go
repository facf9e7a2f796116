// Package seed loads demo fixtures into the stores. Every step looks up what
// already exists first, so running it twice leaves the data unchanged.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"aura/internal/auth"
	"aura/internal/catalog"
	"aura/internal/domain"
	"aura/internal/repository"
)

//go:embed seed.yaml
var defaultFixtures []byte

// Fixtures document shape of seed.yaml
type Fixtures struct {
	Categories []CategoryFixture `yaml:"categories"`
	Users      []UserFixture     `yaml:"users"`
	Sellers    []SellerFixture   `yaml:"sellers"`
	Products   []ProductFixture  `yaml:"products"`
}

type CategoryFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type UserFixture struct {
	Email    string      `yaml:"email"`
	Password string      `yaml:"password"`
	Name     string      `yaml:"name"`
	Role     domain.Role `yaml:"role"`
}

// SellerFixture profile owned by the user with Email
type SellerFixture struct {
	Email       string              `yaml:"email"`
	DisplayName string              `yaml:"displayName"`
	Description string              `yaml:"description"`
	Location    string              `yaml:"location"`
	Status      domain.SellerStatus `yaml:"status"`
}

// ProductFixture prices are major-unit decimal strings
type ProductFixture struct {
	Title              string         `yaml:"title"`
	Seller             string         `yaml:"seller"`
	Category           string         `yaml:"category"`
	Brand              string         `yaml:"brand"`
	Description        string         `yaml:"description"`
	Images             []string       `yaml:"images"`
	Specs              map[string]any `yaml:"specs"`
	Price              string         `yaml:"price"`
	Stock              int64          `yaml:"stock"`
	DiscountPercentage int            `yaml:"discountPercentage"`
	ShippingCost       string         `yaml:"shippingCost"`
	FreeShipping       bool           `yaml:"freeShipping"`
}

// Parse decodes and checks a fixtures document
func Parse(data []byte) (*Fixtures, error) {
	var fx Fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	for _, u := range fx.Users {
		if u.Email == "" || u.Password == "" || !u.Role.Valid() {
			return nil, fmt.Errorf("fixture user %q: email, password and a valid role are required", u.Email)
		}
	}
	for _, p := range fx.Products {
		if p.Title == "" || p.Seller == "" || p.Price == "" {
			return nil, fmt.Errorf("fixture product %q: title, seller and price are required", p.Title)
		}
	}
	return &fx, nil
}

// Default embedded demo catalog
func Default() *Fixtures {
	fx, err := Parse(defaultFixtures)
	if err != nil {
		panic(err)
	}
	return fx
}

// Report counts what a run created
type Report struct {
	Categories int
	Users      int
	Sellers    int
	Products   int
}

type Seeder struct {
	st  repository.Stores
	log *slog.Logger
}

func New(st repository.Stores, log *slog.Logger) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{st: st, log: log}
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases and collapses every non-alphanumeric run into '-'
func Slug(title string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(title), "-"), "-")
}

// SKU of the default variant of a seeded product
func SKU(slug string) string {
	if len(slug) > 10 {
		slug = slug[:10]
	}
	return strings.ToUpper(slug) + "-DEF"
}

func (s *Seeder) Run(ctx context.Context, fx *Fixtures) (Report, error) {
	var rep Report

	categories, err := s.categories(ctx, fx.Categories, &rep)
	if err != nil {
		return rep, err
	}
	users, err := s.users(ctx, fx.Users, &rep)
	if err != nil {
		return rep, err
	}
	sellers, err := s.sellers(ctx, fx.Sellers, users, &rep)
	if err != nil {
		return rep, err
	}
	if err := s.products(ctx, fx.Products, categories, sellers, &rep); err != nil {
		return rep, err
	}
	s.log.Info("seed complete",
		"categories", rep.Categories, "users", rep.Users, "sellers", rep.Sellers, "products", rep.Products)
	return rep, nil
}

// categories returns category ids keyed by lowercased name
func (s *Seeder) categories(ctx context.Context, in []CategoryFixture, rep *Report) (map[string]string, error) {
	existing, err := s.st.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	ids := make(map[string]string, len(existing))
	for _, c := range existing {
		ids[strings.ToLower(c.Name)] = c.ID
	}
	for _, c := range in {
		key := strings.ToLower(c.Name)
		if _, ok := ids[key]; ok {
			continue
		}
		cat := domain.Category{Name: c.Name, Description: c.Description, Icon: c.Icon}
		if err := s.st.Categories.Create(ctx, &cat); err != nil {
			return nil, fmt.Errorf("create category %q: %w", c.Name, err)
		}
		ids[key] = cat.ID
		rep.Categories++
	}
	return ids, nil
}

// users returns accounts keyed by lowercased email
func (s *Seeder) users(ctx context.Context, in []UserFixture, rep *Report) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User, len(in))
	for _, f := range in {
		email := strings.ToLower(f.Email)
		u, err := s.st.Users.GetByEmail(ctx, email)
		if err == nil {
			out[email] = u
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("get user %q: %w", email, err)
		}
		hash, err := auth.HashPassword(f.Password)
		if err != nil {
			return nil, err
		}
		u = &domain.User{Email: email, PasswordHash: hash, Name: f.Name, Role: f.Role}
		if err := s.st.Users.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("create user %q: %w", email, err)
		}
		out[email] = u
		rep.Users++
	}
	return out, nil
}

// sellers returns profile ids keyed by the owner's lowercased email
func (s *Seeder) sellers(ctx context.Context, in []SellerFixture, users map[string]*domain.User, rep *Report) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for _, f := range in {
		email := strings.ToLower(f.Email)
		u, ok := users[email]
		if !ok {
			return nil, fmt.Errorf("seller fixture %q: unknown user", f.Email)
		}
		p, err := s.st.Sellers.GetByUserID(ctx, u.ID)
		if err == nil {
			out[email] = p.ID
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("get seller profile %q: %w", email, err)
		}
		status := f.Status
		if status == "" {
			status = domain.SellerPending
		}
		p = &domain.SellerProfile{
			UserID:      u.ID,
			DisplayName: f.DisplayName,
			Description: f.Description,
			Location:    f.Location,
			Status:      status,
		}
		if err := s.st.Sellers.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("create seller profile %q: %w", email, err)
		}
		out[email] = p.ID
		rep.Sellers++
	}
	return out, nil
}

func (s *Seeder) products(ctx context.Context, in []ProductFixture, categories, sellers map[string]string, rep *Report) error {
	for _, f := range in {
		slug := Slug(f.Title)
		taken, err := s.st.Products.SlugExists(ctx, slug)
		if err != nil {
			return fmt.Errorf("check slug %q: %w", slug, err)
		}
		if taken {
			continue
		}
		sellerID, ok := sellers[strings.ToLower(f.Seller)]
		if !ok {
			return fmt.Errorf("product fixture %q: unknown seller %q", f.Title, f.Seller)
		}
		price, err := domain.MinorUnits(f.Price)
		if err != nil {
			return fmt.Errorf("product fixture %q: %w", f.Title, err)
		}
		var shipping int64
		if f.ShippingCost != "" {
			if shipping, err = domain.MinorUnits(f.ShippingCost); err != nil {
				return fmt.Errorf("product fixture %q: %w", f.Title, err)
			}
		}

		p := domain.Product{
			SellerID:    sellerID,
			CategoryID:  categories[strings.ToLower(f.Category)],
			Title:       f.Title,
			Slug:        slug,
			Description: f.Description,
			Brand:       f.Brand,
			Specs:       f.Specs,
			Images:      f.Images,
			Status:      domain.ProductActive,
		}
		if p.Images == nil {
			p.Images = []string{}
		}
		if err := s.st.Products.Create(ctx, &p); err != nil {
			return fmt.Errorf("create product %q: %w", slug, err)
		}
		v := domain.ProductVariant{
			ProductID:          p.ID,
			SKU:                SKU(slug),
			PriceCents:         price,
			Currency:           catalog.DefaultCurrency,
			Stock:              f.Stock,
			DiscountPercentage: f.DiscountPercentage,
			ShippingCostCents:  shipping,
			IsFreeShipping:     f.FreeShipping,
			Attributes:         map[string]any{},
		}
		if err := s.st.Variants.Create(ctx, &v); err != nil {
			return fmt.Errorf("create variant %q: %w", slug, err)
		}
		rep.Products++
	}
	return nil
}
