package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"aura/internal/blob"
	"aura/internal/catalog"
	"aura/internal/domain"
	"aura/internal/repository"
)

// DefaultSKU used when a variant is created without one
const DefaultSKU = "DEFAULT-SKU"

var ErrInvalidInput = errors.New("invalid input")

// ProductService wraps the catalog engine with product and variant writes
type ProductService struct {
	engine     *catalog.Engine
	products   repository.ProductRepository
	variants   repository.VariantRepository
	reviews    repository.ReviewRepository
	categories repository.CategoryRepository
	sellers    repository.SellerRepository
	images     blob.Store
	log        *slog.Logger
}

func NewProductService(st repository.Stores, engine *catalog.Engine, images blob.Store, log *slog.Logger) *ProductService {
	if log == nil {
		log = slog.Default()
	}
	return &ProductService{
		engine:     engine,
		products:   st.Products,
		variants:   st.Variants,
		reviews:    st.Reviews,
		categories: st.Categories,
		sellers:    st.Sellers,
		images:     images,
		log:        log,
	}
}

// ProductInput flat create payload; prices in minor units
type ProductInput struct {
	SellerID           string
	Title              string
	Slug               string
	Description        string
	CategoryID         string
	Brand              string
	Images             []string
	Status             domain.ProductStatus
	Specs              map[string]any
	SKU                string
	PriceCents         int64
	Stock              int64
	DiscountPercentage int
	ShippingCostCents  int64
	IsFreeShipping     bool
}

// ProductUpdate splits a flat update into product and representative-variant fields
type ProductUpdate struct {
	Product domain.ProductPatch
	Variant domain.VariantPatch
}

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugNonWord = regexp.MustCompile(`[^\w-]+`)
)

// Slugify lowercases, joins words with '-' and drops non-word characters
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugNonWord.ReplaceAllString(s, "")
}

func (s *ProductService) List(ctx context.Context, f domain.ProductFilter) ([]domain.ProductView, error) {
	return s.engine.Query(ctx, f)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.ProductView, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	v, ok, err := s.engine.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.ProductView, error) {
	v, ok, err := s.engine.ProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (s *ProductService) Variants(ctx context.Context, productID string) ([]domain.ProductVariant, error) {
	return s.engine.Variants(ctx, productID)
}

// ListForSeller lists the actor's own products in every status; admins get all products
func (s *ProductService) ListForSeller(ctx context.Context, actor *domain.User) ([]domain.ProductView, error) {
	if actor != nil && actor.Role == domain.RoleAdmin {
		return s.engine.Query(ctx, domain.ProductFilter{})
	}
	profile, err := ownProfile(ctx, s.sellers, actor)
	if err != nil {
		return nil, err
	}
	return s.engine.Query(ctx, domain.ProductFilter{SellerID: profile.ID})
}

// ListAll every product regardless of status, admin only
func (s *ProductService) ListAll(ctx context.Context, actor *domain.User) ([]domain.ProductView, error) {
	if err := requireRole(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.engine.Query(ctx, domain.ProductFilter{})
}

// sellerScope returns the seller profile id the actor writes as; admins get "" and admin=true
func (s *ProductService) sellerScope(ctx context.Context, actor *domain.User) (sellerID string, admin bool, err error) {
	if actor == nil {
		return "", false, ErrAccessDenied
	}
	switch actor.Role {
	case domain.RoleAdmin:
		return "", true, nil
	case domain.RoleSeller:
		profile, err := s.sellers.GetByUserID(ctx, actor.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return "", false, fmt.Errorf("%w: seller profile not found", ErrAccessDenied)
		}
		if err != nil {
			return "", false, err
		}
		return profile.ID, false, nil
	}
	return "", false, ErrAccessDenied
}

func (s *ProductService) Create(ctx context.Context, actor *domain.User, in ProductInput) (*domain.ProductView, error) {
	sellerID, admin, err := s.sellerScope(ctx, actor)
	if err != nil {
		return nil, err
	}
	if admin {
		if in.SellerID == "" {
			return nil, fmt.Errorf("%w: admin must provide a sellerId", ErrInvalidInput)
		}
		sellerID = in.SellerID
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || in.PriceCents < 0 || in.Stock < 0 || in.ShippingCostCents < 0 ||
		in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		return nil, ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = domain.ProductDraft
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is empty", ErrInvalidInput)
	}
	if err := s.checkSlug(ctx, slug); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	p := domain.Product{
		SellerID:    sellerID,
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Slug:        slug,
		Description: in.Description,
		Brand:       in.Brand,
		Images:      images,
		Status:      in.Status,
		Specs:       in.Specs,
	}
	if err := s.products.Create(ctx, &p); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: slug %q already in use", ErrInvalidInput, slug)
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	sku := in.SKU
	if sku == "" {
		sku = DefaultSKU
	}
	v := domain.ProductVariant{
		ProductID:          p.ID,
		SKU:                sku,
		PriceCents:         in.PriceCents,
		Currency:           catalog.DefaultCurrency,
		Stock:              in.Stock,
		DiscountPercentage: in.DiscountPercentage,
		ShippingCostCents:  in.ShippingCostCents,
		IsFreeShipping:     in.IsFreeShipping,
		Attributes:         map[string]any{},
	}
	if err := s.variants.Create(ctx, &v); err != nil {
		// no transaction spans the two writes; undo the product
		if derr := s.products.Delete(ctx, p.ID); derr != nil {
			s.log.Error("rollback product after variant failure", "product_id", p.ID, "error", derr)
		}
		return nil, fmt.Errorf("create variant: %w", err)
	}
	s.log.Info("product created", "product_id", p.ID, "seller_id", sellerID, "slug", slug)
	return s.GetByID(ctx, p.ID)
}

func (s *ProductService) checkSlug(ctx context.Context, slug string) error {
	taken, err := s.products.SlugExists(ctx, slug)
	if err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: slug %q already in use", ErrInvalidInput, slug)
	}
	return nil
}

func (s *ProductService) checkCategory(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, id)
		}
		return err
	}
	return nil
}

// owned loads the product and checks the actor may mutate it
func (s *ProductService) owned(ctx context.Context, actor *domain.User, id string) (*domain.ProductView, error) {
	view, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sellerID, admin, err := s.sellerScope(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !admin && view.SellerID != sellerID {
		return nil, ErrAccessDenied
	}
	return view, nil
}

func validVariantPatch(p domain.VariantPatch) bool {
	if p.PriceCents != nil && *p.PriceCents < 0 {
		return false
	}
	if p.Stock != nil && *p.Stock < 0 {
		return false
	}
	if p.ShippingCostCents != nil && *p.ShippingCostCents < 0 {
		return false
	}
	if p.DiscountPercentage != nil && (*p.DiscountPercentage < 0 || *p.DiscountPercentage > 100) {
		return false
	}
	return true
}

// Update applies product fields to the product and variant fields to the
// representative variant only. A product without persisted variants gets a real
// one built from the update.
func (s *ProductService) Update(ctx context.Context, actor *domain.User, id string, upd ProductUpdate) (*domain.ProductView, error) {
	view, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	pp := upd.Product
	if pp.Title != nil && strings.TrimSpace(*pp.Title) == "" {
		return nil, fmt.Errorf("%w: title is empty", ErrInvalidInput)
	}
	if pp.Status != nil && !pp.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *pp.Status)
	}
	if pp.Slug != nil {
		if *pp.Slug == "" {
			return nil, fmt.Errorf("%w: slug is empty", ErrInvalidInput)
		}
		if *pp.Slug != view.Slug {
			if err := s.checkSlug(ctx, *pp.Slug); err != nil {
				return nil, err
			}
		}
	}
	if pp.CategoryID != nil {
		if err := s.checkCategory(ctx, *pp.CategoryID); err != nil {
			return nil, err
		}
	}
	if !validVariantPatch(upd.Variant) {
		return nil, ErrInvalidInput
	}

	if !pp.Empty() {
		if err := s.products.Update(ctx, view.ID, pp); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return nil, fmt.Errorf("%w: slug already in use", ErrInvalidInput)
			}
			return nil, fmt.Errorf("update product: %w", err)
		}
	}
	if !upd.Variant.Empty() {
		if err := s.updateRepresentative(ctx, view, upd.Variant); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, view.ID)
}

func (s *ProductService) updateRepresentative(ctx context.Context, view *domain.ProductView, vp domain.VariantPatch) error {
	rep := view.Representative()
	if !rep.Virtual {
		if err := s.variants.Update(ctx, rep.ID, vp); err != nil {
			return fmt.Errorf("update variant: %w", err)
		}
		return nil
	}
	v := domain.ProductVariant{
		ProductID:  view.ID,
		SKU:        DefaultSKU,
		Currency:   catalog.DefaultCurrency,
		Attributes: map[string]any{},
	}
	if vp.SKU != nil {
		v.SKU = *vp.SKU
	}
	if vp.PriceCents != nil {
		v.PriceCents = *vp.PriceCents
	}
	if vp.Stock != nil {
		v.Stock = *vp.Stock
	}
	if vp.DiscountPercentage != nil {
		v.DiscountPercentage = *vp.DiscountPercentage
	}
	if vp.ShippingCostCents != nil {
		v.ShippingCostCents = *vp.ShippingCostCents
	}
	if vp.IsFreeShipping != nil {
		v.IsFreeShipping = *vp.IsFreeShipping
	}
	if err := s.variants.Create(ctx, &v); err != nil {
		return fmt.Errorf("create variant: %w", err)
	}
	s.log.Info("materialized legacy variant", "product_id", view.ID, "variant_id", v.ID)
	return nil
}

// Delete removes the product with its variants, reviews and locally stored images
func (s *ProductService) Delete(ctx context.Context, actor *domain.User, id string) error {
	view, err := s.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	s.deleteImages(ctx, view.Images)
	if err := s.products.Delete(ctx, view.ID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if err := s.variants.DeleteByProductID(ctx, view.ID); err != nil {
		return fmt.Errorf("delete variants: %w", err)
	}
	if err := s.reviews.DeleteByProductID(ctx, view.ID); err != nil {
		return fmt.Errorf("delete reviews: %w", err)
	}
	s.log.Info("product deleted", "product_id", view.ID, "by", actor.ID)
	return nil
}

// deleteImages is best effort: a missing blob must not block the product delete
func (s *ProductService) deleteImages(ctx context.Context, urls []string) {
	if s.images == nil {
		return
	}
	for _, u := range urls {
		id, ok := blob.IDFromURL(u)
		if !ok {
			continue
		}
		if err := s.images.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("delete image", "image_id", id, "error", err)
		}
	}
}
