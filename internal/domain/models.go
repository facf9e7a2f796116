package domain

import "time"

// Role of a marketplace account
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// User is an identity-store account
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserPatch partial update of a user; nil fields are left untouched
type UserPatch struct {
	Name         *string
	Role         *Role
	PasswordHash *string
}

// SellerStatus lifecycle of a seller profile
type SellerStatus string

const (
	SellerPending  SellerStatus = "pending"
	SellerVerified SellerStatus = "verified"
	SellerRejected SellerStatus = "rejected"
)

// SellerProfile is the marketplace identity of a seller. Product.SellerID points here, not at User.ID.
type SellerProfile struct {
	ID          string       `json:"id"`
	UserID      int64        `json:"userId"`
	DisplayName string       `json:"displayName"`
	Description string       `json:"description,omitempty"`
	Status      SellerStatus `json:"status"`
	Location    string       `json:"location,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// SellerProfilePatch fields the owning user may change
type SellerProfilePatch struct {
	DisplayName *string
	Description *string
	Location    *string
}

// Category static reference data
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
}

// ProductStatus lifecycle of a listing
type ProductStatus string

const (
	ProductDraft  ProductStatus = "draft"
	ProductActive ProductStatus = "active"
	ProductPaused ProductStatus = "paused"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductDraft, ProductActive, ProductPaused:
		return true
	}
	return false
}

// Product catalog entity. Price and stock live on variants.
type Product struct {
	ID          string         `json:"id"`
	StorageID   string         `json:"-"`
	SellerID    string         `json:"sellerId"`
	CategoryID  string         `json:"categoryId"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description,omitempty"`
	Brand       string         `json:"brand,omitempty"`
	Specs       map[string]any `json:"specsJson,omitempty"`
	Images      []string       `json:"images"`
	Status      ProductStatus  `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`

	// Legacy flat pricing found on documents written before variants existed.
	Legacy LegacyPricing `json:"-"`
}

// LegacyPricing flat fields of pre-variant product documents. Zero values mean absent.
type LegacyPricing struct {
	PriceCents         int64
	Stock              int64
	SKU                string
	Currency           string
	DiscountPercentage int
	ShippingCostCents  int64
	IsFreeShipping     bool
}

// ProductPatch partial update of product fields
type ProductPatch struct {
	Title       *string
	Slug        *string
	Description *string
	CategoryID  *string
	Brand       *string
	Images      *[]string
	Status      *ProductStatus
	Specs       map[string]any
}

func (p ProductPatch) Empty() bool {
	return p.Title == nil && p.Slug == nil && p.Description == nil && p.CategoryID == nil &&
		p.Brand == nil && p.Images == nil && p.Status == nil && p.Specs == nil
}

// ProductVariant priced, stocked unit of a product
type ProductVariant struct {
	ID                 string         `json:"id"`
	ProductID          string         `json:"productId"`
	SKU                string         `json:"sku"`
	PriceCents         int64          `json:"priceCents"`
	Currency           string         `json:"currency"`
	Stock              int64          `json:"stock"`
	DiscountPercentage int            `json:"discountPercentage"`
	ShippingCostCents  int64          `json:"shippingCostCents"`
	IsFreeShipping     bool           `json:"isFreeShipping"`
	Attributes         map[string]any `json:"attributesJson,omitempty"`

	// Virtual marks a read-path variant synthesized from legacy product fields.
	Virtual bool `json:"-"`
}

// VariantPatch partial update of a variant
type VariantPatch struct {
	SKU                *string
	PriceCents         *int64
	Stock              *int64
	DiscountPercentage *int
	ShippingCostCents  *int64
	IsFreeShipping     *bool
}

func (p VariantPatch) Empty() bool {
	return p.SKU == nil && p.PriceCents == nil && p.Stock == nil && p.DiscountPercentage == nil &&
		p.ShippingCostCents == nil && p.IsFreeShipping == nil
}

// Review left by a user on a product
type Review struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	ProductID string    `json:"productId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartItem one row per (user, variant)
type CartItem struct {
	ID        string `json:"id"`
	UserID    int64  `json:"userId"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

// OrderStatus lifecycle of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderPreparing OrderStatus = "preparing"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// CompletedOrderStatuses count as revenue
var CompletedOrderStatuses = []OrderStatus{OrderPaid, OrderShipped, OrderDelivered}

func (s OrderStatus) Completed() bool {
	for _, c := range CompletedOrderStatuses {
		if s == c {
			return true
		}
	}
	return false
}

// OrderItem line pinned to a variant and its seller
type OrderItem struct {
	VariantID      string `json:"variantId"`
	ProductID      string `json:"productId"`
	SellerID       string `json:"sellerId"`
	Title          string `json:"title"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// Order placed by a buyer
type Order struct {
	ID                string      `json:"id"`
	UserID            int64       `json:"userId"`
	Status            OrderStatus `json:"status"`
	TotalCents        int64       `json:"totalCents"`
	Currency          string      `json:"currency"`
	ShippingAddressID string      `json:"shippingAddressId,omitempty"`
	Items             []OrderItem `json:"items"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// HasSeller reports whether any line item belongs to the seller profile
func (o Order) HasSeller(sellerID string) bool {
	for _, it := range o.Items {
		if it.SellerID == sellerID {
			return true
		}
	}
	return false
}

// Image uploaded binary asset
type Image struct {
	ID        string    `json:"id"`
	MimeType  string    `json:"mimeType"`
	Data      []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
