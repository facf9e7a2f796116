package domain

// SortOrder of a product listing
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
	SortPopular   SortOrder = "popular"
)

func (s SortOrder) Valid() bool {
	switch s {
	case SortNone, SortNewest, SortPriceAsc, SortPriceDesc, SortRating, SortPopular:
		return true
	}
	return false
}

// ProductFilter input of the aggregation engine. Zero values mean "no constraint".
// Prices are minor units.
type ProductFilter struct {
	Search     string
	CategoryID string
	SellerID   string
	Brand      string
	Status     ProductStatus
	ID         string
	Slug       string

	MinPrice     *int64
	MaxPrice     *int64
	HasDiscount  bool
	FreeShipping bool

	Sort   SortOrder
	Limit  int
	Offset int
}

// SingleLookup reports whether the filter addresses one entity by id or slug
func (f ProductFilter) SingleLookup() bool {
	return f.ID != "" || f.Slug != ""
}

// SellerView seller data embedded in a product view
type SellerView struct {
	ID          string       `json:"id,omitempty"`
	UserID      int64        `json:"userId,omitempty"`
	DisplayName string       `json:"displayName"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Status      SellerStatus `json:"status,omitempty"`
	Location    string       `json:"location,omitempty"`
}

// ProductView denormalized product ready for rendering
type ProductView struct {
	Product

	Variants []ProductVariant `json:"variants"`

	VariantID          string  `json:"variantId"`
	Price              int64   `json:"price"`
	PriceCents         int64   `json:"priceCents"`
	Stock              int64   `json:"stock"`
	SKU                string  `json:"sku"`
	Currency           string  `json:"currency"`
	DiscountPercentage int     `json:"discountPercentage"`
	IsFreeShipping     bool    `json:"isFreeShipping"`
	FreeShipping       bool    `json:"freeShipping"`
	ShippingCostCents  int64   `json:"shippingCostCents"`
	ShippingCost       float64 `json:"shippingCost"`

	Seller     SellerView `json:"seller"`
	SellerName string     `json:"sellerName"`

	ReviewCount int     `json:"reviewCount"`
	Rating      float64 `json:"rating"`
}

// Representative returns the variant whose fields are flattened onto the view
func (v ProductView) Representative() ProductVariant {
	if len(v.Variants) == 0 {
		return ProductVariant{}
	}
	return v.Variants[0]
}

// ReviewView review with the author's display name
type ReviewView struct {
	Review
	UserName string `json:"userName"`
}

// CartLine hydrated cart row
type CartLine struct {
	CartItem
	ProductID       string `json:"productId,omitempty"`
	ProductName     string `json:"productName"`
	SKU             string `json:"sku"`
	ProductPrice    int64  `json:"productPrice"`
	ProductCurrency string `json:"productCurrency"`
	ProductImage    string `json:"productImage"`
	SellerID        string `json:"sellerId,omitempty"`
	Available       bool   `json:"available"`
}
