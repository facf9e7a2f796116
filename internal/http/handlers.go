package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aura/internal/domain"
	"aura/internal/repository"
	"aura/internal/service"
)

// Catalog handlers

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.svc.Categories.List(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary List products
// @Tags products
// @Produce json
// @Param search query string false "Title or description contains"
// @Param categoryId query string false "Category"
// @Param sellerId query string false "Seller profile"
// @Param brand query string false "Brand, Todas for any"
// @Param status query string false "draft, active or paused"
// @Param minPrice query number false "Minimum price in major units"
// @Param maxPrice query number false "Maximum price in major units"
// @Param priceRange query string false "a-b or a+"
// @Param hasDiscount query bool false "Only discounted"
// @Param freeShipping query bool false "Only free shipping"
// @Param sort query string false "newest, price_asc, price_desc, rating or popular"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.ProductView
// @Failure 400 {object} map[string]string
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	f, err := parseProductFilter(c)
	if err != nil {
		s.badRequest(c, err)
		return
	}
	views, err := s.svc.Products.List(c, f)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get product by id or slug
// @Tags products
// @Produce json
// @Param id path string true "Product ID or slug"
// @Success 200 {object} domain.ProductView
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	key := c.Param("id")
	v, err := s.svc.Products.GetByID(c, key)
	if errors.Is(err, repository.ErrNotFound) {
		v, err = s.svc.Products.GetBySlug(c, key)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary List product variants
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} domain.ProductVariant
// @Router /products/{id}/variants [get]
func (s *Server) listVariants(c *gin.Context) {
	vs, err := s.svc.Products.Variants(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, vs)
}

type productReq struct {
	SellerID           string               `json:"sellerId"`
	Title              string               `json:"title" binding:"required,max=200"`
	Slug               string               `json:"slug" binding:"omitempty,slug"`
	Description        string               `json:"description"`
	CategoryID         string               `json:"categoryId" binding:"required"`
	Brand              string               `json:"brand"`
	Images             []string             `json:"images"`
	Status             domain.ProductStatus `json:"status"`
	Specs              map[string]any       `json:"specsJson"`
	SKU                string               `json:"sku"`
	Price              amount               `json:"price" swaggertype:"number"`
	Stock              flexInt              `json:"stock" swaggertype:"integer"`
	DiscountPercentage flexInt              `json:"discountPercentage" swaggertype:"integer"`
	ShippingCost       amount               `json:"shippingCost" swaggertype:"number"`
	IsFreeShipping     flexBool             `json:"isFreeShipping" swaggertype:"boolean"`
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body productReq true "Product with its first variant; prices in major units"
// @Success 201 {object} domain.ProductView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	discount, err := req.DiscountPercentage.small()
	if err != nil {
		s.badRequest(c, err)
		return
	}
	v, err := s.svc.Products.Create(c, currentUser(c), service.ProductInput{
		SellerID:           req.SellerID,
		Title:              req.Title,
		Slug:               req.Slug,
		Description:        req.Description,
		CategoryID:         req.CategoryID,
		Brand:              req.Brand,
		Images:             req.Images,
		Status:             req.Status,
		Specs:              req.Specs,
		SKU:                req.SKU,
		PriceCents:         int64(req.Price),
		Stock:              int64(req.Stock),
		DiscountPercentage: discount,
		ShippingCostCents:  int64(req.ShippingCost),
		IsFreeShipping:     bool(req.IsFreeShipping),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

type updateProductReq struct {
	Title              *string               `json:"title" binding:"omitempty,max=200"`
	Slug               *string               `json:"slug" binding:"omitempty,slug"`
	Description        *string               `json:"description"`
	CategoryID         *string               `json:"categoryId"`
	Brand              *string               `json:"brand"`
	Images             *[]string             `json:"images"`
	Status             *domain.ProductStatus `json:"status"`
	Specs              map[string]any        `json:"specsJson"`
	SKU                *string               `json:"sku"`
	Price              *amount               `json:"price" swaggertype:"number"`
	Stock              *flexInt              `json:"stock" swaggertype:"integer"`
	DiscountPercentage *flexInt              `json:"discountPercentage" swaggertype:"integer"`
	ShippingCost       *amount               `json:"shippingCost" swaggertype:"number"`
	IsFreeShipping     *flexBool             `json:"isFreeShipping" swaggertype:"boolean"`
}

func (r updateProductReq) toUpdate() (service.ProductUpdate, error) {
	upd := service.ProductUpdate{
		Product: domain.ProductPatch{
			Title:       r.Title,
			Slug:        r.Slug,
			Description: r.Description,
			CategoryID:  r.CategoryID,
			Brand:       r.Brand,
			Images:      r.Images,
			Status:      r.Status,
			Specs:       r.Specs,
		},
		Variant: domain.VariantPatch{SKU: r.SKU},
	}
	if r.Price != nil {
		v := int64(*r.Price)
		upd.Variant.PriceCents = &v
	}
	if r.Stock != nil {
		v := int64(*r.Stock)
		upd.Variant.Stock = &v
	}
	if r.DiscountPercentage != nil {
		v, err := r.DiscountPercentage.small()
		if err != nil {
			return upd, err
		}
		upd.Variant.DiscountPercentage = &v
	}
	if r.ShippingCost != nil {
		v := int64(*r.ShippingCost)
		upd.Variant.ShippingCostCents = &v
	}
	if r.IsFreeShipping != nil {
		v := bool(*r.IsFreeShipping)
		upd.Variant.IsFreeShipping = &v
	}
	return upd, nil
}

// @Summary Update product
// @Description Product fields go to the product, pricing and stock to its representative variant.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param input body updateProductReq true "Fields to change"
// @Success 200 {object} domain.ProductView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	var req updateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	upd, err := req.toUpdate()
	if err != nil {
		s.badRequest(c, err)
		return
	}
	v, err := s.svc.Products.Update(c, currentUser(c), c.Param("id"), upd)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Delete product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.svc.Products.Delete(c, currentUser(c), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// Review handlers

// @Summary List product reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} domain.ReviewView
// @Router /products/{id}/reviews [get]
func (s *Server) listReviews(c *gin.Context) {
	rs, err := s.svc.Reviews.List(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

type reviewReq struct {
	Rating  flexInt `json:"rating" binding:"required" swaggertype:"integer"`
	Comment string  `json:"comment" binding:"max=2000"`
}

// @Summary Review a product
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param input body reviewReq true "Rating 1-5"
// @Success 201 {object} domain.ReviewView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id}/reviews [post]
func (s *Server) createReview(c *gin.Context) {
	var req reviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	rating, err := req.Rating.small()
	if err != nil {
		s.badRequest(c, err)
		return
	}
	r, err := s.svc.Reviews.Create(c, currentUser(c), c.Param("id"), rating, req.Comment)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}
