package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aura/internal/domain"
	"aura/internal/service"
)

// @Summary Get my seller profile
// @Tags seller
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.SellerProfile
// @Failure 404 {object} map[string]string
// @Router /seller/profile [get]
func (s *Server) getSellerProfile(c *gin.Context) {
	p, err := s.svc.Sellers.Profile(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type sellerProfileReq struct {
	DisplayName string `json:"displayName" binding:"required,max=120"`
	Description string `json:"description" binding:"max=2000"`
	Location    string `json:"location" binding:"max=120"`
}

// @Summary Become a seller
// @Description Creates a pending profile and promotes a buyer to seller.
// @Tags seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body sellerProfileReq true "Profile"
// @Success 201 {object} domain.SellerProfile
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /seller/profile [post]
func (s *Server) createSellerProfile(c *gin.Context) {
	var req sellerProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	p, _, err := s.svc.Sellers.CreateProfile(c, currentUser(c), service.ProfileInput{
		DisplayName: req.DisplayName,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

type updateSellerProfileReq struct {
	DisplayName *string `json:"displayName" binding:"omitempty,max=120"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Location    *string `json:"location" binding:"omitempty,max=120"`
}

// @Summary Update my seller profile
// @Tags seller
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body updateSellerProfileReq true "Fields to change"
// @Success 200 {object} domain.SellerProfile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seller/profile [put]
func (s *Server) updateSellerProfile(c *gin.Context) {
	var req updateSellerProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	p, err := s.svc.Sellers.UpdateProfile(c, currentUser(c), domain.SellerProfilePatch{
		DisplayName: req.DisplayName,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Seller dashboard counters
// @Tags seller
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.SellerStats
// @Failure 404 {object} map[string]string
// @Router /seller/stats [get]
func (s *Server) sellerStats(c *gin.Context) {
	st, err := s.svc.Reports.SellerStats(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary My products
// @Description Every status. Admins get all products.
// @Tags seller
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ProductView
// @Router /seller/products [get]
func (s *Server) sellerProducts(c *gin.Context) {
	views, err := s.svc.Products.ListForSeller(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Orders containing my items
// @Tags seller
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Order
// @Failure 404 {object} map[string]string
// @Router /seller/orders [get]
func (s *Server) sellerOrders(c *gin.Context) {
	orders, err := s.svc.Orders.ListForSeller(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
