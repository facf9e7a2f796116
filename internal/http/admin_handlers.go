package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aura/internal/domain"
)

// Admin handlers. Role checks live in the services.

// @Summary Platform counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.AdminStats
// @Failure 403 {object} map[string]string
// @Router /admin/stats [get]
func (s *Server) adminStats(c *gin.Context) {
	st, err := s.svc.Reports.AdminStats(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary Monthly revenue, last six months
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.RevenuePoint
// @Failure 403 {object} map[string]string
// @Router /admin/analytics/revenue [get]
func (s *Server) revenueChart(c *gin.Context) {
	pts, err := s.svc.Reports.RevenueChart(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pts)
}

// @Summary Products per category
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.CategorySlice
// @Failure 403 {object} map[string]string
// @Router /admin/analytics/categories [get]
func (s *Server) categoryChart(c *gin.Context) {
	slices, err := s.svc.Reports.CategoryChart(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, slices)
}

// @Summary Seller profiles awaiting review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.SellerProfile
// @Failure 403 {object} map[string]string
// @Router /admin/sellers/pending [get]
func (s *Server) pendingSellers(c *gin.Context) {
	ps, err := s.svc.Sellers.Pending(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary Approve seller
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seller profile ID"
// @Success 200 {object} domain.SellerProfile
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/sellers/{id}/approve [post]
func (s *Server) approveSeller(c *gin.Context) {
	s.decideSeller(c, domain.SellerVerified)
}

// @Summary Reject seller
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seller profile ID"
// @Success 200 {object} domain.SellerProfile
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/sellers/{id}/reject [post]
func (s *Server) rejectSeller(c *gin.Context) {
	s.decideSeller(c, domain.SellerRejected)
}

func (s *Server) decideSeller(c *gin.Context, status domain.SellerStatus) {
	p, err := s.svc.Sellers.Decide(c, currentUser(c), c.Param("id"), status)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary All orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Order
// @Failure 403 {object} map[string]string
// @Router /admin/orders [get]
func (s *Server) adminOrders(c *gin.Context) {
	orders, err := s.svc.Orders.ListAll(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary All users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.User
// @Failure 403 {object} map[string]string
// @Router /admin/users [get]
func (s *Server) adminUsers(c *gin.Context) {
	users, err := s.svc.Auth.Users(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary All products
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ProductView
// @Failure 403 {object} map[string]string
// @Router /admin/products [get]
func (s *Server) adminProducts(c *gin.Context) {
	views, err := s.svc.Products.ListAll(c, currentUser(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
