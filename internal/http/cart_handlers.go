package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.CartLine
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	lines, err := s.svc.Cart.Lines(c, currentUser(c).ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

type cartItemReq struct {
	VariantID string   `json:"variantId" binding:"required"`
	Quantity  *flexInt `json:"quantity" swaggertype:"integer"`
}

func (r cartItemReq) quantity() (int, error) {
	if r.Quantity == nil {
		return 1, nil
	}
	return r.Quantity.small()
}

// @Summary Add to cart
// @Description Increments the quantity when the variant is already in the cart.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body cartItemReq true "Variant and quantity (default 1)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /cart/add [post]
func (s *Server) addToCart(c *gin.Context) {
	var req cartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	qty, err := req.quantity()
	if err != nil {
		s.badRequest(c, err)
		return
	}
	if err := s.svc.Cart.Add(c, currentUser(c).ID, req.VariantID, qty); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to cart"})
}

// @Summary Set cart quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body cartItemReq true "Variant and quantity"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /cart/update [put]
func (s *Server) updateCartItem(c *gin.Context) {
	var req cartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	qty, err := req.quantity()
	if err != nil {
		s.badRequest(c, err)
		return
	}
	if err := s.svc.Cart.Update(c, currentUser(c).ID, req.VariantID, qty); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// @Summary Remove from cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param variantId path string true "Variant ID"
// @Success 200 {object} map[string]string
// @Router /cart/remove/{variantId} [delete]
func (s *Server) removeFromCart(c *gin.Context) {
	if err := s.svc.Cart.Remove(c, currentUser(c).ID, c.Param("variantId")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from cart"})
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /cart/clear [delete]
func (s *Server) clearCart(c *gin.Context) {
	if err := s.svc.Cart.Clear(c, currentUser(c).ID); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
