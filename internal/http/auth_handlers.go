package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aura/internal/auth"
	"aura/internal/domain"
	"aura/internal/service"
)

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	// PasswordHash older clients send the plain password under this name
	PasswordHash string      `json:"passwordHash"`
	Name         string      `json:"name" binding:"required,max=120"`
	Role         domain.Role `json:"role" binding:"omitempty,oneof=buyer seller"`
}

// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerReq true "Account"
// @Success 201 {object} service.Session
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/register [post]
func (s *Server) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	password := req.Password
	if password == "" {
		password = req.PasswordHash
	}
	sess, err := s.svc.Auth.Register(c, service.RegisterInput{
		Email:    req.Email,
		Password: password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 200 {object} service.Session
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/login [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	sess, err := s.svc.Auth.Login(c, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.log.InfoContext(c, "login rejected", "client_ip", c.ClientIP())
		}
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]domain.User
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}
