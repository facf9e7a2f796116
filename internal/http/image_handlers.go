package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"aura/internal/blob"
	"aura/internal/domain"
)

// @Summary Upload image
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image, at most 10 MiB"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /upload [post]
func (s *Server) uploadImage(c *gin.Context) {
	// multipart framing on top of the image itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, blob.MaxImageSize+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		s.badRequest(c, fmt.Errorf("file: %w", err))
		return
	}
	mime := fh.Header.Get("Content-Type")
	if err := blob.Validate(mime, int(fh.Size)); err != nil {
		s.fail(c, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		s.fail(c, err)
		return
	}
	img, err := s.svc.Images.Put(c, domain.Image{MimeType: mime, Data: data})
	if err != nil {
		s.fail(c, err)
		return
	}
	s.log.InfoContext(c, "image stored", "image_id", img.ID, "bytes", len(data), "user_id", currentUser(c).ID)
	c.JSON(http.StatusOK, gin.H{"url": blob.URL(img.ID)})
}

// @Summary Get image
// @Tags images
// @Produce image/png
// @Param id path string true "Image ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /images/{id} [get]
func (s *Server) getImage(c *gin.Context) {
	img, err := s.svc.Images.Get(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, img.MimeType, img.Data)
}
