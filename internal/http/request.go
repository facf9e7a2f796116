package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"aura/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var (
	slugPattern        = regexp.MustCompile(`^[a-z0-9_-]+$`)
	registerValidators = sync.OnceFunc(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
				return slugPattern.MatchString(fl.Field().String())
			})
		}
	})
)

// jsonScalar returns the raw text of a JSON number or string; ok is false for null
func jsonScalar(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(s)
		return s, s != "", nil
	}
	return string(data), true, nil
}

// amount major-unit price sent as number or string, held in minor units
type amount int64

func (a *amount) UnmarshalJSON(data []byte) error {
	s, ok, err := jsonScalar(data)
	if err != nil || !ok {
		return err
	}
	v, err := domain.MinorUnits(s)
	if err != nil {
		return err
	}
	*a = amount(v)
	return nil
}

// flexInt integer sent as number or string; fractions are truncated
type flexInt int64

func (n *flexInt) UnmarshalJSON(data []byte) error {
	s, ok, err := jsonScalar(data)
	if err != nil || !ok {
		return err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parse integer %q: %w", s, err)
	}
	d = d.Truncate(0)
	if !d.BigInt().IsInt64() {
		return fmt.Errorf("integer %q out of range", s)
	}
	*n = flexInt(d.IntPart())
	return nil
}

// small narrows to int for counts such as quantity, discount and rating
func (n flexInt) small() (int, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("integer %d out of range", int64(n))
	}
	return int(n), nil
}

// flexBool true for the JSON literal true or the string "true"
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s, ok, err := jsonScalar(data)
	if err != nil {
		return err
	}
	*b = flexBool(ok && s == "true")
	return nil
}

func parseProductFilter(c *gin.Context) (domain.ProductFilter, error) {
	f := domain.ProductFilter{
		Search:       strings.TrimSpace(c.Query("search")),
		CategoryID:   c.Query("categoryId"),
		SellerID:     c.Query("sellerId"),
		Status:       domain.ProductStatus(c.Query("status")),
		Sort:         domain.SortOrder(c.Query("sort")),
		HasDiscount:  c.Query("hasDiscount") == "true",
		FreeShipping: c.Query("freeShipping") == "true",
		Limit:        defaultPageSize,
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, fmt.Errorf("unknown status %q", f.Status)
	}
	if !f.Sort.Valid() {
		return f, fmt.Errorf("unknown sort %q", f.Sort)
	}
	if brand := c.Query("brand"); brand != "Todas" && brand != "all" {
		f.Brand = brand
	}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, fmt.Errorf("invalid limit %q", v)
		}
		f.Limit = min(n, maxPageSize)
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, fmt.Errorf("invalid offset %q", v)
		}
		f.Offset = n
	}

	var err error
	if f.MinPrice, err = priceParam(c.Query("minPrice")); err != nil {
		return f, err
	}
	if f.MaxPrice, err = priceParam(c.Query("maxPrice")); err != nil {
		return f, err
	}
	if r := c.Query("priceRange"); r != "" && r != "all" {
		lo, hi, ok := strings.Cut(r, "-")
		if !ok {
			lo, ok = strings.CutSuffix(r, "+")
			if !ok {
				return f, fmt.Errorf("invalid priceRange %q", r)
			}
		}
		if f.MinPrice, err = priceParam(lo); err != nil {
			return f, err
		}
		if f.MaxPrice, err = priceParam(hi); err != nil {
			return f, err
		}
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return f, fmt.Errorf("minPrice exceeds maxPrice")
	}
	return f, nil
}

func priceParam(v string) (*int64, error) {
	if v == "" {
		return nil, nil
	}
	cents, err := domain.MinorUnits(v)
	if err != nil {
		return nil, err
	}
	return &cents, nil
}
