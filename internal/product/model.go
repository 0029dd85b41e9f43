package product

import (
	"math"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
	"github.com/xw1nchester/foodkart-vendor/internal/upload"
	"github.com/xw1nchester/foodkart-vendor/pkg/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && n > 0 && !math.IsInf(n, 1)
	})
	return v
}

const (
	CategoryVeg    = "veg"
	CategoryNonVeg = "non-veg"
)

type Product struct {
	ID          string               `json:"_id"`
	ProductName string               `json:"productName"`
	Price       types.NumberOrString `json:"price"`
	Category    types.StringList     `json:"category"`
	BestSeller  types.BoolString     `json:"bestSeller"`
	Description string               `json:"description"`
	Image       string               `json:"image"`
}

func (p Product) IsVeg() bool {
	for _, c := range p.Category {
		if c == CategoryVeg {
			return true
		}
	}
	return false
}

type ListResponse struct {
	RestaurantName string    `json:"restaurantName"`
	Products       []Product `json:"products"`
}

// CreateRequest is the typed body of POST /product/add-product/:firmId.
type CreateRequest struct {
	ProductName string       `validate:"required"`
	Price       string       `validate:"required,numeric,positive"`
	Category    string       `validate:"required,oneof=veg non-veg"`
	BestSeller  string       `validate:"required,oneof=true false"`
	Description string       `validate:"omitempty"`
	Image       *upload.File `validate:"required"`
}

// NewCreateRequest returns the form defaults: veg, not a best seller.
func NewCreateRequest() CreateRequest {
	return CreateRequest{
		Category:   CategoryVeg,
		BestSeller: "false",
	}
}

func (r CreateRequest) Validate() error {
	return apperror.FromValidation(validate.Struct(r))
}

func (r CreateRequest) Fields() url.Values {
	fields := url.Values{}
	fields.Set("productName", r.ProductName)
	fields.Set("price", r.Price)
	fields.Set("category", r.Category)
	fields.Set("bestSeller", r.BestSeller)
	fields.Set("description", r.Description)
	return fields
}
