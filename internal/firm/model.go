package firm

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
	"github.com/xw1nchester/foodkart-vendor/internal/upload"
	"github.com/xw1nchester/foodkart-vendor/pkg/types"
)

var validate = validator.New()

type Option struct {
	Value string
	Label string
}

var Categories = []Option{
	{Value: "veg", Label: "Veg"},
	{Value: "non-veg", Label: "Non-Veg"},
}

var Regions = []Option{
	{Value: "south-indian", Label: "South-Indian"},
	{Value: "north-indian", Label: "North-Indian"},
	{Value: "chinese", Label: "Chinese"},
	{Value: "bakery", Label: "Bakery"},
}

type Firm struct {
	ID       string           `json:"_id"`
	FirmName string           `json:"firmName"`
	Area     string           `json:"area"`
	Category types.StringList `json:"category"`
	Region   types.StringList `json:"region"`
	Offer    string           `json:"offer"`
	Image    string           `json:"image"`
}

func (f Firm) CategoryLabel() string {
	return strings.Join(f.Category, " & ")
}

func (f Firm) RegionLabel() string {
	return strings.Join(f.Region, ", ")
}

// CreateRequest is the typed body of POST /firm/add-firm.
type CreateRequest struct {
	FirmName string       `validate:"required"`
	Area     string       `validate:"required"`
	Offer    string       `validate:"omitempty"`
	Category []string     `validate:"min=1,dive,oneof=veg non-veg"`
	Region   []string     `validate:"min=1,dive,oneof=south-indian north-indian chinese bakery"`
	Image    *upload.File `validate:"required"`
}

func (r CreateRequest) Validate() error {
	return apperror.FromValidation(validate.Struct(r))
}

// Fields returns the text parts of the multipart body; category and region repeat once per value.
func (r CreateRequest) Fields() url.Values {
	fields := url.Values{}
	fields.Set("firmName", r.FirmName)
	fields.Set("area", r.Area)
	fields.Set("offer", r.Offer)
	for _, c := range r.Category {
		fields.Add("category", c)
	}
	for _, reg := range r.Region {
		fields.Add("region", reg)
	}
	return fields
}

func (r CreateRequest) HasCategory(value string) bool {
	return contains(r.Category, value)
}

func (r CreateRequest) HasRegion(value string) bool {
	return contains(r.Region, value)
}

type CreateResponse struct {
	Message string `json:"message"`
	FirmID  string `json:"firmId"`
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
