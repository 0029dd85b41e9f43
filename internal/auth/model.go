package auth

import (
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/foodkart-vendor/internal/apperror"
)

var validate = validator.New()

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return apperror.FromValidation(validate.Struct(r))
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r RegisterRequest) Validate() error {
	return apperror.FromValidation(validate.Struct(r))
}

// LoginResponse is issued by POST /vendor/login; ID is the vendor id.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	ID      string `json:"id"`
}
