package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/dharmasatrya/flightfinder/internal/models"
)

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: models.NewValidator()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
