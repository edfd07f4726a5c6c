package controllers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/cppla/community/models"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags used by request structs.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("category_status", func(fl validator.FieldLevel) bool {
			return models.CategoryStatus(fl.Field().String()).Valid()
		})
	})
}
