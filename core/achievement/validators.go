package achievement

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/sujalpowar2903-sys/studenthub123/core"
)

var (
	categoryTag  = "category"
	categoryText = "{0} must be one of Workshop, Internship, Volunteering, Certification, Leadership, Competition, Research or Publication"
)

// InitValidators registers achievement validators; core.InitValidators must run first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(categoryTag, categoryValidation)
	core.RegisterCustomTranslation(validate, translator, categoryTag, categoryText)
}

// categoryValidation checks that the provided category is one of Categories
func categoryValidation(fl validator.FieldLevel) bool {
	return Category(fl.Field().String()).IsValid()
}
