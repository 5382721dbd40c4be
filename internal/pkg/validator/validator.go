package validator

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/horus-listing/internal/domain"
	"github.com/horus-listing/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)

	// required пропускает строку из пробелов, notblank нет
	_ = validate.RegisterValidation("notblank", validators.NotBlank)

	_ = validate.RegisterValidation("property_type", func(fl validator.FieldLevel) bool {
		return domain.PropertyType(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("listing_type", func(fl validator.FieldLevel) bool {
		return domain.ListingType(fl.Field().String()).Valid()
	})
}

// Validate - валидация структуры. Ошибки правил возвращаются как
// ErrValidation с описанием полей в details.fields
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": err.Error()})
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = describe(fe)
	}
	return errors.ErrValidation.WithDetails(map[string]interface{}{"fields": fields})
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	case "property_type":
		return "unknown property type"
	case "listing_type":
		return "unknown listing type"
	case "url":
		return "must be a valid URL"
	default:
		return "failed on " + fe.Tag()
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
