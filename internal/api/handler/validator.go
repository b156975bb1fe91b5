package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures surface as a
// *domain.ValidationError so the central error handler can render the
// {"errors":[{"msg","param"}]} envelope.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]domain.FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, domain.FieldError{Msg: fieldMessage(fe), Param: fe.Field()})
			}
			return &domain.ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// jsonFieldName reports struct fields by their json name so validation
// messages match the wire contract.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// displayNames overrides the wire name where the historical message used a
// friendlier label.
var displayNames = map[string]string{
	"fieldofstudy":   "Field of study",
	"from":           "From date",
	"githubusername": "Github username",
}

// fieldMessage converts a single ValidationError into the message the API
// has always returned for that field and rule.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return displayName(field) + " is required"
	case "email":
		return "Please include a valid email address"
	case "min":
		if field == "password" {
			return fmt.Sprintf("Please enter a password with %s or more characters", fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", displayName(field), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", displayName(field), fe.Tag())
	}
}

func displayName(field string) string {
	if name, ok := displayNames[field]; ok {
		return name
	}
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
