package customvalidator

import (
	"net/url"
	"regexp"

	"testpark/pkg/constants"
	"testpark/internal/workflow"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers domain validation rules on the shared
// validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("kr_phone", isKoreanPhoneNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("http_url_or_empty", isHTTPURLOrEmpty); err != nil {
		return err
	}
	if err := v.RegisterValidation("order_status", isOrderStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("recipient", isRecipient); err != nil {
		return err
	}
	if err := v.RegisterValidation("designation_type", isDesignationType); err != nil {
		return err
	}
	return nil
}

var krPhoneRe = regexp.MustCompile(`^01[016789]-?\d{3,4}-?\d{4}$`)

func isKoreanPhoneNumber(fl validator.FieldLevel) bool {
	return krPhoneRe.MatchString(fl.Field().String())
}

func isHTTPURLOrEmpty(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func isOrderStatus(fl validator.FieldLevel) bool {
	return workflow.IsKnownStatus(workflow.Status(fl.Field().String()))
}

func isRecipient(fl validator.FieldLevel) bool {
	return constants.IsValidRecipient(fl.Field().String())
}

func isDesignationType(fl validator.FieldLevel) bool {
	return constants.IsValidDesignationType(fl.Field().String())
}
