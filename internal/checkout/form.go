// Package checkout holds the payment form validation and the one-shot
// order placement sequence.
package checkout

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/neotechlabs/storefront/internal/domain"
)

// Form is the checkout payment and billing state, exactly as typed by
// the shopper. It is transient: discarded after submission or
// navigation away.
type Form struct {
	CardNumber string `json:"cardNumber" validate:"cardnumber"`
	CardName   string `json:"cardName" validate:"required"`
	Expiry     string `json:"expiry" validate:"expiry"`
	CVV        string `json:"cvv" validate:"required,min=3"`
	Email      string `json:"email" validate:"required,looseemail"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	ZipCode    string `json:"zipCode" validate:"required"`
}

// Per-field messages shown next to the inputs.
var fieldMessages = map[string]string{
	"cardNumber": "Valid card number required",
	"cardName":   "Cardholder name required",
	"expiry":     "Format: MM/YY",
	"cvv":        "CVV required",
	"email":      "Valid email required",
	"address":    "Address required",
	"city":       "City required",
	"zipCode":    "ZIP code required",
}

var (
	looseEmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	expiryPattern     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	nonDigitPattern   = regexp.MustCompile(`[^0-9]`)
	cardRunPattern    = regexp.MustCompile(`\d{4,16}`)
)

// Validator validates checkout forms. It is stateless and safe for
// concurrent use.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds the form validator with the storefront's custom
// rules registered.
func NewValidator() *Validator {
	v := validator.New()

	// Error keys use the json field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Card number: non-empty and at least 16 digits once spaces are
	// stripped.
	v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		stripped := strings.ReplaceAll(fl.Field().String(), " ", "")
		return len(stripped) >= 16
	})

	// Expiry: exactly MM/YY.
	v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})

	// The storefront's email rule is looser than RFC parsing: anything
	// containing <non-space>+@<non-space>+.<non-space>+ passes.
	v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmailPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate checks all 8 fields. Every field is checked so all errors
// surface at once: a nil return means submission may proceed, otherwise
// the error is a *domain.ValidationError carrying a message per
// violated field.
func (v *Validator) Validate(f Form) error {
	const op = "checkout.Validator.Validate"

	err := v.validate.Struct(f)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failure; should not happen for a plain string
		// form, but never let it pass validation.
		fields["form"] = "Invalid form"
		return &domain.ValidationError{Fields: fields, Op: op}
	}

	for _, fe := range validationErrs {
		field := fe.Field()
		if _, seen := fields[field]; seen {
			continue
		}
		fields[field] = fieldMessages[field]
	}

	return &domain.ValidationError{Fields: fields, Op: op}
}

// FormatCardNumber groups the card number's digits into blocks of 4
// separated by spaces, for display only. Non-digits are stripped before
// grouping; if no 4-16 digit run remains, the raw value is returned
// unchanged rather than corrupting a partially typed number.
func FormatCardNumber(value string) string {
	stripped := nonDigitPattern.ReplaceAllString(value, "")

	run := cardRunPattern.FindString(stripped)
	if run == "" {
		return value
	}

	parts := make([]string, 0, (len(run)+3)/4)
	for i := 0; i < len(run); i += 4 {
		end := min(i+4, len(run))
		parts = append(parts, run[i:end])
	}

	return strings.Join(parts, " ")
}
