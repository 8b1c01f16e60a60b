package validation

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jeffleon2/ebanking/internal/httperr"
)

// Currencies lists the ISO codes accounts may be opened in.
var Currencies = []string{"EUR", "USD", "MAD", "GBP", "CHF", "CAD", "JPY"}

var supportedCurrencies = func() map[string]bool {
	m := make(map[string]bool, len(Currencies))
	for _, c := range Currencies {
		m[c] = true
	}
	return m
}()

var (
	validate *validator.Validate
	once     sync.Once
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		register(validate)
	})
	return validate
}

// RegisterGin adds the custom tags to gin's binding engine.
func RegisterGin() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}

func register(v *validator.Validate) {
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return IsCurrency(fl.Field().String())
	})
	_ = v.RegisterValidation("iban", func(fl validator.FieldLevel) bool {
		return IsIBAN(fl.Field().String())
	})
}

// Struct validates s and wraps failures in httperr.ErrValidation.
func Struct(s interface{}) error {
	if err := instance().Struct(s); err != nil {
		return fmt.Errorf("%w: %s", httperr.ErrValidation, describe(err))
	}
	return nil
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}

func IsCurrency(code string) bool {
	return supportedCurrencies[strings.ToUpper(code)]
}

// IsIBAN checks length, country prefix and the ISO 13616 mod-97 checksum.
func IsIBAN(iban string) bool {
	s := strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
	if len(s) < 15 || len(s) > 34 {
		return false
	}
	if s[0] < 'A' || s[0] > 'Z' || s[1] < 'A' || s[1] > 'Z' {
		return false
	}

	rearranged := s[4:] + s[:4]
	var digits strings.Builder
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			fmt.Fprintf(&digits, "%d", r-'A'+10)
		default:
			return false
		}
	}

	n, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return false
	}
	return new(big.Int).Mod(n, big.NewInt(97)).Int64() == 1
}

// NormalizeIBAN strips spaces and upper-cases.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(iban), " ", ""))
}
