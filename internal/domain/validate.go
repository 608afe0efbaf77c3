package domain

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the domain rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		if err := validate.RegisterValidation("nickname", validNickname); err != nil {
			panic("registering nickname validation: " + err.Error())
		}
	})
	return validate
}

const nickSpecials = "[]\\`_^{|}"

// validNickname accepts RFC 2812 style nicknames: a letter or special
// character followed by letters, digits, specials or '-'.
func validNickname(fl validator.FieldLevel) bool {
	nick := fl.Field().String()
	if nick == "" {
		return false
	}
	for i, r := range nick {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case strings.ContainsRune(nickSpecials, r):
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// ValidateProfile checks the user-supplied fields of p.
func ValidateProfile(p Profile) error {
	return Validator().Struct(p)
}
