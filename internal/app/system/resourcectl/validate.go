package resourcectl

import (
	"github.com/dwellhub/dwellhub/internal/app/system/inputval"
)

// InputValidator builds a controller validate hook from the entity's
// `validate` struct tags. The first failing rule becomes the
// ValidationError message shown above the form.
func InputValidator[E Entity]() func(E) error {
	return func(e E) error {
		if res := inputval.Validate(e); res.HasErrors() {
			return &ValidationError{Message: res.First()}
		}
		return nil
	}
}
