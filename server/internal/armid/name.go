package armid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName is returned for names ARM would reject.
var ErrInvalidName = errors.New("invalid resource name")

// MaxNameLength is the longest name segment ARM accepts.
const MaxNameLength = 260

const forbiddenNameChars = `<>%&:\?/*#|`

// ValidateName applies the naming rules ARM enforces on every resource
// provider: 1 to 260 characters, none of <>%&:\?/*#| or control
// characters, and no trailing period or space.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidName, MaxNameLength)
	}
	if i := strings.IndexAny(name, forbiddenNameChars); i >= 0 {
		return fmt.Errorf("%w: name contains %q", ErrInvalidName, name[i])
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: name contains a control character", ErrInvalidName)
		}
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return fmt.Errorf("%w: name ends with a period or space", ErrInvalidName)
	}
	return nil
}
