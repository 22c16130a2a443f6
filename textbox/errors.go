package textbox

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMainFont indicates the box has no main font to take
	// metrics from.
	ErrNoMainFont = errors.New("textbox: main font not configured")

	// ErrNoSurface indicates the box's surface cannot produce an
	// image.
	ErrNoSurface = errors.New("textbox: surface cannot produce an image")
)

// ConfigMismatchError reports the first configuration field that
// differs between the box that produced an Unwritten and the box
// asked to continue it.
type ConfigMismatchError struct {
	Field string
	Want  string
	Got   string
}

func (e *ConfigMismatchError) Error() string {
	return fmt.Sprintf("textbox: configuration mismatch on %s: continuation needs %s, box has %s",
		e.Field, e.Want, e.Got)
}
