package components

import (
	"charm.land/bubbles/v2/spinner"

	"github.com/deepdish/chicagotrail/internal/ui/theme"
)

// NewSpinner returns a themed loading spinner.
func NewSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = theme.Subtitle
	return s
}
