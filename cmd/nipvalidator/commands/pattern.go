package commands

import (
	"fmt"

	"github.com/dmitrymomot/nipvalidator/pkg/nip"
)

// RunPattern prints the pattern values are matched against.
func RunPattern(v *nip.Validator, io IOTuple) error {
	_, err := fmt.Fprintln(io.Writer, v.Pattern())
	return err
}
