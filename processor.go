package identicon

import (
	"fmt"
	"io"

	"github.com/esimov/identicon/utils"
)

// Processor options
type Processor struct {
	Spinner *utils.Spinner
}

// Process generates the avatar image for the input string and encodes it
// into an io.Writer interface. We are using the io package, since we can
// provide different output types, as long as they implement the io.Writer
// interface.
func (p *Processor) Process(input string, w io.Writer) error {
	img := Generate(input)

	if err := encodeImg(w, img); err != nil {
		return fmt.Errorf("unable to encode the generated image: %w", err)
	}
	return nil
}
