/*
Package identicon is a deterministic avatar image generator, which derives a
symmetric, uniquely colored icon from any input string, such as a username or
an email address.

The input string is hashed into a 16 byte digest. The first three bytes pick
the fill color, while the digest is chunked and mirrored into a 5x5 cell grid,
which gives every avatar its left-right symmetry. Cells holding an even value
are painted as 50x50 pixel squares over a white 250x250 canvas. The same
input always produces the same image.

The package provides a command line interface, supporting various flags for
single and batch generation. To check the supported commands type:

	$ identicon --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/identicon"
	)

	func main() {
		f, err := os.Create("blake.png")
		if err != nil {
			fmt.Printf("Error creating the output file: %s", err.Error())
			return
		}
		defer f.Close()

		p := &identicon.Processor{}
		if err := p.Process("blake", f); err != nil {
			fmt.Printf("Error generating the avatar: %s", err.Error())
		}
	}
*/
package identicon
