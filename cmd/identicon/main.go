package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/identicon"
	"github.com/esimov/identicon/utils"
)

const HelpBanner = `
┬┌┬┐┌─┐┌┐┌┌┬┐┬┌─┐┌─┐┌┐┌
│ ││├┤ │││ │ ││  │ ││││
┴└┴┘└─┘┘└┘ ┴ ┴└─┘└─┘┘└┘

Deterministic avatar image generator.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	name    = flag.String("name", "", "Input string the avatar image is derived from")
	source  = flag.String("in", "", "Name source file with one input string per line (use - for stdin)")
	dest    = flag.String("out", "", "Output directory or file (use - for stdout)")
	workers = flag.Int("conc", runtime.NumCPU(), "Number of avatars to generate concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *name == "" && *source == "" {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide an input string or a name source file!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	if *dest == "" {
		*dest = identicon.LoadConfigFromEnv().OutDir
	}

	p := &identicon.Processor{}
	p.Execute(&identicon.Ops{
		Name:     *name,
		Src:      *source,
		Dst:      *dest,
		PipeName: pipeName,
		Workers:  *workers,
	})
}
