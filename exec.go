package identicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/identicon/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// validExtensions holds the supported output file formats.
var validExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// Ops wraps the command line options of a generation run. Name holds a
// single input string, Src the path of a name source file with one input
// per line. Src takes precedence when both are provided.
type Ops struct {
	Name, Src, Dst, PipeName string
	Workers                  int

	// pending tracks the output files still being written, so an
	// interrupt removes partially written images only.
	mu      sync.Mutex
	pending map[string]struct{}
}

// result holds the relevant information about the generation process and the created image.
type result struct {
	path string
	err  error
}

// Execute executes the avatar generation process. Depending on the provided
// options it either generates a single avatar or consumes a name source file
// and generates the avatars concurrently.
func (p *Processor) Execute(op *Ops) {
	var err error
	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("◆ IDENTICON", utils.StatusMessage),
		utils.DecorateText("⇢ generating the avatar image...", utils.DefaultMessage),
	)
	p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80, true)

	// Capture CTRL-C signal, restore back the cursor visibility and remove
	// the output files which are still being written. Completed files are
	// left in place.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		p.Spinner.RestoreCursor()
		op.discardPending()
		os.Exit(1)
	}()

	now := time.Now()

	switch {
	case op.Src != "":
		var wg sync.WaitGroup
		// Read destination directory, creating it on the first run.
		if _, err := os.Stat(op.Dst); err != nil {
			if err = os.Mkdir(op.Dst, 0755); err != nil {
				log.Fatalf(
					utils.DecorateText("Unable to create the destination directory: %v\n", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
		}

		// Clamp the number of concurrently running workers between a
		// single worker and maxWorkers.
		op.Workers = utils.Max(1, utils.Min(op.Workers, maxWorkers))

		// Generate the avatars for the names read from the source file concurrently.
		ch := make(chan result)
		done := make(chan interface{})
		defer close(done)

		names, errc := op.readNames(done)

		wg.Add(op.Workers)
		for i := 0; i < op.Workers; i++ {
			go func() {
				defer wg.Done()
				op.consumer(p, op.Dst, ch, done, names)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		// Consume the channel values.
		for res := range ch {
			op.printOpStatus(res.path, res.err)
		}

		if scanErr := <-errc; scanErr != nil {
			p.Spinner.RestoreCursor()
			log.Fatalf(
				utils.DecorateText("\nError reading the name source: %s", utils.ErrorMessage),
				utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", scanErr.Error()), utils.DefaultMessage),
			)
		}

	default:
		dst, dstErr := op.resolveDst(op.Name)
		if dstErr != nil {
			log.Fatal(utils.DecorateText(dstErr.Error(), utils.ErrorMessage))
		}

		err = op.process(p, op.Name, dst)
		op.printOpStatus(dst, err)
	}
	if err == nil {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
}

// readNames starts a new goroutine to scan the name source file line by line
// and sends each input string to a new channel. Surrounding whitespace is
// trimmed off every line and blank lines are skipped. It finishes in case
// the done channel is getting closed.
func (op *Ops) readNames(done <-chan interface{}) (<-chan string, <-chan error) {
	nameChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the names channel after the scan returns.
		defer close(nameChan)

		var src io.Reader
		// Check if the source is a pipe name or a regular file.
		if op.Src == op.PipeName {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				errChan <- errors.New("`-` should be used with a pipe for stdin")
				return
			}
			src = os.Stdin
		} else {
			f, err := os.Open(op.Src)
			if err != nil {
				errChan <- fmt.Errorf("unable to open the name source file: %v", err)
				return
			}
			defer f.Close()
			src = f
		}

		scanner := bufio.NewScanner(src)
		for scanner.Scan() {
			name := strings.TrimSpace(scanner.Text())
			if name == "" {
				continue
			}
			select {
			case <-done:
				errChan <- errors.New("name scan cancelled")
				return
			case nameChan <- name:
			}
		}
		errChan <- scanner.Err()
	}()
	return nameChan, errChan
}

// consumer reads the input strings from the names channel and calls the
// generation processor against each of them.
func (op *Ops) consumer(
	p *Processor,
	dest string,
	res chan<- result,
	done <-chan interface{},
	names <-chan string,
) {
	for name := range names {
		dst := filepath.Join(dest, Filename(name))
		err := op.process(p, name, dst)

		select {
		case <-done:
			return
		case res <- result{
			path: dst,
			err:  err,
		}:
		}
	}
}

// process calls the avatar generator over the input string and returns the error in case exists.
func (op *Ops) process(p *Processor, name, out string) error {
	runningMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("◆ IDENTICON", utils.StatusMessage),
		utils.DecorateText("⇢ generating the avatar image...", utils.DefaultMessage),
	)
	successMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("◆ IDENTICON", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the avatar image has been generated successfully ✔", utils.SuccessMessage),
	)
	errorMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("◆ IDENTICON", utils.StatusMessage),
		utils.DecorateText("generating the avatar image failed...", utils.DefaultMessage),
		utils.DecorateText("✘", utils.ErrorMessage),
	)

	// Every call runs its own progress indicator, batch workers share no
	// mutable spinner state.
	spinner := utils.NewSpinner(runningMsg, time.Millisecond*80, true)
	spinner.Start()

	dst, err := op.dstToWriter(out)
	if err != nil {
		spinner.StopMsg = errorMsg
		spinner.Stop()
		return err
	}

	if img, ok := dst.(*os.File); ok && img != os.Stdout {
		op.track(img.Name())
		defer op.untrack(img.Name())
	}

	defer func() {
		if img, ok := dst.(*os.File); ok && img != os.Stdout {
			if err := img.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	err = p.Process(name, dst)
	if err != nil {
		// remove the generated image file in case of an error
		if img, ok := dst.(*os.File); ok && img != os.Stdout {
			os.Remove(img.Name())
		}

		spinner.StopMsg = errorMsg
		// Stop the progress indicator.
		spinner.Stop()

		return err
	}
	spinner.StopMsg = successMsg
	// Stop the progress indicator.
	spinner.Stop()

	return nil
}

// track records an output file as being written.
func (op *Ops) track(path string) {
	op.mu.Lock()
	if op.pending == nil {
		op.pending = make(map[string]struct{})
	}
	op.pending[path] = struct{}{}
	op.mu.Unlock()
}

// untrack drops a finished output file from the in-flight set.
func (op *Ops) untrack(path string) {
	op.mu.Lock()
	delete(op.pending, path)
	op.mu.Unlock()
}

// discardPending removes the output files still being written.
func (op *Ops) discardPending() {
	op.mu.Lock()
	defer op.mu.Unlock()

	for path := range op.pending {
		os.Remove(path)
	}
	op.pending = nil
}

// dstToWriter converts the destination path to a writable file.
func (op *Ops) dstToWriter(out string) (io.Writer, error) {
	var (
		dst io.Writer
		err error
	)
	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("unable to create the destination file: %v", err)
		}
	}
	return dst, nil
}

// resolveDst derives the destination file path of a single generation run.
// A directory destination gets the derived file name joined to it, otherwise
// the destination is used as provided once its extension checks out.
func (op *Ops) resolveDst(name string) (string, error) {
	if op.Dst == op.PipeName {
		return op.Dst, nil
	}

	if fi, err := os.Stat(op.Dst); err == nil && fi.Mode().IsDir() {
		return filepath.Join(op.Dst, Filename(name)), nil
	}

	ext := filepath.Ext(op.Dst)
	if !isValidExtension(ext, validExtensions) {
		return "", fmt.Errorf("%v file type not supported", ext)
	}
	return op.Dst, nil
}

// Filename derives a safe output file name from the input string. Path
// separators and NUL bytes are replaced so an arbitrary input cannot escape
// the destination directory.
func Filename(input string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', rune(0):
			return '_'
		}
		return r
	}, input)

	return safe + ".png"
}

// printOpStatus displays the relevant information about the avatar generation process.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the avatar image: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	} else {
		if fname != op.PipeName {
			fmt.Fprintf(os.Stderr, "\nThe avatar image has been saved as: %s %s\n",
				utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
				utils.DefaultColor,
			)
		}
	}
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}
