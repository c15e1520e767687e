// Package cli runs the interactive menu over a country store.
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/countryq/pkg/country"
)

// Prompter reads user lines on a background goroutine so a read can be
// interrupted by a signal without closing the input.
type Prompter struct {
	lines      chan string
	interrupts <-chan os.Signal
	err        error
}

// NewPrompter starts reading r. interrupts may be nil when reads cannot be cancelled.
func NewPrompter(r io.Reader, interrupts <-chan os.Signal) *Prompter {
	p := &Prompter{
		lines:      make(chan string),
		interrupts: interrupts,
	}
	go p.scan(r)
	return p
}

func (p *Prompter) scan(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.lines <- strings.TrimRight(scanner.Text(), "\r")
	}
	p.err = scanner.Err()
	close(p.lines)
}

// Read blocks for the next line. An interrupt yields a cancelled Input.
// io.EOF is returned once the input is exhausted.
func (p *Prompter) Read() (country.Input, error) {
	select {
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return country.Input{}, p.err
			}
			return country.Input{}, io.EOF
		}
		return country.Text(line), nil
	case <-p.interrupts:
		return country.Interrupted(), nil
	}
}
