// Package prompt asks the user for confirmation on the terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/poacpm/poac/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/cases"
)

// answer is the outcome of reading one line.
type answer struct {
	line string
	err  error
}

// Confirmer implements ports.Confirmer over a line-oriented reader.
type Confirmer struct {
	out    io.Writer
	reader *bufio.Reader
	fold   cases.Caser

	mu sync.Mutex
	// pending holds a read that outlived a canceled Confirm, so the next call
	// consumes it instead of racing a second reader.
	pending chan answer
}

// NewConfirmer creates a Confirmer that prints to out and reads answers from in.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{
		out:    out,
		reader: bufio.NewReader(in),
		fold:   cases.Fold(),
	}
}

// Confirm prints the question followed by "[Y/n]" and waits for one line.
// Only "y" and "yes", in any case, count as approval. End of input counts as no.
func (c *Confirmer) Confirm(ctx context.Context, question string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.out, "%s [Y/n] ", question); err != nil {
		return false, zerr.Wrap(err, domain.ErrConfirmationFailed.Error())
	}

	if c.pending == nil {
		c.pending = make(chan answer, 1)
		go func(ch chan<- answer) {
			line, err := c.reader.ReadString('\n')
			ch <- answer{line: line, err: err}
		}(c.pending)
	}

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-c.pending:
		c.pending = nil
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return false, zerr.Wrap(a.err, domain.ErrConfirmationFailed.Error())
		}
		return c.affirmative(a.line), nil
	}
}

func (c *Confirmer) affirmative(line string) bool {
	switch c.fold.String(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
