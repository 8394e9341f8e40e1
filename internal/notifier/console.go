package notifier

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ConsoleNotifier writes reports to standard output. This is the primary
// output channel for one-shot runs.
type ConsoleNotifier struct {
	Out io.Writer
}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{Out: os.Stdout}
}

func (c *ConsoleNotifier) Send(_ context.Context, text string) error {
	_, err := fmt.Fprintln(c.Out, text)
	return err
}
