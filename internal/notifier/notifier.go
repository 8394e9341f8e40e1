package notifier

import "context"

// Notifier delivers a scan report to the operator.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// MultiNotifier fans a message out to several notifiers. Every notifier is
// attempted; the first error is returned.
type MultiNotifier struct {
	Notifiers []Notifier
}

func (m *MultiNotifier) Send(ctx context.Context, text string) error {
	var firstErr error
	for _, n := range m.Notifiers {
		if err := n.Send(ctx, text); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
