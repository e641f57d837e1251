package notify

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// Notifier receives a computed wakeup instant for presentation. The now
// instant is passed explicitly so implementations never read the system
// clock themselves.
type Notifier interface {
	Notify(now, next time.Time) error
}

// WriterNotifier renders wakeup notifications as single lines of text.
type WriterNotifier struct {
	w io.Writer
}

// NewWriter returns a Notifier that writes one line per notification to w.
func NewWriter(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(now, next time.Time) error {
	_, err := fmt.Fprintf(n.w, "next wakeup at %s (%s, %.0f seconds)\n",
		next.Format(time.RFC1123),
		humanize.RelTime(next, now, "ago", "from now"),
		next.Sub(now).Seconds())
	return err
}
