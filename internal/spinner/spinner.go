// Package spinner draws a one-line activity indicator while a lookup runs.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const interval = 80 * time.Millisecond

// Start animates message on w until the returned stop function is called.
// Nothing is drawn unless w is a terminal, so redirected output stays clean.
func Start(w io.Writer, message string) (stop func()) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}
	return start(w, message, interval)
}

func start(w io.Writer, message string, every time.Duration) (stop func()) {
	done := make(chan struct{})
	cleared := make(chan struct{})
	var stopOnce sync.Once

	// Frame plus separating space.
	blank := "\r" + strings.Repeat(" ", runewidth.StringWidth(message)+2) + "\r"

	go func() {
		defer close(cleared)
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-done:
				fmt.Fprint(w, blank) //nolint:errcheck
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], message) //nolint:errcheck
			}
		}
	}()

	return func() {
		stopOnce.Do(func() { close(done) })
		<-cleared
	}
}
