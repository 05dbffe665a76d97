// Command vtdemo pipes a real shell through the terminal kernel and
// renders each frame with lipgloss, demonstrating the Snapshot/Diff API
// the way a real terminal renderer would consume it.
package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/creack/pty"

	"github.com/danielgatis/vtkernel"
)

func main() {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: 80, Rows: 24})
	if err != nil {
		log.Fatalf("vtdemo: start pty: %v", err)
	}
	defer ptmx.Close()

	term := vtkernel.New(
		vtkernel.WithSize(24, 80),
		vtkernel.WithResponse(ptmx),
		vtkernel.WithTitle(&titlePrinter{}),
	)

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)
	go func() {
		for range sigwinch {
			// A real host would query the controlling tty's size here;
			// vtdemo keeps a fixed 24x80 viewport for simplicity.
		}
	}()

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				term.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()

	prev := term.Snapshot(vtkernel.SnapshotDetailStyled)
	renderFull(prev)

	ticker := time.NewTicker(66 * time.Millisecond)
	defer ticker.Stop()

	done := make(chan struct{})
	go func() {
		cmd.Wait()
		close(done)
	}()

	for {
		select {
		case <-ticker.C:
			diff := term.Diff(vtkernel.SnapshotDetailStyled)
			if len(diff.ChangedRows) == 0 && !diff.CursorMoved {
				continue
			}
			next := vtkernel.ApplyDiff(prev, diff)
			renderFull(next)
			prev = next
		case <-done:
			return
		}
	}
}

// renderFull redraws the whole viewport. A terminal UI would instead
// redraw only diff.ChangedRows in place; vtdemo keeps it simple by
// clearing the screen each frame.
func renderFull(snap *vtkernel.Snapshot) {
	fmt.Print("\x1b[H\x1b[2J")

	var b strings.Builder
	for _, line := range snap.Lines {
		for _, seg := range line.Segments {
			style := lipgloss.NewStyle()
			if seg.Fg != "" {
				style = style.Foreground(lipgloss.Color(seg.Fg))
			}
			if seg.Bg != "" {
				style = style.Background(lipgloss.Color(seg.Bg))
			}
			if seg.Attributes.Bold {
				style = style.Bold(true)
			}
			if seg.Attributes.Underline {
				style = style.Underline(true)
			}
			if seg.Attributes.Reverse {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(seg.Text))
		}
		b.WriteByte('\n')
	}

	fmt.Print(b.String())
}

type titlePrinter struct{}

func (titlePrinter) SetTitle(title string) {
	fmt.Fprintf(os.Stderr, "\x1b]0;%s\x07", title)
}
