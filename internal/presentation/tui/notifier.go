package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/ports"
	"github.com/muesli/termenv"
)

var levelStyle = map[domain.NotificationLevel]struct{ icon, color string }{
	domain.NotifySuccess: {"✔", "#34d399"},
	domain.NotifyInfo:    {"ℹ", "#60a5fa"},
	domain.NotifyWarn:    {"!", "#fbbf24"},
	domain.NotifyError:   {"✖", "#f87171"},
}

// Notifier prints notifications to w, one per line, colored when w is a terminal.
func Notifier(w io.Writer) ports.Notifier {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	return ports.NotifierFunc(func(_ context.Context, n domain.Notification) {
		style, ok := levelStyle[n.Level]
		if !ok {
			style = levelStyle[domain.NotifyInfo]
		}
		line := out.String(style.icon + " " + n.Message).Foreground(p.Color(style.color))
		if n.Err != nil {
			fmt.Fprintf(w, "%s (%v)\n", line, n.Err)
			return
		}
		fmt.Fprintln(w, line)
	})
}
