//go:build js || wasm

package console

import (
	"log/slog"
	"strings"
	"syscall/js"
)

// browserWriter forwards each formatted record to the page's console.
type browserWriter struct{}

func (browserWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	method := "log"
	switch {
	case strings.Contains(line, "level=ERROR"):
		method = "error"
	case strings.Contains(line, "level=WARN"):
		method = "warn"
	}
	js.Global().Get("console").Call(method, line)
	return len(p), nil
}

// InitBrowser sends L to the browser console.
func InitBrowser(level slog.Level) {
	Init(Options{Level: level, Format: "text", Writer: browserWriter{}})
}
