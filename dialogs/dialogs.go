//go:build js || wasm

// Package dialogs shows blocking browser dialogs.
package dialogs

import (
	"fmt"
	"syscall/js"
)

// Alert shows msg in a modal dialog.
func Alert(msg string) {
	js.Global().Call("alert", msg)
}

// Alertf formats like fmt.Sprintf and calls Alert.
func Alertf(format string, args ...any) {
	Alert(fmt.Sprintf(format, args...))
}
