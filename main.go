//go:build js || wasm
// +build js wasm

package main

import (
	"log/slog"

	"github.com/vcrobe/hookdom/appcomponents"
	"github.com/vcrobe/hookdom/config"
	"github.com/vcrobe/hookdom/console"
	"github.com/vcrobe/hookdom/dialogs"
	"github.com/vcrobe/hookdom/dom"
	"github.com/vcrobe/hookdom/runtime"
	"github.com/vcrobe/hookdom/storage"
)

func main() {
	cfg := config.Default()

	// 1. Route log records to the browser console
	console.InitBrowser(slog.LevelInfo)

	// 2. Find the container the page provides
	doc := dom.NewBrowser()
	container, ok := doc.ElementByID(cfg.Mount)
	if !ok {
		console.Error("mount point not found", "id", cfg.Mount)
		return
	}

	// 3. Persist to the page's localStorage so state survives a reload
	kv, err := storage.Open("local", "")
	if err != nil {
		console.Error("open storage", "err", err)
		dialogs.Alertf("Storage is unavailable: %v", err)
		return
	}

	// 4. Mount; later renders are driven by event handlers
	c := runtime.NewController(doc)
	if err := appcomponents.Mount(c, container, kv); err != nil {
		console.Error("initial render failed", "err", err)
		dialogs.Alertf("The app could not start: %v", err)
	}

	// Keep the Go program running
	select {}
}
