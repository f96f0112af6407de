package cli

import (
	"github.com/vcrobe/hookdom/config"
	"github.com/vcrobe/hookdom/console"
	"github.com/vcrobe/hookdom/dom"
	"github.com/vcrobe/hookdom/runtime"
)

// page is the example app's document and controller, not yet mounted.
type page struct {
	doc       *dom.Memory
	container *dom.MemNode
	c         *runtime.Controller
}

// newPage creates a document with the configured mount point. With a loop,
// state changes are queued on it when the config asks for the loop
// scheduler; otherwise they render inside the setter call.
func (o *RootOptions) newPage(loop *runtime.Loop) *page {
	doc := dom.NewMemory()
	opts := []runtime.Option{runtime.WithLogger(console.L)}
	if loop != nil && o.Config.Scheduler == config.SchedulerLoop {
		opts = append(opts, runtime.WithLoop(loop))
	}
	return &page{
		doc:       doc,
		container: doc.MountPoint(o.Config.Mount),
		c:         runtime.NewController(doc, opts...),
	}
}
