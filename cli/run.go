package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcrobe/hookdom/appcomponents"
	"github.com/vcrobe/hookdom/console"
	"github.com/vcrobe/hookdom/events"
	"github.com/vcrobe/hookdom/runtime"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Each bool
}

// Snapshot is the document after one render.
type Snapshot struct {
	Seq   uint64 `json:"seq"`
	Event string `json:"event,omitempty"` // empty for the mount
	HTML  string `json:"html"`
}

// RunResult is the output of the run command.
type RunResult struct {
	Events    int        `json:"events"`
	Snapshots []Snapshot `json:"snapshots"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [events...]",
		Short: "Mount the app and replay scripted events",
		Long: `Mount the app, then deliver each event in order through the event loop.
An event is click:<id> or type:<id>:<value>[:<cursor>]. A value that
contains ':' needs an explicit cursor, -1 for the end: type:input:12:30:-1.

Every event runs to completion, including the renders it causes, before
the next one is delivered. The document is printed at the end, or after
every render with --each.

Example:
  hookdom run click:increase click:increase click:decrease
  hookdom run type:input:axbc:2 --each --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Each, "each", false, "print the document after every render")

	return cmd
}

func runEvents(opts *RunOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	evs := make([]events.Event, 0, len(args))
	for _, arg := range args {
		ev, err := events.Parse(arg)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid event", err)
		}
		evs = append(evs, ev)
	}

	kv, err := opts.openStore()
	if err != nil {
		return err
	}
	defer closeStore(kv)

	loop := runtime.NewLoop()
	defer loop.Close()
	pg := opts.newPage(loop)

	var (
		snapshots []Snapshot
		current   string
	)
	if opts.Each {
		pg.c.Rendered.Subscribe(func(info runtime.RenderInfo) {
			if info.Err == nil {
				snapshots = append(snapshots, Snapshot{Seq: info.Seq, Event: current, HTML: pg.doc.HTML()})
			}
		})
	}

	if err := appcomponents.Mount(pg.c, pg.container, kv); err != nil {
		return f.Failure(ExitFailure, "render failed", err)
	}
	loop.Drain()

	for _, ev := range evs {
		var dispatchErr error
		loop.Post(func() {
			current = ev.String()
			dispatchErr = pg.doc.Dispatch(ev)
		})
		n := loop.Drain()
		console.Debug("event delivered", "event", ev.String(), "tasks", n)

		if dispatchErr != nil {
			return f.Failure(ExitFailure, "dispatch failed", fmt.Errorf("%s: %w", ev, dispatchErr))
		}
		if err := pg.c.Err(); err != nil {
			return f.Failure(ExitFailure, "render failed", fmt.Errorf("after %s: %w", ev, err))
		}
	}

	if !opts.Each {
		snapshots = append(snapshots, Snapshot{Seq: pg.c.Rendered.Get().Seq, Event: current, HTML: pg.doc.HTML()})
	}
	f.VerboseLog("%d event(s), %d snapshot(s)", len(evs), len(snapshots))

	text := ""
	for i, s := range snapshots {
		if i > 0 {
			text += "\n"
		}
		text += s.HTML
	}
	return f.Success(RunResult{Events: len(evs), Snapshots: snapshots}, text)
}
