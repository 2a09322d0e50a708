package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/lumenjs/lumen"
	"github.com/lumenjs/lumen/devtools"
	"github.com/lumenjs/lumen/dom/fakedom"
	"github.com/lumenjs/lumen/metrics"
)

func inspectCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Start the devtools and metrics servers against a demo tree",
		Long: `inspect mounts a small self-updating demo component into an
in-memory document and serves the devtools inspector (reconciliation
events over WebSocket) and a Prometheus /metrics endpoint, so the engine
can be exercised without a browser or a host application.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":4173", "address to listen on")
	return cmd
}

func runInspect(addr string) error {
	dt := devtools.NewServer(slog.Default())
	rec := metrics.NewRecorder()

	opts := lumen.Options{}
	dt.Install(&opts)
	rec.Install(&opts)
	lumen.SetOptions(opts)

	mux := http.NewServeMux()
	mux.Handle("/", dt.Handler())
	mux.Handle("/metrics", promhttp.Handler())

	go runDemoTree()

	fmt.Printf("lumen inspect listening on %s (inspector: /, metrics: /metrics)\n", addr)
	return http.ListenAndServe(addr, mux)
}

// runDemoTree mounts a ticking counter so the inspector has something to
// show: every second it bumps a state hook, which re-enters the
// scheduler and fires the Diff/Diffed/Commit hooks devtools/metrics are
// listening on.
func runDemoTree() {
	doc := &fakedom.Document{}
	container := fakedom.NewElement("div")

	var setCount func(any)
	Demo := func(props lumen.Props) any {
		count, set := lumen.UseState(0)
		setCount = set
		return lumen.H("span", nil, count)
	}

	lumen.Render(lumen.H(Demo, nil), doc, container)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	n := 0
	for range ticker.C {
		n++
		lumen.Act(func() { setCount(n) })
	}
}
