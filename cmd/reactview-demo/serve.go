package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/reactview-dev/reactview/internal/config"
	"github.com/reactview-dev/reactview/pkg/live"
	"github.com/reactview-dev/reactview/pkg/observe"
	"github.com/reactview-dev/reactview/pkg/reactive"
)

// clockComponent renders a shared tick counter that a background goroutine
// advances once per second. Every connected session re-renders on each tick.
type clockComponent struct {
	ticks *reactive.Signal[int]
}

func (c *clockComponent) Render() (any, error) {
	return "<div>ticks: " + strconv.Itoa(c.ticks.Get()) + "</div>", nil
}

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger := newLogger(cfg.LogLevel)

			ticks := reactive.NewSignal(0)
			go func() {
				for range time.Tick(time.Second) {
					ticks.Update(func(n int) int { return n + 1 })
				}
			}()

			var observeOpts []observe.Option
			if cfg.StaticRendering {
				observeOpts = append(observeOpts, observe.WithStaticRendering())
			}
			if cfg.Metrics {
				observeOpts = append(observeOpts, observe.WithMetrics(observe.NewMetrics()))
			}

			handler := live.NewHandler(func() observe.Component {
				return &clockComponent{ticks: ticks}
			},
				live.WithLogger(logger),
				live.WithObserveOptions(observeOpts...),
			)

			r := chi.NewRouter()
			r.Use(chimw.Recoverer)
			r.Handle("/live", handler)
			r.Get("/", serveIndex)
			if cfg.Metrics {
				r.Handle("/metrics", promhttp.Handler())
			}

			logger.Info("listening", "addr", cfg.Addr)
			return http.ListenAndServe(cfg.Addr, r)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "path to the configuration file")
	return cmd
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<!doctype html>
<html>
<body>
<div id="view">connecting...</div>
<script>
const view = document.getElementById("view");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/live");
ws.onmessage = (msg) => { view.innerHTML = JSON.parse(msg.data).html; };
ws.onclose = () => { view.textContent = "disconnected"; };
</script>
</body>
</html>`)
}
