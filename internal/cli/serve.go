package cli

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yildizm/TrailMap/internal/logger"
	"github.com/yildizm/TrailMap/internal/plan"
	"github.com/yildizm/TrailMap/internal/server"
)

var (
	serveAddr     string
	serveProgress int
	serveWatch    bool
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [plan-file]",
		Short: "Serve the progress map to a browser",
		Long: `Start an HTTP viewer for the progress map.

Endpoints:
  GET /          HTML page with the map and a live websocket session
  GET /map.svg   SVG rendering (?progress=N&open=N)
  GET /drawlist  JSON draw list (?progress=N&open=N)
  GET /health    health check
  GET /ws        websocket; send {"action":"activate","index":2}

With --watch, saving the plan file pushes the new map to every open page.

Examples:
  trailmap serve plan.json
  trailmap serve --addr :9000 --watch plan.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	cmd.Flags().IntVar(&serveProgress, "progress", 0, "initial step index of the climber")
	cmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the plan when the file changes")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	var p *plan.Plan
	source := ""
	if len(args) == 1 {
		if err := validateFilePath(args[0]); err != nil {
			return fmt.Errorf("invalid file path: %w", err)
		}
		source = filepath.Clean(args[0])
		loaded, err := plan.LoadFile(source)
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}
		p = loaded
	}
	if serveWatch && source == "" {
		return fmt.Errorf("--watch needs a plan file")
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Address
	}

	srv := server.New(p, server.Options{
		Address:      addr,
		WriteTimeout: cfg.Server.WriteTimeout,
		View:         cfg.ViewConfig(),
		Progress:     serveProgress,
		Logger:       logger.NewWithCallback("server", isVerbose),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if serveWatch {
		go func() {
			if err := srv.WatchPlan(ctx, source); err != nil {
				log.Warn("plan watch stopped: %v", err)
			}
		}()
	}

	fmt.Fprintln(cmd.ErrOrStderr(), statusLine("summit", fmt.Sprintf("TrailMap viewer on http://%s", displayAddr(addr))))
	return srv.Run(ctx)
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
