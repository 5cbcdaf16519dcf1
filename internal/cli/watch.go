package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yildizm/TrailMap/internal/formatter"
	"github.com/yildizm/TrailMap/internal/logger"
	"github.com/yildizm/TrailMap/internal/plan"
)

var (
	watchProgress int
	watchOpen     int
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch plan-file",
		Short: "Re-render a plan whenever the file changes",
		Long: `Watch a plan file and print a fresh map every time it is saved.

Uses file system notifications, so editors that replace the file on save are
followed. Press Ctrl+C to stop watching.

Examples:
  trailmap watch plan.yaml
  trailmap watch -o markdown --progress 2 plan.json`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().IntVar(&watchProgress, "progress", 0, "current step index")
	cmd.Flags().IntVar(&watchOpen, "open", -1, "step index whose detail card is opened")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	if err := validateWatchFilePath(filename); err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}
	filename = filepath.Clean(filename)

	f, err := getFormatter(getOutputFormat(), useColor())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "%s\n", statusLine("watch", "Watching plan: "+filename))
		fmt.Fprintf(os.Stderr, "Press Ctrl+C to stop...\n\n")
	}

	out := cmd.OutOrStdout()
	p, err := plan.LoadFile(filename)
	if err != nil {
		log.WarnWithFields("initial load failed", []logger.Field{logger.Error(err)})
	} else {
		emitWatchRender(out, f, p)
	}

	return watchAndRender(ctx, filename, out, f)
}

// watchAndRender prints a map for every successful reload until ctx ends
func watchAndRender(ctx context.Context, filename string, out io.Writer, f formatter.Formatter) error {
	err := plan.Watch(ctx, filename, func(p *plan.Plan, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", statusLine("warning", fmt.Sprintf("reload failed: %v", err)))
			return
		}
		emitWatchRender(out, f, p)
	})
	if err != nil {
		return err
	}
	if isVerbose() {
		fmt.Fprintf(os.Stderr, "\nReceived interrupt signal, stopping...\n")
	}
	return nil
}

func emitWatchRender(out io.Writer, f formatter.Formatter, p *plan.Plan) {
	output, err := f.Format(renderPlan(p, watchProgress, watchOpen, 0))
	if err != nil {
		log.Error("failed to format map: %v", err)
		return
	}
	if _, err := out.Write(output); err != nil {
		log.Error("failed to write map: %v", err)
	}
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	// Check for empty path
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	// Clean the path to resolve . and .. elements
	cleanPath := filepath.Clean(path)

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	// For watch operations, ensure the file exists and is a regular file
	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
