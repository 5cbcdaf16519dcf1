package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yildizm/TrailMap/internal/curve"
	"github.com/yildizm/TrailMap/internal/mapview"
	"github.com/yildizm/TrailMap/internal/plan"
)

var (
	renderProgress   int
	renderOpen       int
	renderDots       int
	renderOutputFile string
)

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [plan-file]",
		Short: "Render a learning plan as a progress map",
		Long: `Render a learning plan once and print the resulting map.

If no file is specified, the plan is read from stdin. Plans may be JSON or
YAML: a bare list of steps, an object with a "steps" list, or a timeline of
milestones whose steps are flattened in order.

Examples:
  trailmap render plan.json
  trailmap render --progress 2 --open 2 plan.yaml
  trailmap render -o svg --output-file map.svg plan.json
  cat plan.json | trailmap render -o markdown
  trailmap render --dots 7 -o svg < /dev/null`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}

	cmd.Flags().IntVar(&renderProgress, "progress", 0, "current step index (out of range hides the climber)")
	cmd.Flags().IntVar(&renderOpen, "open", -1, "step index whose detail card is opened")
	cmd.Flags().IntVar(&renderDots, "dots", 0, "number of preview dots for an empty plan (default from config)")
	cmd.Flags().StringVar(&renderOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	reader, source, cleanup, err := setupInputReader(args)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	p, err := plan.Load(reader, source)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	log.Debug("loaded %d steps from %s", p.Len(), displaySource(source))

	dl := renderPlan(p, renderProgress, renderOpen, renderDots)

	f, err := getFormatter(getOutputFormat(), useColor())
	if err != nil {
		return err
	}
	output, err := f.Format(dl)
	if err != nil {
		return fmt.Errorf("failed to format map: %w", err)
	}

	return handleOutputDestination(cmd.OutOrStdout(), output, renderOutputFile)
}

// renderPlan runs one render pass and, when open names a step, a second
// pass with that step's card opened
func renderPlan(p *plan.Plan, progress, open, dots int) *mapview.DrawList {
	view := newMapView()
	in := mapview.Input{Plan: p, DotCount: dots, Progress: progress}

	dl := view.Render(in)
	if open < 0 {
		return dl
	}
	if !view.Activate(open) {
		log.Warn("step %d has no detail card, ignoring --open", open)
		return dl
	}
	return view.Render(in)
}

// newMapView builds a view from the loaded configuration
func newMapView() *mapview.View {
	return mapview.New(GetGlobalConfig().ViewConfig(), mapview.WithCache(curve.NewCache(0)))
}

// setupInputReader opens the plan file named in args, or stdin without one
func setupInputReader(args []string) (reader io.Reader, source string, cleanup func(), err error) {
	if len(args) == 0 {
		if isVerbose() {
			fmt.Fprintf(os.Stderr, "Reading plan from stdin...\n")
		}
		return os.Stdin, "", nil, nil
	}

	filename := args[0]
	if err := validateFilePath(filename); err != nil {
		return nil, "", nil, fmt.Errorf("invalid file path: %w", err)
	}

	cleanPath := filepath.Clean(filename)

	// #nosec G304 - path is validated above
	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}

	cleanup = func() {
		if err := file.Close(); err != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close file: %v\n", err)
		}
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Rendering plan: %s\n", cleanPath)
	}

	return file, cleanPath, cleanup, nil
}

func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}

func displaySource(source string) string {
	if source == "" {
		return "stdin"
	}
	return source
}
