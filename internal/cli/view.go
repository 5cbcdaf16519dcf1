package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yildizm/TrailMap/internal/plan"
	"github.com/yildizm/TrailMap/internal/ui"
)

var (
	viewProgress int
	viewDots     int
	viewWatch    bool
)

func newViewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [plan-file]",
		Short: "Explore a progress map interactively",
		Long: `Open the progress map in an interactive terminal view.

Without a plan file a preview trail of dots is shown.

Keys:
  ←/→ or h/l   move between steps
  enter/space  open or close the focused step's card
  n / p        advance or step back the climber
  r            reload the plan file
  ?            help
  q            quit

Examples:
  trailmap view plan.json
  trailmap view --progress 3 --watch plan.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runView,
	}

	cmd.Flags().IntVar(&viewProgress, "progress", 0, "initial step index of the climber")
	cmd.Flags().IntVar(&viewDots, "dots", 0, "number of preview dots without a plan (default from config)")
	cmd.Flags().BoolVar(&viewWatch, "watch", false, "reload the plan when the file changes")

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	source := ""
	if len(args) == 1 {
		if err := validateFilePath(args[0]); err != nil {
			return fmt.Errorf("invalid file path: %w", err)
		}
		source = filepath.Clean(args[0])
	}
	if viewWatch && source == "" {
		return fmt.Errorf("--watch needs a plan file")
	}

	model := ui.NewMapModel(newMapView(), nil, source, viewProgress)
	if viewDots > 0 {
		model.SetDotCount(viewDots)
	}
	program := ui.NewProgram(model)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if viewWatch {
		go func() {
			err := plan.Watch(ctx, source, func(p *plan.Plan, err error) {
				if err != nil {
					program.Send(ui.PlanErrorMsg{Err: err})
					return
				}
				program.Send(ui.PlanLoadedMsg{Plan: p})
			})
			if err != nil {
				log.Warn("plan watch stopped: %v", err)
			}
		}()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive view failed: %w", err)
	}
	if err := model.Err(); err != nil && isVerbose() {
		log.Warn("last plan error: %v", err)
	}
	return nil
}
