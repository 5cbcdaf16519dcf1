package server

import (
	"context"

	"github.com/yildizm/TrailMap/internal/logger"
	"github.com/yildizm/TrailMap/internal/plan"
)

// WatchPlan reloads path on change and pushes the new plan to every session.
// A plan that fails to load is logged and the previous plan stays live.
func (s *Server) WatchPlan(ctx context.Context, path string) error {
	s.log.Debug("watching plan file %s", path)
	return plan.Watch(ctx, path, func(p *plan.Plan, err error) {
		if err != nil {
			s.log.WarnWithFields("plan reload failed", []logger.Field{
				logger.F("path", path),
				logger.Error(err),
			})
			return
		}
		s.SetPlan(p)
	})
}
