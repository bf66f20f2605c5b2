// Package export renders dashboard figures as downloadable CSV.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"ereporting/internal/dashboard"
)

type Service struct {
	dashboard *dashboard.Service
}

func NewService(d *dashboard.Service) *Service {
	return &Service{dashboard: d}
}

// WriteKPIsCSV writes the platform-wide KPI rows as CSV with an area, metric,
// value header.
func (s *Service) WriteKPIsCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"area", "metric", "value"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, kpi := range s.dashboard.KPIs(ctx, dashboard.Scope{}) {
		if err := cw.Write([]string{kpi.Area, kpi.Metric, fmt.Sprintf("%d", kpi.Value)}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
