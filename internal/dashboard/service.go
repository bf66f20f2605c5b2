// Package dashboard synthesizes the demo reporting figures. Values are fixed
// and scaled by scope (platform-wide, one ministry, one entity) exactly as the
// frontend charts expect; no real aggregation happens.
package dashboard

import "context"

// Stats is the completed/pending split shown on the landing page.
type Stats struct {
	ReportsCompleted int `json:"reportsCompleted"`
	ReportsPending   int `json:"reportsPending"`
}

// KPI is one indicator row, also the CSV export shape.
type KPI struct {
	Area   string `json:"area"`
	Metric string `json:"metric"`
	Value  int64  `json:"value"`
}

// Scope narrows figures to a ministry or an entity. Empty fields mean
// platform-wide. Dangling ids are not checked; the scope only picks the
// scaling factor.
type Scope struct {
	MinistryID string
	EntityID   string
}

type Service struct{}

func NewService() *Service { return &Service{} }

// Stats returns the completion split for the scope: 100 platform-wide, 60 for
// a ministry, 25 for an entity.
func (s *Service) Stats(_ context.Context, scope Scope) Stats {
	base := 100
	switch {
	case scope.EntityID != "":
		base = 25
	case scope.MinistryID != "":
		base = 60
	}
	return Stats{ReportsCompleted: base, ReportsPending: 100 - base}
}

// KPIs returns the indicator rows for the scope, scaled by 1.0, 0.6 or 0.3.
func (s *Service) KPIs(_ context.Context, scope Scope) []KPI {
	factor := 1.0
	switch {
	case scope.EntityID != "":
		factor = 0.3
	case scope.MinistryID != "":
		factor = 0.6
	}
	scale := func(v float64) int64 { return int64(v*factor + 0.5) }
	return []KPI{
		{Area: "Budget", Metric: "executionRate", Value: scale(75)},
		{Area: "PPM", Metric: "compliance", Value: scale(82)},
		{Area: "RH", Metric: "hiringRate", Value: scale(67)},
		{Area: "Trésorerie", Metric: "liquidityDays", Value: scale(45)},
		{Area: "Gouvernance", Metric: "auditsClosed", Value: scale(12)},
	}
}
