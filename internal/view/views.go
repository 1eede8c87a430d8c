package view

import (
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/dto"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/query"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/repository"
)

// Renderer is the outbound collaborator boundary: the core computes view
// models and hands them over, it never paints anything itself.
type Renderer interface {
	RenderTable(viewID string, rows []dto.UserRow)
	RenderChart(chartID string, data dto.ChartData)
	RenderPlanCard(card dto.PlanCard)
}

// Bind registers the five dashboard surfaces against the store.
// recentLimit is the preview length of the recent-users table.
func Bind(reg *Registry, st repository.Store, recentLimit int, r Renderer) {
	reg.Register(RecentUsers, []Tag{TagUsers},
		func() any { return dto.UserRows(query.TopN(st.Users(), recentLimit)) },
		func(id string, data any) { r.RenderTable(id, data.([]dto.UserRow)) },
	)
	reg.Register(AllUsers, []Tag{TagUsers},
		func() any { return dto.UserRows(st.Users()) },
		func(id string, data any) { r.RenderTable(id, data.([]dto.UserRow)) },
	)
	reg.Register(RevenueChart, []Tag{TagRevenueChart},
		func() any { return dto.RevenueChartData(query.RevenueData(st.ChartPeriods().Revenue), st.Theme()) },
		func(id string, data any) { r.RenderChart(id, data.(dto.ChartData)) },
	)
	reg.Register(SignupsChart, []Tag{TagSignupsChart},
		func() any { return dto.SignupsChartData(query.SignupsData(st.ChartPeriods().Signups), st.Theme()) },
		func(id string, data any) { r.RenderChart(id, data.(dto.ChartData)) },
	)
	reg.Register(PlanCard, []Tag{TagPlan},
		func() any { return dto.PlanCardFromModel(st.CurrentPlan()) },
		func(id string, data any) { r.RenderPlanCard(data.(dto.PlanCard)) },
	)
}
