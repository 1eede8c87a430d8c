package dto

import (
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/query"
)

// Dataset is one plotted series.
type Dataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
	Color string `json:"color"`
}

// Palette carries the theme-dependent chart chrome colors. Chart views are
// invalidated on theme changes because of this dependency.
type Palette struct {
	Legend string `json:"legend"`
	Grid   string `json:"grid"`
	Ticks  string `json:"ticks"`
}

// ChartData is the full payload handed to a chart renderer.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Palette  Palette   `json:"palette"`
}

func paletteFor(theme model.Theme) Palette {
	if theme == model.ThemeDark {
		return Palette{Legend: "#cbd5e1", Grid: "#334155", Ticks: "#94a3b8"}
	}
	return Palette{Legend: "#64748b", Grid: "#e2e8f0", Ticks: "#64748b"}
}

// RevenueChartData builds the revenue chart payload for the given theme.
func RevenueChartData(s query.RevenueSeries, theme model.Theme) ChartData {
	return ChartData{
		Labels: s.Labels,
		Datasets: []Dataset{
			{Label: "Revenue", Data: s.Revenue, Color: "#4f46e5"},
			{Label: "Users", Data: s.Users, Color: "#10b981"},
		},
		Palette: paletteFor(theme),
	}
}

// SignupsChartData builds the signups chart payload for the given theme.
func SignupsChartData(s query.SignupSeries, theme model.Theme) ChartData {
	return ChartData{
		Labels: s.Labels,
		Datasets: []Dataset{
			{Label: "User Signups", Data: s.Values, Color: "#4f46e5"},
		},
		Palette: paletteFor(theme),
	}
}

// PlanCard is the current-plan summary shown on the billing page.
type PlanCard struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// PlanCardFromModel maps the current plan onto its card view.
func PlanCardFromModel(p model.Plan) PlanCard {
	return PlanCard{Name: p.Name, Price: p.Price, Features: p.Features}
}
