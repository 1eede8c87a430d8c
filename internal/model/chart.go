package model

// Chart names one of the two dashboard charts.
type Chart string

const (
	ChartRevenue Chart = "revenue"
	ChartSignups Chart = "signups"
)

// Chart period values. Periods are stored as supplied; unrecognized values
// fall back to a default series at query time rather than failing.
const (
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
)

// ChartPeriods holds the selected period per chart, independently.
type ChartPeriods struct {
	Revenue string `json:"revenue"`
	Signups string `json:"signups"`
}

// DefaultChartPeriods matches the initial dashboard selection.
func DefaultChartPeriods() ChartPeriods {
	return ChartPeriods{Revenue: PeriodMonthly, Signups: PeriodWeekly}
}
