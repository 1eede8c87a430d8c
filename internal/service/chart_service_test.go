package service

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/repository"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/view"
)

func TestSetPeriodInvalidatesOnlyNamedChart(t *testing.T) {
	store := repository.NewSeeded()
	rec := &tagRecorder{}
	svc := NewChartService(store, rec, zerolog.Nop())

	svc.SetPeriod(model.ChartRevenue, model.PeriodQuarterly)
	if store.ChartPeriods().Revenue != model.PeriodQuarterly {
		t.Errorf("revenue period = %q, want quarterly", store.ChartPeriods().Revenue)
	}
	if len(rec.calls) != 1 || len(rec.calls[0]) != 1 || rec.calls[0][0] != view.TagRevenueChart {
		t.Fatalf("invalidations = %v, want only the revenue chart", rec.calls)
	}

	svc.SetPeriod(model.ChartSignups, model.PeriodMonthly)
	if rec.calls[1][0] != view.TagSignupsChart {
		t.Errorf("second invalidation = %v, want signups chart", rec.calls[1])
	}
}

func TestSetPeriodStoresUnrecognizedValues(t *testing.T) {
	store := repository.NewSeeded()
	rec := &tagRecorder{}
	svc := NewChartService(store, rec, zerolog.Nop())

	// Unknown periods are stored as-is; the query layer falls back at
	// render time.
	svc.SetPeriod(model.ChartSignups, "biweekly")
	if store.ChartPeriods().Signups != "biweekly" {
		t.Errorf("signups period = %q, want stored as-is", store.ChartPeriods().Signups)
	}
	if len(rec.calls) != 1 {
		t.Errorf("invalidations = %d, want 1", len(rec.calls))
	}
}

func TestSetPeriodUnknownChartIgnored(t *testing.T) {
	store := repository.NewSeeded()
	rec := &tagRecorder{}
	svc := NewChartService(store, rec, zerolog.Nop())

	svc.SetPeriod("pie", model.PeriodMonthly)
	if len(rec.calls) != 0 {
		t.Error("unknown chart triggered an invalidation")
	}
	periods := store.ChartPeriods()
	if periods.Revenue != model.PeriodMonthly || periods.Signups != model.PeriodWeekly {
		t.Errorf("unknown chart changed periods: %+v", periods)
	}
}
