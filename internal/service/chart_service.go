package service

import (
	"github.com/rs/zerolog"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/repository"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/view"
)

// ChartService switches the period selection of a chart.
type ChartService interface {
	// SetPeriod stores the period as supplied, even when unrecognized; the
	// query layer applies its fallback at render time. Only the named
	// chart's view is invalidated.
	SetPeriod(chart model.Chart, period string)
}

type chartService struct {
	store repository.Store
	views view.Invalidator
	log   zerolog.Logger
}

// NewChartService creates a ChartService backed by the given store.
func NewChartService(store repository.Store, views view.Invalidator, logger zerolog.Logger) ChartService {
	return &chartService{
		store: store,
		views: views,
		log:   logger.With().Str("service", "ChartService").Logger(),
	}
}

func (s *chartService) SetPeriod(chart model.Chart, period string) {
	switch chart {
	case model.ChartRevenue:
		s.store.SetChartPeriod(chart, period)
		s.views.Invalidate(view.TagRevenueChart)
	case model.ChartSignups:
		s.store.SetChartPeriod(chart, period)
		s.views.Invalidate(view.TagSignupsChart)
	default:
		s.log.Warn().Str("chart", string(chart)).Msg("unknown chart ignored")
	}
}
