package service

import (
	"github.com/rs/zerolog"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/prefs"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/repository"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/view"
)

// SettingsService handles theme switching and page navigation.
type SettingsService interface {
	// SetTheme normalizes mode, persists it when it changed, and
	// invalidates both chart views on every call (the chart palette depends
	// on the theme, and re-rendering is unconditional).
	SetTheme(mode string) model.Theme
	// SetActivePage records the visible page. Navigation changes no data
	// views; the filter event uses the active page to pick its target.
	SetActivePage(page string)
}

type settingsService struct {
	store repository.Store
	views view.Invalidator
	prefs prefs.Store
	log   zerolog.Logger
}

// NewSettingsService creates a SettingsService backed by the given store
// and preference store.
func NewSettingsService(store repository.Store, views view.Invalidator, p prefs.Store, logger zerolog.Logger) SettingsService {
	return &settingsService{
		store: store,
		views: views,
		prefs: p,
		log:   logger.With().Str("service", "SettingsService").Logger(),
	}
}

func (s *settingsService) SetTheme(mode string) model.Theme {
	t := model.NormalizeTheme(mode)
	if s.store.Theme() != t {
		if err := s.prefs.SaveTheme(t); err != nil {
			// Theme switching must not fail; the preference just won't
			// survive a restart.
			s.log.Error().Err(err).Msg("failed to persist theme preference")
		}
		s.store.SetTheme(t)
	}
	s.views.Invalidate(view.TagRevenueChart, view.TagSignupsChart)
	return t
}

func (s *settingsService) SetActivePage(page string) {
	s.store.SetActivePage(page)
	s.log.Debug().Str("page", page).Msg("active page changed")
}
