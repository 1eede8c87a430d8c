package service

import (
	"github.com/rs/zerolog"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/repository"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/view"
)

// BillingService handles plan selection for the account.
type BillingService interface {
	// ChangePlan atomically swaps the current plan to the catalog entry for
	// tier. Returns ErrPlanNotFound for tiers outside the catalog.
	ChangePlan(tier model.PlanTier) (model.Plan, error)
	// CancelSubscription records a cancellation request. The account stays
	// on its plan until the end of the billing period, so no state changes.
	CancelSubscription(reason string)
}

type billingService struct {
	store repository.Store
	views view.Invalidator
	log   zerolog.Logger
}

// NewBillingService creates a BillingService backed by the given store.
func NewBillingService(store repository.Store, views view.Invalidator, logger zerolog.Logger) BillingService {
	return &billingService{
		store: store,
		views: views,
		log:   logger.With().Str("service", "BillingService").Logger(),
	}
}

func (s *billingService) ChangePlan(tier model.PlanTier) (model.Plan, error) {
	p, ok := model.PlanByTier(tier)
	if !ok {
		return model.Plan{}, ErrPlanNotFound
	}
	s.store.SetCurrentPlan(p)
	s.log.Info().Str("plan", p.Name).Msg("plan changed")
	s.views.Invalidate(view.TagPlan)
	return s.store.CurrentPlan(), nil
}

func (s *billingService) CancelSubscription(reason string) {
	s.log.Info().Str("reason", reason).Msg("subscription cancellation requested")
}
