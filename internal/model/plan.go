package model

// Plan describes a subscription plan offering. Price is display-formatted
// ("$49/month"). At most one plan is marked Current across the account.
type Plan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
	Current  bool     `json:"is_current"`
}

// Clone returns a deep copy so callers cannot alias the feature list.
func (p Plan) Clone() Plan {
	c := p
	c.Features = append([]string(nil), p.Features...)
	return c
}

var catalog = map[PlanTier]Plan{
	TierBasic: {
		Name:  "Basic Plan",
		Price: "$19/month",
		Features: []string{
			"Up to 5 team members",
			"10GB storage",
			"Email support",
			"Basic analytics",
		},
	},
	TierPro: {
		Name:  "Pro Plan",
		Price: "$49/month",
		Features: []string{
			"Up to 10 team members",
			"50GB storage",
			"Priority support",
			"Advanced analytics",
		},
	},
	TierEnterprise: {
		Name:  "Enterprise Plan",
		Price: "$99/month",
		Features: []string{
			"Unlimited team members",
			"200GB storage",
			"24/7 phone support",
			"Custom analytics",
		},
	},
}

// PlanByTier looks up the catalog entry for a tier. The returned plan is a
// copy with Current unset; the store decides which plan is current.
func PlanByTier(tier PlanTier) (Plan, bool) {
	p, ok := catalog[tier]
	if !ok {
		return Plan{}, false
	}
	return p.Clone(), true
}

// Catalog returns every offered plan in tier order.
func Catalog() []Plan {
	tiers := []PlanTier{TierBasic, TierPro, TierEnterprise}
	plans := make([]Plan, 0, len(tiers))
	for _, t := range tiers {
		plans = append(plans, catalog[t].Clone())
	}
	return plans
}
