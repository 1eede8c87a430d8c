// Package query derives read-only views from store snapshots. Every
// function is pure and side-effect free; unrecognized enum values degrade
// to documented defaults instead of returning errors.
package query

import (
	"strings"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
)

// Criteria narrows a user list. Zero-valued fields impose no constraint.
type Criteria struct {
	Status model.UserStatus
	Plan   model.PlanTier
}

// SearchUsers returns the users whose name or email contains term,
// case-insensitively. An empty term returns the input unchanged.
func SearchUsers(term string, users []model.User) []model.User {
	if term == "" {
		return users
	}
	term = strings.ToLower(term)
	matched := make([]model.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			matched = append(matched, u)
		}
	}
	return matched
}

// FilterUsers keeps the users matching every provided criterion,
// preserving relative order.
func FilterUsers(c Criteria, users []model.User) []model.User {
	filtered := make([]model.User, 0, len(users))
	for _, u := range users {
		if c.Status != "" && u.Status != c.Status {
			continue
		}
		if c.Plan != "" && u.Plan != c.Plan {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered
}

// TopN returns the first n users in the current ordering.
func TopN(users []model.User, n int) []model.User {
	if n < 0 {
		n = 0
	}
	if n > len(users) {
		n = len(users)
	}
	return users[:n]
}

// RevenueSeries is the revenue chart data for one period selection.
type RevenueSeries struct {
	Labels  []string
	Revenue []int
	Users   []int
}

// RevenueData returns the revenue series for the given period. Unrecognized
// periods fall back to a fixed six-point series.
func RevenueData(period string) RevenueSeries {
	switch period {
	case model.PeriodMonthly:
		return RevenueSeries{
			Labels:  []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			Revenue: []int{4000, 3000, 2000, 2780, 1890, 2390, 3490, 4000, 3000, 2000, 2780, 1890},
			Users:   []int{2400, 1398, 9800, 3908, 4800, 3800, 4300, 2400, 1398, 9800, 3908, 4800},
		}
	case model.PeriodQuarterly:
		return RevenueSeries{
			Labels:  []string{"Q1", "Q2", "Q3", "Q4"},
			Revenue: []int{9000, 7060, 9880, 6670},
			Users:   []int{13598, 12508, 10700, 11508},
		}
	case model.PeriodYearly:
		return RevenueSeries{
			Labels:  []string{"2020", "2021", "2022", "2023"},
			Revenue: []int{18000, 24000, 32000, 38500},
			Users:   []int{35000, 42000, 51000, 58000},
		}
	default:
		return RevenueSeries{
			Labels:  []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Revenue: []int{4000, 3000, 2000, 2780, 1890, 2390},
			Users:   []int{2400, 1398, 9800, 3908, 4800, 3800},
		}
	}
}

// SignupSeries is the signups chart data for one period selection.
type SignupSeries struct {
	Labels []string
	Values []int
}

// SignupsData returns the signups series for the given period. Unrecognized
// periods fall back to a fixed four-point series.
func SignupsData(period string) SignupSeries {
	switch period {
	case model.PeriodWeekly:
		return SignupSeries{
			Labels: []string{"W1", "W2", "W3", "W4", "W5", "W6", "W7"},
			Values: []int{400, 300, 200, 278, 189, 239, 349},
		}
	case model.PeriodMonthly:
		return SignupSeries{
			Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			Values: []int{1200, 900, 1500, 1800, 2100, 2400},
		}
	default:
		return SignupSeries{
			Labels: []string{"W1", "W2", "W3", "W4"},
			Values: []int{400, 300, 200, 278},
		}
	}
}
