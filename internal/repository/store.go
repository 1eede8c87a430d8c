// Package repository owns the canonical in-memory dashboard state. All
// reads return defensive copies; writes happen only through the service
// layer. The core is single-threaded by contract (UI events arrive one at
// a time), so the store carries no locking.
package repository

import (
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
)

// Store is the single source of truth for users, the current plan, chart
// period selections, theme and navigation state.
type Store interface {
	// Users returns every user in insertion order.
	Users() []model.User
	// User returns the user with the given id, reporting whether it exists.
	User(id int) (model.User, bool)
	CurrentPlan() model.Plan
	ChartPeriods() model.ChartPeriods
	Theme() model.Theme
	ActivePage() string

	// InsertUser appends u with a freshly assigned id and returns the
	// stored record. Assigned ids are strictly increasing and never reused.
	InsertUser(u model.User) model.User
	// UpdateUser replaces the record with u's id, reporting whether it
	// existed.
	UpdateUser(u model.User) bool
	// RemoveUser deletes by id, reporting whether a record was removed.
	RemoveUser(id int) bool
	SetCurrentPlan(p model.Plan)
	SetChartPeriod(chart model.Chart, period string)
	SetTheme(t model.Theme)
	SetActivePage(page string)
}
