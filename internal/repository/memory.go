package repository

import (
	"time"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
)

type memoryStore struct {
	users       []model.User
	nextID      int
	currentPlan model.Plan
	periods     model.ChartPeriods
	theme       model.Theme
	activePage  string
}

// New returns an empty store with defaults applied.
func New() Store {
	return &memoryStore{
		nextID:      1,
		currentPlan: defaultPlan(),
		periods:     model.DefaultChartPeriods(),
		theme:       model.ThemeLight,
		activePage:  model.PageDashboard,
	}
}

// NewSeeded returns a store preloaded with the demo dataset.
func NewSeeded() Store {
	s := New().(*memoryStore)
	for _, u := range SeedUsers() {
		u.ID = s.nextID
		s.nextID++
		s.users = append(s.users, u)
	}
	return s
}

func defaultPlan() model.Plan {
	p, _ := model.PlanByTier(model.TierPro)
	p.Current = true
	return p
}

// SeedUsers returns the demo user dataset in its canonical order. IDs are
// assigned by the store at insertion.
func SeedUsers() []model.User {
	return []model.User{
		{Name: "John Doe", Email: "john@example.com", Status: model.StatusActive, LastActivity: date(2023, 6, 15), Plan: model.TierPro},
		{Name: "Jane Smith", Email: "jane@example.com", Status: model.StatusActive, LastActivity: date(2023, 6, 14), Plan: model.TierEnterprise},
		{Name: "Robert Johnson", Email: "robert@example.com", Status: model.StatusInactive, LastActivity: date(2023, 5, 20), Plan: model.TierBasic},
		{Name: "Emily Davis", Email: "emily@example.com", Status: model.StatusActive, LastActivity: date(2023, 6, 10), Plan: model.TierPro},
		{Name: "Michael Wilson", Email: "michael@example.com", Status: model.StatusActive, LastActivity: date(2023, 6, 12), Plan: model.TierEnterprise},
		{Name: "Sarah Brown", Email: "sarah@example.com", Status: model.StatusActive, LastActivity: date(2023, 6, 11), Plan: model.TierBasic},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *memoryStore) Users() []model.User {
	return append([]model.User(nil), s.users...)
}

func (s *memoryStore) User(id int) (model.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (s *memoryStore) CurrentPlan() model.Plan {
	return s.currentPlan.Clone()
}

func (s *memoryStore) ChartPeriods() model.ChartPeriods {
	return s.periods
}

func (s *memoryStore) Theme() model.Theme {
	return s.theme
}

func (s *memoryStore) ActivePage() string {
	return s.activePage
}

func (s *memoryStore) InsertUser(u model.User) model.User {
	u.ID = s.nextID
	s.nextID++
	s.users = append(s.users, u)
	return u
}

func (s *memoryStore) UpdateUser(u model.User) bool {
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return true
		}
	}
	return false
}

func (s *memoryStore) RemoveUser(id int) bool {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}

func (s *memoryStore) SetCurrentPlan(p model.Plan) {
	p.Current = true
	s.currentPlan = p.Clone()
}

func (s *memoryStore) SetChartPeriod(chart model.Chart, period string) {
	switch chart {
	case model.ChartRevenue:
		s.periods.Revenue = period
	case model.ChartSignups:
		s.periods.Signups = period
	}
}

func (s *memoryStore) SetTheme(t model.Theme) {
	s.theme = t
}

func (s *memoryStore) SetActivePage(page string) {
	s.activePage = page
}
