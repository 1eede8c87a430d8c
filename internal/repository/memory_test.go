package repository

import (
	"testing"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
)

func TestNewSeeded(t *testing.T) {
	s := NewSeeded()

	users := s.Users()
	if len(users) != 6 {
		t.Fatalf("seeded store holds %d users, want 6", len(users))
	}
	if users[0].ID != 1 || users[5].ID != 6 {
		t.Errorf("seed ids = %d..%d, want 1..6", users[0].ID, users[5].ID)
	}
	if plan := s.CurrentPlan(); plan.Name != "Pro Plan" || !plan.Current {
		t.Errorf("seeded current plan = %+v, want current Pro Plan", plan)
	}
	if periods := s.ChartPeriods(); periods.Revenue != model.PeriodMonthly || periods.Signups != model.PeriodWeekly {
		t.Errorf("seeded periods = %+v, want monthly/weekly", periods)
	}
	if s.Theme() != model.ThemeLight {
		t.Errorf("seeded theme = %q, want light", s.Theme())
	}
	if s.ActivePage() != model.PageDashboard {
		t.Errorf("seeded page = %q, want dashboard", s.ActivePage())
	}
}

func TestInsertUserAssignsMonotonicIDs(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.InsertUser(model.User{Name: "u", Email: "u@example.com"})
	}
	if !s.RemoveUser(2) {
		t.Fatal("expected removal of user 2")
	}

	// Ids are never reused, even after deletion.
	u := s.InsertUser(model.User{Name: "next", Email: "next@example.com"})
	if u.ID != 4 {
		t.Errorf("id after delete = %d, want 4", u.ID)
	}
}

func TestUserLookup(t *testing.T) {
	s := NewSeeded()

	u, ok := s.User(3)
	if !ok || u.Name != "Robert Johnson" {
		t.Fatalf("User(3) = %+v, %v; want Robert Johnson", u, ok)
	}
	if _, ok := s.User(99); ok {
		t.Error("User(99) reported an absent user as present")
	}
}

func TestUpdateUser(t *testing.T) {
	s := NewSeeded()

	u, _ := s.User(1)
	u.Status = model.StatusInactive
	if !s.UpdateUser(u) {
		t.Fatal("UpdateUser reported existing user as absent")
	}
	got, _ := s.User(1)
	if got.Status != model.StatusInactive {
		t.Errorf("status after update = %q, want Inactive", got.Status)
	}

	if s.UpdateUser(model.User{ID: 99}) {
		t.Error("UpdateUser invented a record for an absent id")
	}
}

func TestRemoveUserPreservesOrder(t *testing.T) {
	s := NewSeeded()
	s.RemoveUser(2)

	users := s.Users()
	if len(users) != 5 {
		t.Fatalf("%d users after removal, want 5", len(users))
	}
	wantIDs := []int{1, 3, 4, 5, 6}
	for i, want := range wantIDs {
		if users[i].ID != want {
			t.Errorf("users[%d].ID = %d, want %d", i, users[i].ID, want)
		}
	}

	if s.RemoveUser(2) {
		t.Error("second removal of the same id reported success")
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewSeeded()

	users := s.Users()
	users[0].Name = "mutated"
	if fresh, _ := s.User(1); fresh.Name == "mutated" {
		t.Error("mutating a Users() snapshot leaked into the store")
	}

	plan := s.CurrentPlan()
	plan.Features[0] = "mutated"
	if s.CurrentPlan().Features[0] == "mutated" {
		t.Error("mutating a CurrentPlan() snapshot leaked into the store")
	}
}

func TestSetCurrentPlanMarksCurrent(t *testing.T) {
	s := New()
	p, _ := model.PlanByTier(model.TierEnterprise)
	s.SetCurrentPlan(p)

	got := s.CurrentPlan()
	if got.Name != "Enterprise Plan" || !got.Current {
		t.Errorf("current plan = %+v, want current Enterprise Plan", got)
	}

	// The catalog itself stays unmarked; only the store's current plan
	// carries the flag.
	for _, cp := range model.Catalog() {
		if cp.Current {
			t.Errorf("catalog entry %q is marked current", cp.Name)
		}
	}
}

func TestSetChartPeriodStoresValueAsIs(t *testing.T) {
	s := New()
	s.SetChartPeriod(model.ChartRevenue, "bogus")

	periods := s.ChartPeriods()
	if periods.Revenue != "bogus" {
		t.Errorf("revenue period = %q, want stored as-is", periods.Revenue)
	}
	if periods.Signups != model.PeriodWeekly {
		t.Errorf("signups period = %q, want untouched default", periods.Signups)
	}
}
