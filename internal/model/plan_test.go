package model

import "testing"

func TestPlanByTier(t *testing.T) {
	tests := []struct {
		tier     PlanTier
		wantName string
		wantOK   bool
	}{
		{TierBasic, "Basic Plan", true},
		{TierPro, "Pro Plan", true},
		{TierEnterprise, "Enterprise Plan", true},
		{"Platinum", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		p, ok := PlanByTier(tt.tier)
		if ok != tt.wantOK || p.Name != tt.wantName {
			t.Errorf("PlanByTier(%q) = %q, %v; want %q, %v", tt.tier, p.Name, ok, tt.wantName, tt.wantOK)
		}
		if ok && p.Current {
			t.Errorf("catalog plan %q returned marked current", p.Name)
		}
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	plans := Catalog()
	if len(plans) != 3 {
		t.Fatalf("catalog size = %d, want 3", len(plans))
	}
	plans[0].Features[0] = "mutated"

	fresh, _ := PlanByTier(TierBasic)
	if fresh.Features[0] == "mutated" {
		t.Error("mutating a catalog copy leaked into the catalog")
	}
}

func TestNormalizeTheme(t *testing.T) {
	tests := []struct {
		mode string
		want Theme
	}{
		{"dark", ThemeDark},
		{"light", ThemeLight},
		{"solarized", ThemeLight},
		{"", ThemeLight},
	}
	for _, tt := range tests {
		if got := NormalizeTheme(tt.mode); got != tt.want {
			t.Errorf("NormalizeTheme(%q) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
