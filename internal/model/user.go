package model

import "time"

// UserStatus is the account activity state shown in the user tables.
type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

// PlanTier identifies one of the three subscription tiers.
type PlanTier string

const (
	TierBasic      PlanTier = "Basic"
	TierPro        PlanTier = "Pro"
	TierEnterprise PlanTier = "Enterprise"
)

// User represents an account member. IDs are assigned by the store, are
// unique, and are never reused after deletion.
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Status       UserStatus `json:"status"`
	LastActivity time.Time  `json:"last_activity"`
	Plan         PlanTier   `json:"plan"`
}
