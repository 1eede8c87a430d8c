// Package dto holds the view models handed to renderers. Views never see
// store-owned records, only these derived snapshots.
package dto

import (
	"strings"
	"unicode"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
)

const dateLayout = "2006-01-02"

// UserRow is one rendered table row.
type UserRow struct {
	ID           int    `json:"id"`
	Initials     string `json:"initials"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	Plan         string `json:"plan"`
	LastActivity string `json:"last_activity"`
}

// UserRowFromModel maps a user record onto its table row.
func UserRowFromModel(u model.User) UserRow {
	return UserRow{
		ID:           u.ID,
		Initials:     initials(u.Name),
		Name:         u.Name,
		Email:        u.Email,
		Status:       string(u.Status),
		Plan:         string(u.Plan),
		LastActivity: u.LastActivity.Format(dateLayout),
	}
}

// UserRows maps a user list onto table rows, preserving order.
func UserRows(users []model.User) []UserRow {
	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, UserRowFromModel(u))
	}
	return rows
}

// initials builds the avatar monogram from the first letter of each name
// part ("John Doe" -> "JD").
func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteRune(unicode.ToUpper([]rune(part)[0]))
	}
	return b.String()
}
