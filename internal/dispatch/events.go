package dispatch

import "io"

// Kind discriminates the UI events the dispatcher understands.
type Kind string

const (
	EventSearch             Kind = "search"
	EventFilter             Kind = "filter"
	EventAddUser            Kind = "addUser"
	EventEditUser           Kind = "editUser"
	EventDeleteUser         Kind = "deleteUser"
	EventChangePlan         Kind = "changePlan"
	EventSetChartPeriod     Kind = "setChartPeriod"
	EventSetTheme           Kind = "setTheme"
	EventSetActivePage      Kind = "setActivePage"
	EventExportUsers        Kind = "exportUsers"
	EventCancelSubscription Kind = "cancelSubscription"
)

// Event is one externally delivered UI event. Payload must be the struct
// matching Kind.
type Event struct {
	Kind    Kind
	Payload any
}

// Result reports the outcome of a dispatched event. Errors never escape
// the dispatcher; they surface as an error-level notification and OK=false.
type Result struct {
	OK      bool
	Message string
}

// SearchPayload carries a search box value. The rendered target follows
// the active page.
type SearchPayload struct {
	Term string
}

// FilterPayload narrows the user table. Empty fields mean "all".
type FilterPayload struct {
	Status string
	Plan   string
}

type AddUserPayload struct {
	Name  string
	Email string
	Plan  string
}

// EditUserPayload is a partial update; nil fields keep existing values.
// The ID arrives as a string, as DOM data attributes did.
type EditUserPayload struct {
	ID     string
	Name   *string
	Email  *string
	Status *string
	Plan   *string
}

type DeleteUserPayload struct {
	ID string
}

type ChangePlanPayload struct {
	Tier string
}

type ChartPeriodPayload struct {
	Chart  string
	Period string
}

type ThemePayload struct {
	Mode string
}

type PagePayload struct {
	Page string
}

// ExportUsersPayload supplies the destination for the CSV export.
type ExportUsersPayload struct {
	To io.Writer
}

type CancelSubscriptionPayload struct {
	Reason string
}
