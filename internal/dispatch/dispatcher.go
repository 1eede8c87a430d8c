// Package dispatch translates externally delivered UI events into query
// and mutation calls. It is the sole entry point into the core: events are
// handled one at a time, synchronously, in dispatch order. Errors from the
// mutation layer are handled here and mapped to user-facing notifications;
// they never propagate further.
package dispatch

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/dto"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/model"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/query"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/repository"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/service"
	"github.com/mohan-dev-portfolio/Nebula-Saas-Dashboard/internal/view"
)

// Level grades a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier shows transient user feedback. Fire-and-forget; the core never
// consults a return value.
type Notifier interface {
	Notify(message string, level Level)
}

// Dispatcher wires events to the service and query layers.
type Dispatcher struct {
	store       repository.Store
	users       service.UserService
	billing     service.BillingService
	charts      service.ChartService
	settings    service.SettingsService
	views       *view.Registry
	notifier    Notifier
	recentLimit int
	log         zerolog.Logger
}

// New assembles a Dispatcher. recentLimit is the preview length of the
// recent-users table, shared with the view bindings.
func New(
	store repository.Store,
	users service.UserService,
	billing service.BillingService,
	charts service.ChartService,
	settings service.SettingsService,
	views *view.Registry,
	notifier Notifier,
	recentLimit int,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		store:       store,
		users:       users,
		billing:     billing,
		charts:      charts,
		settings:    settings,
		views:       views,
		notifier:    notifier,
		recentLimit: recentLimit,
		log:         logger.With().Str("component", "dispatcher").Logger(),
	}
}

// Dispatch handles one event and reports the outcome. It never returns an
// error: failures notify the user and come back as OK=false.
func (d *Dispatcher) Dispatch(evt Event) Result {
	switch evt.Kind {
	case EventSearch:
		p, ok := evt.Payload.(SearchPayload)
		if !ok {
			return d.badPayload(evt)
		}
		d.renderUserSurface(query.SearchUsers(p.Term, d.store.Users()))
		return Result{OK: true}

	case EventFilter:
		p, ok := evt.Payload.(FilterPayload)
		if !ok {
			return d.badPayload(evt)
		}
		criteria := query.Criteria{Status: model.UserStatus(p.Status), Plan: model.PlanTier(p.Plan)}
		d.renderUserSurface(query.FilterUsers(criteria, d.store.Users()))
		return d.success("Filter applied successfully!")

	case EventAddUser:
		p, ok := evt.Payload.(AddUserPayload)
		if !ok {
			return d.badPayload(evt)
		}
		draft := service.UserDraft{Name: p.Name, Email: p.Email, Plan: model.PlanTier(p.Plan)}
		if _, err := d.users.Add(draft); err != nil {
			return d.failure(err, "User not found")
		}
		return d.success("User added successfully!")

	case EventEditUser:
		p, ok := evt.Payload.(EditUserPayload)
		if !ok {
			return d.badPayload(evt)
		}
		patch := service.UserPatch{Name: p.Name, Email: p.Email}
		if p.Status != nil {
			st := model.UserStatus(*p.Status)
			patch.Status = &st
		}
		if p.Plan != nil {
			pl := model.PlanTier(*p.Plan)
			patch.Plan = &pl
		}
		if _, err := d.users.Edit(parseID(p.ID), patch); err != nil {
			return d.failure(err, "User not found")
		}
		return d.success("User updated successfully!")

	case EventDeleteUser:
		p, ok := evt.Payload.(DeleteUserPayload)
		if !ok {
			return d.badPayload(evt)
		}
		d.users.Delete(parseID(p.ID))
		return d.success("User deleted successfully!")

	case EventChangePlan:
		p, ok := evt.Payload.(ChangePlanPayload)
		if !ok {
			return d.badPayload(evt)
		}
		plan, err := d.billing.ChangePlan(model.PlanTier(p.Tier))
		if err != nil {
			return d.failure(err, "Please select a plan")
		}
		return d.success(fmt.Sprintf("Plan changed to %s successfully!", plan.Name))

	case EventSetChartPeriod:
		p, ok := evt.Payload.(ChartPeriodPayload)
		if !ok {
			return d.badPayload(evt)
		}
		chart := model.Chart(p.Chart)
		if chart != model.ChartRevenue && chart != model.ChartSignups {
			d.log.Warn().Str("chart", p.Chart).Msg("period change for unknown chart dropped")
			return Result{OK: false, Message: "unknown chart"}
		}
		d.charts.SetPeriod(chart, p.Period)
		return Result{OK: true}

	case EventSetTheme:
		p, ok := evt.Payload.(ThemePayload)
		if !ok {
			return d.badPayload(evt)
		}
		d.settings.SetTheme(p.Mode)
		return Result{OK: true}

	case EventSetActivePage:
		p, ok := evt.Payload.(PagePayload)
		if !ok {
			return d.badPayload(evt)
		}
		d.settings.SetActivePage(p.Page)
		return Result{OK: true}

	case EventExportUsers:
		p, ok := evt.Payload.(ExportUsersPayload)
		if !ok || p.To == nil {
			return d.badPayload(evt)
		}
		if err := d.users.ExportCSV(p.To); err != nil {
			d.log.Error().Err(err).Msg("user export failed")
			d.notifier.Notify("Failed to export users data", LevelError)
			return Result{OK: false, Message: "Failed to export users data"}
		}
		return d.success("Users data exported successfully!")

	case EventCancelSubscription:
		p, ok := evt.Payload.(CancelSubscriptionPayload)
		if !ok {
			return d.badPayload(evt)
		}
		d.billing.CancelSubscription(p.Reason)
		return d.success("Subscription cancelled successfully!")

	default:
		d.log.Warn().Str("kind", string(evt.Kind)).Msg("unknown event kind dropped")
		return Result{OK: false, Message: "unknown event"}
	}
}

// renderUserSurface paints the user table the active page shows: the
// dashboard previews the first few matches, the users page lists them all.
func (d *Dispatcher) renderUserSurface(users []model.User) {
	if d.store.ActivePage() == model.PageDashboard {
		d.views.RenderWith(view.RecentUsers, dto.UserRows(query.TopN(users, d.recentLimit)))
		return
	}
	d.views.RenderWith(view.AllUsers, dto.UserRows(users))
}

// parseID normalizes a string event-attribute id to integer equality; a
// non-numeric id behaves like an absent one.
func parseID(raw string) int {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return id
}

func (d *Dispatcher) success(msg string) Result {
	d.notifier.Notify(msg, LevelSuccess)
	return Result{OK: true, Message: msg}
}

// failure maps a mutation error to its user-facing message: validation
// errors keep the original form prompt, anything else uses notFoundMsg.
func (d *Dispatcher) failure(err error, notFoundMsg string) Result {
	msg := notFoundMsg
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		msg = "Please fill in all fields"
	}
	d.log.Warn().Err(err).Msg("mutation rejected")
	d.notifier.Notify(msg, LevelError)
	return Result{OK: false, Message: msg}
}

func (d *Dispatcher) badPayload(evt Event) Result {
	d.log.Error().Str("kind", string(evt.Kind)).Msg("event dropped: payload type mismatch")
	return Result{OK: false, Message: "invalid payload"}
}
