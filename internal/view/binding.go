// Package view keeps every rendered surface in sync with the store. A
// registry maps each view to the dependency tags it reads; mutations
// declare the tags they touch and every intersecting view is re-rendered
// synchronously, exactly once, with freshly derived data. Re-rendering is
// unconditional: there is no diffing and no batching.
package view

import "github.com/rs/zerolog"

// Tag names a slice of store state a view can depend on.
type Tag string

const (
	TagUsers        Tag = "users"
	TagPlan         Tag = "plan"
	TagRevenueChart Tag = "chart:revenue"
	TagSignupsChart Tag = "chart:signups"
)

// View identifiers for the rendered surfaces.
const (
	RecentUsers  = "recent-users"
	AllUsers     = "all-users"
	RevenueChart = "revenue-chart"
	SignupsChart = "signups-chart"
	PlanCard     = "plan-card"
)

// Source computes a view's fresh data from the live store via the query
// layer.
type Source func() any

// RenderFunc paints one view with the supplied data.
type RenderFunc func(viewID string, data any)

// Invalidator is the slice of the registry the mutation layer needs.
type Invalidator interface {
	Invalidate(tags ...Tag)
}

type binding struct {
	id     string
	deps   map[Tag]struct{}
	source Source
	render RenderFunc
}

// Registry holds the registered view bindings.
type Registry struct {
	bindings []binding
	log      zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{log: logger.With().Str("component", "views").Logger()}
}

// Register binds a view to its dependency tags. Registering an existing
// view id replaces the previous binding.
func (r *Registry) Register(viewID string, deps []Tag, source Source, render RenderFunc) {
	b := binding{id: viewID, deps: make(map[Tag]struct{}, len(deps)), source: source, render: render}
	for _, t := range deps {
		b.deps[t] = struct{}{}
	}
	for i := range r.bindings {
		if r.bindings[i].id == viewID {
			r.bindings[i] = b
			return
		}
	}
	r.bindings = append(r.bindings, b)
}

// Invalidate re-renders every view whose dependencies intersect tags. Each
// affected view renders once per call, even when several tags match it.
func (r *Registry) Invalidate(tags ...Tag) {
	for _, b := range r.bindings {
		if !intersects(b.deps, tags) {
			continue
		}
		r.log.Debug().Str("view", b.id).Msg("re-rendering invalidated view")
		b.render(b.id, b.source())
	}
}

// RenderWith paints one view with caller-supplied data, bypassing its
// source. Used for query-driven events (search, filter) whose result is
// not canonical store state.
func (r *Registry) RenderWith(viewID string, data any) {
	for _, b := range r.bindings {
		if b.id == viewID {
			b.render(b.id, data)
			return
		}
	}
	r.log.Warn().Str("view", viewID).Msg("render requested for unregistered view")
}

// RenderAll paints every registered view from its source. Called once at
// startup for the initial paint.
func (r *Registry) RenderAll() {
	for _, b := range r.bindings {
		b.render(b.id, b.source())
	}
}

func intersects(deps map[Tag]struct{}, tags []Tag) bool {
	for _, t := range tags {
		if _, ok := deps[t]; ok {
			return true
		}
	}
	return false
}
