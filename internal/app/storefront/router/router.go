// Package router maps a location fragment such as "#/catalog?type=Camisas" to
// a logical path and tells listeners when it changes.
package router

import (
	"net/url"
	"strings"
)

// Scheduler queues work for later on the single logical thread.
type Scheduler interface {
	Post(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

func (f SchedulerFunc) Post(fn func()) { f(fn) }

// Route is a parsed fragment.
type Route struct {
	Path  string
	Query url.Values
}

// Listener receives every route the router emits.
type Listener func(Route)

// Router has two observable states: no route (before Start) and a current
// route. Fragment changes are delivered through the scheduler, never inline.
type Router struct {
	loc       Location
	sched     Scheduler
	current   *Route
	started   bool
	listeners map[int]Listener
	nextID    int
}

func New(loc Location, sched Scheduler) *Router {
	return &Router{
		loc:       loc,
		sched:     sched,
		listeners: make(map[int]Listener),
	}
}

// Listen registers fn. Listeners are kept in an unordered set.
func (r *Router) Listen(fn Listener) (remove func()) {
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	return func() { delete(r.listeners, id) }
}

// Start hooks the location and emits the current route once, synchronously.
func (r *Router) Start() {
	if r.started {
		return
	}
	r.started = true
	r.loc.OnChange(func() {
		r.sched.Post(r.emit)
	})
	r.emit()
}

// Current returns the last emitted route.
func (r *Router) Current() (Route, bool) {
	if r.current == nil {
		return Route{}, false
	}
	return cloneRoute(*r.current), true
}

// Navigate sets the fragment to the normalized path. The resulting change is
// delivered asynchronously; navigating to the current fragment emits nothing.
func (r *Router) Navigate(path string) {
	r.loc.SetFragment("#" + Normalize(path))
}

func (r *Router) emit() {
	route := Parse(r.loc.Fragment())
	r.current = &route
	for _, fn := range r.listeners {
		fn(cloneRoute(route))
	}
}

// Parse turns a fragment into a Route. An empty fragment is "/".
func Parse(fragment string) Route {
	raw := strings.TrimPrefix(fragment, "#")
	path, rawQuery, _ := strings.Cut(raw, "?")
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		q = url.Values{}
	}
	return Route{Path: normalizePath(path), Query: q}
}

// Normalize returns path with a single leading slash and no trailing slash,
// keeping any query string.
func Normalize(path string) string {
	path = strings.TrimPrefix(strings.TrimSpace(path), "#")
	p, q, hasQuery := strings.Cut(path, "?")
	p = normalizePath(p)
	if hasQuery && q != "" {
		return p + "?" + q
	}
	return p
}

func normalizePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return "/" + p
}

// String renders the route back into fragment form without the hash.
func (r Route) String() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}

func cloneRoute(r Route) Route {
	q := make(url.Values, len(r.Query))
	for k, v := range r.Query {
		q[k] = append([]string(nil), v...)
	}
	return Route{Path: r.Path, Query: q}
}
