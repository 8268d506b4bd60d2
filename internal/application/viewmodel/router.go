package viewmodel

import (
	"fmt"
	"strings"

	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

// ViewID identifies one of the top-level views.
type ViewID string

const (
	ViewDashboard        ViewID = "dashboard"
	ViewGamificationInfo ViewID = "gamification-info"
	ViewTips             ViewID = "tips"
	ViewReports          ViewID = "reports"
	ViewAbout            ViewID = "about"
	ViewNotFound         ViewID = "not-found"
)

// Route maps a path to a view.
type Route struct {
	Path  string
	Title string
	View  ViewID
}

// Routes is the fixed route table.
var Routes = []Route{
	{Path: "/", Title: "Dashboard", View: ViewDashboard},
	{Path: "/gamification", Title: "Gamification", View: ViewGamificationInfo},
	{Path: "/tips", Title: "Tips", View: ViewTips},
	{Path: "/reports", Title: "Reports", View: ViewReports},
	{Path: "/about", Title: "About Us", View: ViewAbout},
}

// NotFoundRoute is returned for paths outside the table.
var NotFoundRoute = Route{Title: "Not Found", View: ViewNotFound}

// Router holds the current route. Unmatched paths resolve to the not-found view.
type Router struct {
	current Route
}

// NewRouter cria um router posicionado no dashboard.
func NewRouter() *Router {
	return &Router{current: Routes[0]}
}

// Resolve maps a path to its route. A single trailing slash is ignored.
func Resolve(path string) (Route, bool) {
	p := path
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	for _, r := range Routes {
		if r.Path == p {
			return r, true
		}
	}
	nf := NotFoundRoute
	nf.Path = path
	return nf, false
}

// Navigate moves to path. Unknown paths still navigate, to the not-found view,
// and the returned error wraps types.ErrUnknownView.
func (r *Router) Navigate(path string) (Route, error) {
	route, ok := Resolve(path)
	r.current = route
	if !ok {
		return route, fmt.Errorf("%w: %s", types.ErrUnknownView, path)
	}
	return route, nil
}

// Current returns the active route.
func (r *Router) Current() Route {
	return r.current
}
