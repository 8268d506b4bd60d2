package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

func TestResolveRoutes(t *testing.T) {
	tests := []struct {
		path  string
		view  ViewID
		found bool
	}{
		{"/", ViewDashboard, true},
		{"/gamification", ViewGamificationInfo, true},
		{"/tips", ViewTips, true},
		{"/reports", ViewReports, true},
		{"/about", ViewAbout, true},
		{"/about/", ViewAbout, true},
		{"/settings", ViewNotFound, false},
		{"", ViewNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, ok := Resolve(tt.path)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.view, r.View)
		})
	}
}

func TestRouterNavigateUnknownPath(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, ViewDashboard, r.Current().View)

	route, err := r.Navigate("/nope")
	assert.ErrorIs(t, err, types.ErrUnknownView)
	assert.Equal(t, ViewNotFound, route.View)
	assert.Equal(t, "/nope", r.Current().Path)
}

func TestSidebarSelectNavigatesAndClosesAtomically(t *testing.T) {
	for i, item := range NavItems() {
		t.Run(item.Path, func(t *testing.T) {
			router := NewRouter()
			s := NewSidebar(router)

			var seen []SidebarState
			s.Observe(func(st SidebarState) { seen = append(seen, st) })

			s.Toggle()
			require.True(t, s.IsOpen())
			seen = nil

			route, ok := s.Select(i)
			require.True(t, ok)
			assert.Equal(t, item.Path, route.Path)
			assert.False(t, s.IsOpen())
			assert.Equal(t, item.Path, router.Current().Path)

			require.Len(t, seen, 1, "one notification per selection")
			assert.False(t, seen[0].Open)
			assert.Equal(t, item.Path, seen[0].Route.Path)
		})
	}
}

func TestSidebarToggleAndClose(t *testing.T) {
	s := NewSidebar(NewRouter())
	calls := 0
	s.Observe(func(SidebarState) { calls++ })

	s.Toggle()
	assert.True(t, s.IsOpen())
	s.Toggle()
	assert.False(t, s.IsOpen())
	s.Close()
	assert.Equal(t, 2, calls, "closing a closed sidebar is silent")

	_, ok := s.Select(len(s.Items()))
	assert.False(t, ok)
}

func TestNavItemsMatchRoutes(t *testing.T) {
	items := NavItems()
	require.Len(t, items, 5)
	assert.Equal(t, NavItem{Text: "Dashboard", Path: "/"}, items[0])
	assert.Equal(t, NavItem{Text: "About Us", Path: "/about"}, items[4])
}
