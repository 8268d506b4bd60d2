package viewmodel

// NavItem is one sidebar entry.
type NavItem struct {
	Text string
	Path string
}

// NavItems are the sidebar entries, one per route.
func NavItems() []NavItem {
	items := make([]NavItem, 0, len(Routes))
	for _, r := range Routes {
		items = append(items, NavItem{Text: r.Title, Path: r.Path})
	}
	return items
}

// SidebarState is what observers see after a sidebar transition.
type SidebarState struct {
	Open  bool
	Route Route
}

// Sidebar is the slide-out navigation panel.
type Sidebar struct {
	open     bool
	items    []NavItem
	router   *Router
	observer func(SidebarState)
}

// NewSidebar cria a barra lateral fechada sobre o router informado.
func NewSidebar(router *Router) *Sidebar {
	return &Sidebar{items: NavItems(), router: router}
}

// Observe registers a callback run once after every transition.
func (s *Sidebar) Observe(fn func(SidebarState)) {
	s.observer = fn
}

// Items returns the entries in display order.
func (s *Sidebar) Items() []NavItem {
	return s.items
}

// IsOpen reports whether the panel is visible.
func (s *Sidebar) IsOpen() bool {
	return s.open
}

// Toggle abre ou fecha o painel.
func (s *Sidebar) Toggle() {
	s.open = !s.open
	s.emit()
}

// Close fecha o painel sem navegar.
func (s *Sidebar) Close() {
	if !s.open {
		return
	}
	s.open = false
	s.emit()
}

// Select navigates to item i and closes the panel in the same transition;
// observers are notified once, after both changes.
func (s *Sidebar) Select(i int) (Route, bool) {
	if i < 0 || i >= len(s.items) {
		return s.router.Current(), false
	}
	// Os itens vêm da tabela de rotas, então a navegação não falha.
	route, _ := s.router.Navigate(s.items[i].Path)
	s.open = false
	s.emit()
	return route, true
}

func (s *Sidebar) emit() {
	if s.observer != nil {
		s.observer(SidebarState{Open: s.open, Route: s.router.Current()})
	}
}
