package viewmodel

import (
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
)

// Pie segment radii.
const (
	OuterRadius       = 48
	ActiveOuterRadius = 68
)

// ModalState is the parent-owned open flag and selection of a detail modal.
type ModalState struct {
	selected *Selection
	open     bool
}

// Open seleciona e abre o modal num único passo.
func (s *ModalState) Open(sel Selection) {
	s.selected = &sel
	s.open = true
}

// Close fecha o modal e limpa a seleção.
func (s *ModalState) Close() {
	s.selected = nil
	s.open = false
}

// IsOpen reports whether the modal is visible.
func (s *ModalState) IsOpen() bool {
	return s.open && s.selected != nil
}

// Selected returns the current selection, or nil when the modal is closed.
func (s *ModalState) Selected() *Selection {
	if !s.IsOpen() {
		return nil
	}
	sel := *s.selected
	return &sel
}

// CategorySelector tracks the hovered segment and the clicked datum of the category chart.
type CategorySelector struct {
	data    []entity.CategoryDatum
	active  int
	clicked *entity.CategoryDatum
	modal   ModalState
	palette Palette
}

// NewCategorySelector cria o seletor sem hover e sem seleção.
func NewCategorySelector(palette Palette) *CategorySelector {
	if palette == nil {
		palette = PositionalPalette{colors: DefaultPaletteColors}
	}
	return &CategorySelector{active: -1, palette: palette}
}

// SetData replaces the chart data. A hover index past the new end is cleared;
// an open modal keeps showing the datum it was opened with.
func (c *CategorySelector) SetData(data []entity.CategoryDatum) {
	c.data = append([]entity.CategoryDatum(nil), data...)
	if c.active >= len(c.data) {
		c.active = -1
	}
}

// Data returns the chart data in display order.
func (c *CategorySelector) Data() []entity.CategoryDatum {
	return c.data
}

// Len returns the number of segments.
func (c *CategorySelector) Len() int {
	return len(c.data)
}

// Hover makes segment i the only emphasized one.
func (c *CategorySelector) Hover(i int) bool {
	if i < 0 || i >= len(c.data) {
		return false
	}
	c.active = i
	return true
}

// Leave clears the hover emphasis, as when the pointer leaves the chart.
func (c *CategorySelector) Leave() {
	c.active = -1
}

// ActiveIndex returns the hovered segment, if any.
func (c *CategorySelector) ActiveIndex() (int, bool) {
	if c.active < 0 {
		return 0, false
	}
	return c.active, true
}

// Click opens the detail modal with exactly the datum at index i. Hover state is untouched.
func (c *CategorySelector) Click(i int) bool {
	if i < 0 || i >= len(c.data) {
		return false
	}
	d := c.data[i]
	c.clicked = &d
	c.modal.Open(Selection{Name: d.Name})
	return true
}

// Clicked returns the datum the open modal was opened with.
func (c *CategorySelector) Clicked() (entity.CategoryDatum, bool) {
	if c.clicked == nil || !c.modal.IsOpen() {
		return entity.CategoryDatum{}, false
	}
	return *c.clicked, true
}

// CloseModal fecha o modal e esquece o dado clicado.
func (c *CategorySelector) CloseModal() {
	c.modal.Close()
	c.clicked = nil
}

// Modal exposes the selector's modal state for rendering.
func (c *CategorySelector) Modal() *ModalState {
	return &c.modal
}

// OuterRadius returns the emphasized radius for the active segment.
func (c *CategorySelector) OuterRadius(i int) int {
	if i == c.active {
		return ActiveOuterRadius
	}
	return OuterRadius
}

// Color returns the palette color of segment i.
func (c *CategorySelector) Color(i int) string {
	name := ""
	if i >= 0 && i < len(c.data) {
		name = c.data[i].Name
	}
	return c.palette.Color(i, name)
}
