package viewmodel

import (
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
)

const (
	// DefaultPlaceholderInfo is shown for categories missing from the lookup table.
	DefaultPlaceholderInfo = "No information available."
	// NoAdditionalInfo is the last fallback when nothing else has text.
	NoAdditionalInfo = "No additional information."
)

// Selection is the handle the detail modal describes.
type Selection struct {
	Name        string
	Description string
}

// CategoryLookup resolves the static description of a category.
type CategoryLookup interface {
	Lookup(name string) (entity.CategoryDetail, bool)
}

// CategoryDetails is a read-only in-memory CategoryLookup.
type CategoryDetails map[string]entity.CategoryDetail

// Lookup busca a descrição pelo nome exato da categoria.
func (c CategoryDetails) Lookup(name string) (entity.CategoryDetail, bool) {
	d, ok := c[name]
	return d, ok
}

// ModalContent is what the detail modal displays.
type ModalContent struct {
	Title string
	Body  string
	Value string
}

// DetailModal renders a selection into modal content. It keeps no selection of its own.
type DetailModal struct {
	details     CategoryLookup
	placeholder string
}

// NewDetailModal cria o modal com a tabela de descrições injetada.
func NewDetailModal(details CategoryLookup) DetailModal {
	return DetailModal{details: details, placeholder: DefaultPlaceholderInfo}
}

// WithPlaceholder replaces the generic text used for unknown categories.
// An empty placeholder lets the caller-supplied description through.
func (m DetailModal) WithPlaceholder(info string) DetailModal {
	m.placeholder = info
	return m
}

// Render returns the content for sel, or false when nothing is selected.
// Body precedence: table info, placeholder, sel.Description, NoAdditionalInfo.
func (m DetailModal) Render(sel *Selection, value string) (ModalContent, bool) {
	if sel == nil {
		return ModalContent{}, false
	}

	detail, found := entity.CategoryDetail{}, false
	if m.details != nil {
		detail, found = m.details.Lookup(sel.Name)
	}
	if !found {
		detail = entity.CategoryDetail{Title: sel.Name, Info: m.placeholder}
	}
	if detail.Title == "" {
		detail.Title = sel.Name
	}

	body := detail.Info
	if body == "" {
		body = sel.Description
	}
	if body == "" {
		body = NoAdditionalInfo
	}

	return ModalContent{Title: detail.Title, Body: body, Value: value}, true
}
