package viewmodel

import (
	"fmt"
	"sync"

	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

// Palette modes accepted by NewPalette.
const (
	PalettePositional = "positional"
	PaletteStable     = "stable"
)

// DefaultPaletteColors are cycled over the category chart segments.
var DefaultPaletteColors = []string{"#ffeb3b", "#00c49f", "#ffbb28", "#ff7300", "#b300b3", "#3aaafa"}

// Palette assigns a color to a chart segment.
type Palette interface {
	Color(index int, name string) string
}

// PositionalPalette colors by index modulo palette length; reordering the data recolors it.
type PositionalPalette struct {
	colors []string
}

// Color retorna a cor da posição index.
func (p PositionalPalette) Color(index int, _ string) string {
	if len(p.colors) == 0 || index < 0 {
		return ""
	}
	return p.colors[index%len(p.colors)]
}

// StablePalette gives each category name the next free color the first time it is seen
// and keeps it for the palette's lifetime, so reordering does not recolor.
type StablePalette struct {
	colors []string

	mu       sync.Mutex
	assigned map[string]string
	next     int
}

// Color retorna a cor já atribuída ao nome ou atribui a próxima.
func (p *StablePalette) Color(_ int, name string) string {
	if len(p.colors) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.assigned[name]; ok {
		return c
	}
	c := p.colors[p.next%len(p.colors)]
	p.assigned[name] = c
	p.next++
	return c
}

// NewPalette cria a paleta do modo indicado; modo vazio equivale a positional.
func NewPalette(mode string, colors []string) (Palette, error) {
	if len(colors) == 0 {
		colors = DefaultPaletteColors
	}
	switch mode {
	case "", PalettePositional:
		return PositionalPalette{colors: colors}, nil
	case PaletteStable:
		return &StablePalette{colors: colors, assigned: map[string]string{}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownPaletteMode, mode)
	}
}
