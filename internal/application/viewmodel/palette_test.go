package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

func TestPositionalPaletteCyclesByIndex(t *testing.T) {
	p, err := NewPalette(PalettePositional, nil)
	require.NoError(t, err)

	for i := 0; i < 2*len(DefaultPaletteColors); i++ {
		assert.Equal(t, DefaultPaletteColors[i%len(DefaultPaletteColors)], p.Color(i, "ignored"))
	}
}

func TestPositionalPaletteRecolorsOnReorder(t *testing.T) {
	p, err := NewPalette("", nil)
	require.NoError(t, err)

	c := NewCategorySelector(p)
	c.SetData(sampleCategories)
	before := c.Color(0)

	c.SetData([]entity.CategoryDatum{sampleCategories[1], sampleCategories[0]})
	assert.Equal(t, before, c.Color(0))
	assert.NotEqual(t, before, c.Color(1))
}

func TestStablePaletteKeepsColorPerName(t *testing.T) {
	p, err := NewPalette(PaletteStable, []string{"red", "green"})
	require.NoError(t, err)

	c := NewCategorySelector(p)
	c.SetData(sampleCategories)
	email := c.Color(0)
	storage := c.Color(1)

	c.SetData([]entity.CategoryDatum{sampleCategories[1], sampleCategories[0]})
	assert.Equal(t, storage, c.Color(0))
	assert.Equal(t, email, c.Color(1))
	assert.Equal(t, "red", email)
	assert.Equal(t, "green", storage)
}

func TestNewPaletteRejectsUnknownMode(t *testing.T) {
	_, err := NewPalette("rainbow", nil)
	assert.ErrorIs(t, err, types.ErrUnknownPaletteMode)
}
