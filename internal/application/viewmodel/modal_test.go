package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
)

func TestDetailModalRendersNothingWithoutSelection(t *testing.T) {
	m := NewDetailModal(CategoryDetails(entity.DefaultCategoryDetails()))
	_, ok := m.Render(nil, "12")
	assert.False(t, ok)
}

func TestDetailModalTableTextWinsOverDescription(t *testing.T) {
	m := NewDetailModal(CategoryDetails(entity.DefaultCategoryDetails()))

	content, ok := m.Render(&Selection{Name: "Email", Description: "caller text"}, "12")
	require.True(t, ok)
	assert.Equal(t, "Email", content.Title)
	assert.Equal(t, entity.DefaultCategoryDetails()["Email"].Info, content.Body)
	assert.Equal(t, "12", content.Value)
}

func TestDetailModalFallbacks(t *testing.T) {
	table := CategoryDetails{
		"Blank": {Title: "", Info: ""},
	}

	tests := []struct {
		name      string
		modal     DetailModal
		sel       Selection
		wantTitle string
		wantBody  string
	}{
		{
			name:      "unknown category uses placeholder",
			modal:     NewDetailModal(table),
			sel:       Selection{Name: "Gaming", Description: "caller text"},
			wantTitle: "Gaming",
			wantBody:  DefaultPlaceholderInfo,
		},
		{
			name:      "empty placeholder lets description through",
			modal:     NewDetailModal(table).WithPlaceholder(""),
			sel:       Selection{Name: "Gamification", Description: "Your current gamification status"},
			wantTitle: "Gamification",
			wantBody:  "Your current gamification status",
		},
		{
			name:      "nothing anywhere",
			modal:     NewDetailModal(table).WithPlaceholder(""),
			sel:       Selection{Name: "Gaming"},
			wantTitle: "Gaming",
			wantBody:  NoAdditionalInfo,
		},
		{
			name:      "table entry without text falls to description",
			modal:     NewDetailModal(table),
			sel:       Selection{Name: "Blank", Description: "caller text"},
			wantTitle: "Blank",
			wantBody:  "caller text",
		},
		{
			name:      "nil lookup",
			modal:     NewDetailModal(nil),
			sel:       Selection{Name: "Email"},
			wantTitle: "Email",
			wantBody:  DefaultPlaceholderInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := tt.sel
			content, ok := tt.modal.Render(&sel, "")
			require.True(t, ok)
			assert.Equal(t, tt.wantTitle, content.Title)
			assert.Equal(t, tt.wantBody, content.Body)
		})
	}
}
