package console

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/carbonscope-dashboard-go/internal/shared/types"
)

func TestWeeklyBarRows(t *testing.T) {
	rows := weeklyBarRows([]types.DailyValue{
		{Day: "Mon", Value: 100},
		{Day: "Tue", Value: 50},
		{Day: "Wed", Value: 50},
		{Day: "Thu", Value: 0},
		{Day: "Fri", Value: 10},
	})

	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Day", "gCO2", "", "Change"}, rows[0])

	assert.Equal(t, "Mon", rows[1][0])
	assert.Equal(t, weeklyBarWidth, strings.Count(rows[1][2], "█"))
	assert.Equal(t, "", rows[1][3])

	assert.Equal(t, weeklyBarWidth/2, strings.Count(rows[2][2], "█"))
	assert.Contains(t, rows[2][3], "-50.00%")
	assert.Contains(t, rows[3][3], "0%")
	assert.Contains(t, rows[4][3], "-100.00%")
	assert.Contains(t, rows[5][3], "N/A")
}

func TestWeeklyBarRowsAllZero(t *testing.T) {
	rows := weeklyBarRows([]types.DailyValue{{Day: "Mon", Value: 0}, {Day: "Tue", Value: 0}})
	require.Len(t, rows, 3)
	assert.Equal(t, "0", rows[1][1])
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, clampPercent(-5))
	assert.Equal(t, 0.0, clampPercent(math.NaN()))
	assert.Equal(t, 42.0, clampPercent(42))
	assert.Equal(t, 100.0, clampPercent(250))
}

func TestTableRender(t *testing.T) {
	table := NewConsole().CreateTable()
	table.AddColumn("Category")
	table.AddColumn("Value")
	table.AddRow("Email", 14)

	out := table.Render()
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "Email")
	assert.Contains(t, out, "14")
}
