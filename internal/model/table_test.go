package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Require(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		require []string
		missing []string
	}{
		{
			name:    "all present",
			columns: []string{"key", "value"},
			require: []string{"key", "value"},
		},
		{
			name:    "one missing",
			columns: []string{"key"},
			require: []string{"key", "value"},
			missing: []string{"value"},
		},
		{
			name:    "empty table misses everything",
			columns: nil,
			require: []string{"상호", "주소"},
			missing: []string{"상호", "주소"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(tt.columns)
			err := table.Require("test", tt.require...)
			if len(tt.missing) == 0 {
				assert.NoError(t, err)
				return
			}
			var missingErr *MissingColumnsError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, "test", missingErr.Table)
			assert.Equal(t, tt.missing, missingErr.Missing)
		})
	}
}

func TestTable_GetSet(t *testing.T) {
	table := NewTable([]string{"a", "b", "c"})
	table.Rows = append(table.Rows, []string{"1"}) // ragged on purpose

	assert.Equal(t, "1", table.Get(0, "a"))
	assert.Equal(t, "", table.Get(0, "c"), "ragged cell reads as empty")
	assert.Equal(t, "", table.Get(5, "a"), "out of range row reads as empty")
	assert.Equal(t, "", table.Get(0, "nope"), "unknown column reads as empty")

	table.Set(0, "c", "x")
	assert.Equal(t, "x", table.Get(0, "c"), "set pads the ragged row")
	assert.Equal(t, "", table.Get(0, "b"))

	table.Set(0, "nope", "x") // ignored
	table.Set(9, "a", "x")    // ignored
	assert.Len(t, table.Rows, 1)
}

func TestTable_Normalize(t *testing.T) {
	table := NewTable([]string{"a", "b"})
	table.Rows = [][]string{
		{"1"},
		{"1", "2", "3"},
		{},
	}
	table.Normalize()

	for _, row := range table.Rows {
		assert.Len(t, row, 2)
	}
	assert.Equal(t, "2", table.Get(1, "b"))
}

func TestTable_Append(t *testing.T) {
	table := NewTable([]string{"a", "b", "c"})
	table.Append("1")
	table.Append("1", "2", "3", "4")

	assert.Equal(t, [][]string{{"1", "", ""}, {"1", "2", "3"}}, table.Rows)
}

func TestTable_CloneIsolation(t *testing.T) {
	table := NewTable([]string{"a"})
	table.Append("original")

	clone := table.Clone()
	clone.Set(0, "a", "changed")
	clone.Columns[0] = "z"

	assert.Equal(t, "original", table.Get(0, "a"))
	assert.Equal(t, "a", table.Columns[0])
}

func TestMissingColumnsError_Message(t *testing.T) {
	err := error(&MissingColumnsError{Table: "biff_2024", Missing: []string{"상호"}})
	assert.Contains(t, err.Error(), "biff_2024")

	var target *MissingColumnsError
	assert.True(t, errors.As(err, &target))
}
