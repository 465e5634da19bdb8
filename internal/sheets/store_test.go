package sheets

import (
	"testing"

	"github.com/seongmin-k/biffplan/internal/common"
	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFromValues(t *testing.T) {
	tests := []struct {
		name     string
		values   [][]any
		wantCols []string
		wantRows [][]string
	}{
		{
			name:     "fully empty sheet",
			values:   nil,
			wantCols: []string{},
			wantRows: [][]string{},
		},
		{
			name:     "header only",
			values:   [][]any{{"key", "value"}},
			wantCols: []string{"key", "value"},
			wantRows: [][]string{},
		},
		{
			name: "ragged rows pad with empty strings",
			values: [][]any{
				{"상호", "주소", "비고"},
				{"모모스커피"},
				{"광안리회센터", "부산 수영구", "대기 김"},
			},
			wantCols: []string{"상호", "주소", "비고"},
			wantRows: [][]string{
				{"모모스커피", "", ""},
				{"광안리회센터", "부산 수영구", "대기 김"},
			},
		},
		{
			name: "non-string cells coerce to text",
			values: [][]any{
				{"지원비용"},
				{float64(12000)},
				{nil},
				{true},
			},
			wantCols: []string{"지원비용"},
			wantRows: [][]string{{"12000"}, {""}, {"true"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := tableFromValues(tt.values)
			require.NotNil(t, table)
			assert.Len(t, table.Columns, len(tt.wantCols))
			for i, c := range tt.wantCols {
				assert.Equal(t, c, table.Columns[i])
			}
			require.Len(t, table.Rows, len(tt.wantRows))
			for i, row := range tt.wantRows {
				assert.Equal(t, row, table.Rows[i])
			}
		})
	}
}

func TestValuesFromTable(t *testing.T) {
	table := model.NewTable([]string{"상호", "주소", "비고"})
	table.Rows = append(table.Rows,
		[]string{"모모스커피"},
		[]string{"광안리회센터", "부산 수영구", "대기 김", "넘침"},
	)

	values := valuesFromTable(table)
	require.Len(t, values, 3)
	assert.Equal(t, []any{"상호", "주소", "비고"}, values[0])
	assert.Equal(t, []any{"모모스커피", "", ""}, values[1], "short rows pad to the column count")
	assert.Equal(t, []any{"광안리회센터", "부산 수영구", "대기 김"}, values[2], "long rows truncate")
}

func TestValuesRange(t *testing.T) {
	assert.Equal(t, "'movies'!A1:ZZ", valuesRange("movies"))
	assert.Equal(t, "'my''sheet'!A1:ZZ", valuesRange("my'sheet"), "quotes escape")
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorIs(t, cfg.Validate(), common.ErrMissingConfig, "no auth configured")

	cfg.ServiceAccountPath = "/tmp/key.json"
	assert.NoError(t, cfg.Validate())

	cfg.ClientID, cfg.ClientSecret, cfg.RefreshToken = "id", "secret", "token"
	assert.ErrorIs(t, cfg.Validate(), common.ErrInvalidConfig, "both auth methods configured")

	cfg.ServiceAccountPath = ""
	cfg.CacheTTL = -1
	assert.ErrorIs(t, cfg.Validate(), common.ErrInvalidConfig)
}

func TestConfigLoadFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "/tmp/env-key.json")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "env-spreadsheet")
	t.Setenv("GOOGLE_SHEETS_CLIENT_ID", "env-client")

	cfg := DefaultConfig()
	cfg.ClientID = "file-client"
	cfg.LoadFromEnv()

	assert.Equal(t, "/tmp/env-key.json", cfg.ServiceAccountPath)
	assert.Equal(t, "env-spreadsheet", cfg.SpreadsheetID)
	assert.Equal(t, "file-client", cfg.ClientID, "already-set fields win over env")
}
