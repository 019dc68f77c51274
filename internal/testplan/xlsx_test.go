package testplan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/studydesk/go-services/internal/extract"
	"github.com/xuri/excelize/v2"
)

func mustTasks(t *testing.T, raw string) []extract.Object {
	t.Helper()
	tasks, err := extract.JSONArray(raw)
	require.NoError(t, err)
	return tasks
}

func TestColumns_CanonicalFirst(t *testing.T) {
	tasks := mustTasks(t, `[
		{"Owner":"QA","Duration (days)":2,"Task Name":"A"},
		{"Description":"d","Risk":"low","Task Name":"B"}
	]`)
	require.Equal(t, []string{"Task Name", "Description", "Duration (days)", "Owner", "Risk"}, Columns(tasks))
}

func TestRenderXLSX(t *testing.T) {
	tasks := mustTasks(t, `[
		{"Task Name":"A","Description":"d","Start Date":"2025-01-01","End Date":"2025-01-02","Duration (days)":1},
		{"Task Name":"B","Start Date":"2025-01-03","Duration (days)":2.5,"Blocking":true}
	]`)
	b, err := RenderXLSX(tasks)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Task Name", "Description", "Start Date", "End Date", "Duration (days)", "Blocking"}, rows[0])
	require.Equal(t, []string{"A", "d", "2025-01-01", "2025-01-02", "1"}, rows[1])
	require.Equal(t, "B", rows[2][0])
	require.Equal(t, "", rows[2][1])
	require.Equal(t, "2.5", rows[2][4])
	require.Equal(t, "TRUE", rows[2][5])
}

func TestRenderXLSX_Empty(t *testing.T) {
	b, err := RenderXLSX(nil)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Empty(t, rows)
}
