package board

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: 1, Title: "Alpha", Status: domain.StatusTodo},
		{ID: 2, Title: "Beta", Status: domain.StatusInProgress},
		{ID: 3, Title: "Gamma", Status: domain.StatusTodo},
		{ID: 4, Title: "Delta", Status: domain.StatusDone},
		{ID: 5, Title: "Epsilon", Status: domain.StatusInProgress},
	}
}

func ids(tasks []domain.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestBuildColumns_Partition(t *testing.T) {
	columns := BuildColumns(sampleTasks(), domain.NewFilter())

	require.Len(t, columns, 3)
	assert.Equal(t, "Todo", columns[0].Title)
	assert.Equal(t, "In Progress", columns[1].Title)
	assert.Equal(t, "Done", columns[2].Title)

	assert.Equal(t, []int64{1, 3}, ids(columns[0].Tasks))
	assert.Equal(t, []int64{2, 5}, ids(columns[1].Tasks))
	assert.Equal(t, []int64{4}, ids(columns[2].Tasks))
}

func TestBuildColumns_AlwaysThreeColumns(t *testing.T) {
	columns := BuildColumns(nil, nil)

	require.Len(t, columns, 3)
	for i, col := range columns {
		assert.Equal(t, domain.Statuses[i], col.Status)
		assert.NotNil(t, col.Tasks)
		assert.Empty(t, col.Tasks)
	}
}

func TestBuildColumns_Filtered(t *testing.T) {
	tasks := []domain.Task{
		{ID: 1, Title: "Alpha", Status: domain.StatusTodo},
		{ID: 2, Title: "Beta", Status: domain.StatusTodo},
	}

	columns := BuildColumns(tasks, &domain.Filter{Query: "alp"})

	assert.Equal(t, []int64{1}, ids(columns[0].Tasks))
	assert.Empty(t, columns[1].Tasks)
	assert.Empty(t, columns[2].Tasks)
	assert.Equal(t, 1, CountTasks(columns))
}

func TestBuildColumns_VisibleIsSubset(t *testing.T) {
	tasks := sampleTasks()
	all := make(map[int64]bool)
	for _, task := range tasks {
		all[task.ID] = true
	}

	for _, q := range []string{"", "a", "ALPHA", "zzz", "ta"} {
		columns := BuildColumns(tasks, &domain.Filter{Query: q})
		for _, col := range columns {
			for _, task := range col.Tasks {
				assert.True(t, all[task.ID], "query %q produced unknown task %d", q, task.ID)
			}
		}
		if q == "" {
			assert.Equal(t, len(tasks), CountTasks(columns))
		}
	}
}

func TestBuildColumns_SkipsInvalidStatus(t *testing.T) {
	columns := BuildColumns([]domain.Task{{ID: 1, Title: "x", Status: domain.Status(9)}}, nil)
	assert.Equal(t, 0, CountTasks(columns))
}

func TestRender(t *testing.T) {
	s := styles.New()
	columns := BuildColumns(sampleTasks(), nil)

	got := ansi.Strip(Render(columns, Cursor{Column: 0, Task: 0}, s, 120, 30))

	for _, want := range []string{"Todo (2)", "In Progress (2)", "Done (1)", "Alpha", "Beta", "Delta", "▶"} {
		assert.Contains(t, got, want)
	}
}

func TestRender_HeightBounded(t *testing.T) {
	s := styles.New()
	var tasks []domain.Task
	for i := 0; i < 40; i++ {
		tasks = append(tasks, domain.Task{ID: int64(i + 1), Title: "task", Status: domain.StatusTodo})
	}
	columns := BuildColumns(tasks, nil)

	got := Render(columns, Cursor{Column: 0, Task: 39}, s, 90, 20)
	lines := strings.Split(got, "\n")
	assert.LessOrEqual(t, len(lines), 20)
	assert.Contains(t, ansi.Strip(got), "more")
}

func TestRenderEmptyBoard(t *testing.T) {
	s := styles.New()
	got := Render([]Column{}, Cursor{}, s, 120, 30)

	if got != "" {
		t.Errorf("Render() with empty columns should return empty string, got: %q", got)
	}
}

func TestRenderEmptyColumns(t *testing.T) {
	s := styles.New()
	got := ansi.Strip(Render(BuildColumns(nil, nil), Cursor{}, s, 90, 20))
	assert.Equal(t, 3, strings.Count(got, "no tasks"))
}

func TestCursorBounds(t *testing.T) {
	// Rendering must not panic with an out-of-bounds cursor
	s := styles.New()
	columns := BuildColumns(sampleTasks(), nil)

	tests := []struct {
		name   string
		cursor Cursor
	}{
		{name: "cursor_column_out_of_bounds", cursor: Cursor{Column: 99, Task: 0}},
		{name: "cursor_task_out_of_bounds", cursor: Cursor{Column: 0, Task: 99}},
		{name: "negative_cursor", cursor: Cursor{Column: -1, Task: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = Render(columns, tt.cursor, s, 120, 30)
		})
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		cursor    int
		height    int
		wantStart int
		wantEnd   int
	}{
		{"fits", 3, 0, 20, 0, 3},
		{"overflow cursor at top", 10, 0, 18, 0, 4},
		{"overflow cursor below window", 10, 7, 18, 4, 8},
		{"overflow cursor at end", 10, 9, 18, 6, 10},
		{"tiny height still shows one", 10, 5, 2, 5, 6},
		{"inactive column", 10, -1, 18, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.total, tt.cursor, tt.height)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
