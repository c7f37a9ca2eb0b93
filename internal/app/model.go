// Package app contains the main application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/debounce"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/services/navigation"
	"github.com/riordanpawley/taskboard/internal/store"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/board"
	"github.com/riordanpawley/taskboard/internal/ui/compact"
	"github.com/riordanpawley/taskboard/internal/ui/overlay"
	"github.com/riordanpawley/taskboard/internal/ui/statusbar"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
	"github.com/riordanpawley/taskboard/internal/ui/toast"
)

// filterDebounceID tags debounce messages belonging to the filter bar
const filterDebounceID = "filter"

// toastTick is how often expired toasts are swept
const toastTick = time.Second

// ViewMode represents the current view mode
type ViewMode int

const (
	ViewModeBoard ViewMode = iota
	ViewModeCompact
)

// Model is the main application state
type Model struct {
	// Core data
	store  *store.Store
	filter *domain.Filter

	// Filter input is applied only after a quiet period
	debouncer *debounce.Debouncer

	// Navigation (cursor tracked by task id)
	nav *navigation.Service

	// UI state
	overlayStack *overlay.Stack
	viewMode     ViewMode
	toasts       []types.Toast

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// New creates the application model around an already loaded store
func New(st *store.Store, cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return Model{
		store:        st,
		filter:       domain.NewFilter(),
		debouncer:    debounce.New(filterDebounceID, cfg.Filter.DebounceDelay()),
		nav:          navigation.NewService(),
		overlayStack: overlay.NewStack(),
		styles:       styles.New(),
		config:       cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// Init starts the toast sweep
func (m Model) Init() tea.Cmd {
	return tickEvery(toastTick)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.TaskSubmittedMsg:
		return m.addTask(msg.Title)

	case overlay.FilterInputMsg:
		return m, m.debouncer.Trigger(msg.Query)

	case debounce.Msg:
		if query, ok := m.debouncer.Accept(msg); ok {
			m.filter.Query = query
			m.syncFilterBar()
			m.logger.Debug("filter applied", "query", query)
		}
		return m, nil

	case overlay.FilterClearedMsg:
		m.clearFilter()
		return m, nil

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(toastTick)
	}

	// Anything else (cursor blink etc.) belongs to the open overlay
	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// View renders the board, status bar and any overlay or toasts
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	current := m.overlayStack.Current()

	sb := statusbar.New(m.mode(), m.width, m.styles).
		WithFilter(m.filter.Query, m.visibleCount(), m.store.Len())
	bottom := []string{sb.Render()}

	// Full-width overlays (the filter bar) sit above the status bar
	if current != nil {
		if w, _ := current.Size(); w == 0 {
			bottom = append([]string{current.View()}, bottom...)
		}
	}

	if toastView := toast.View(m.toasts, m.styles, m.width); toastView != "" {
		placed := lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView)
		bottom = append([]string{placed}, bottom...)
	}

	footer := lipgloss.JoinVertical(lipgloss.Left, bottom...)
	mainHeight := max(m.height-lipgloss.Height(footer), 1)

	var main string
	if current != nil {
		if w, _ := current.Size(); w > 0 {
			main = m.renderModal(current, w, mainHeight)
		}
	}
	if main == "" {
		if m.viewMode == ViewModeCompact {
			main = m.renderCompactView(mainHeight)
		} else {
			main = m.renderBoardView(mainHeight)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, footer)
}

// renderModal draws a centered, bordered overlay in place of the board
func (m Model) renderModal(o overlay.Overlay, width, areaHeight int) string {
	content := o.View()
	if title := o.Title(); title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(title), content)
	}

	width = min(width, max(m.width-4, 10))
	box := m.styles.Overlay.
		Width(width).
		MaxHeight(areaHeight).
		Render(content)

	return lipgloss.Place(m.width, areaHeight, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderBoardView(height int) string {
	columns := m.buildColumns()

	pos := m.nav.GetPosition(columns)
	cursor := board.Cursor{
		Column: pos.Column,
		Task:   pos.Task,
	}
	if !pos.Valid {
		cursor.Task = -1
	}

	return board.Render(columns, cursor, m.styles, m.width, height)
}

func (m Model) renderCompactView(height int) string {
	columns := m.buildColumns()

	cv := compact.NewCompactView(columns, m.width, height)
	if task := m.nav.GetCurrentTask(columns); task != nil {
		cv.SetCursor(task.ID)
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(cv.Render())
}

// buildColumns converts the store into filtered board columns
func (m Model) buildColumns() []board.Column {
	return board.BuildColumns(m.store.Tasks(), m.filter)
}

// visibleCount is the number of tasks that pass the current filter
func (m Model) visibleCount() int {
	return board.CountTasks(m.buildColumns())
}

// mode reports the input mode implied by the top overlay
func (m Model) mode() types.Mode {
	switch m.overlayStack.Current().(type) {
	case *overlay.AddTaskOverlay:
		return types.ModeAdd
	case *overlay.FilterBar:
		return types.ModeFilter
	case *overlay.HelpOverlay:
		return types.ModeHelp
	default:
		return types.ModeNormal
	}
}

// handleKey processes keyboard input in normal mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.buildColumns()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen

	// Navigation
	case "j", "down":
		m.nav.MoveDown(columns)
	case "k", "up":
		m.nav.MoveUp(columns)
	case "h", "left":
		m.nav.MoveLeft(columns)
	case "l", "right":
		m.nav.MoveRight(columns)
	case "g", "home":
		m.nav.GotoTop(columns)
	case "G", "end":
		m.nav.GotoBottom(columns)

	// Tasks
	case "a", "n":
		return m, m.overlayStack.Push(overlay.NewAddTaskOverlay())
	case "enter", " ", "space", "m", ">":
		return m.advanceCurrent(columns)

	// Filter
	case "/", "f":
		bar := overlay.NewFilterBar(m.filter.Query)
		cmd := m.overlayStack.Push(bar)
		m.syncFilterBar()
		return m, cmd
	case "esc":
		// Also drops input still waiting on the debounce
		m.clearFilter()

	case "v":
		if m.viewMode == ViewModeBoard {
			m.viewMode = ViewModeCompact
		} else {
			m.viewMode = ViewModeBoard
		}

	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())
	}

	return m, nil
}

// addTask creates a task from the add overlay and selects it
func (m Model) addTask(title string) (tea.Model, tea.Cmd) {
	task, ok := m.store.Add(title)
	if !ok {
		return m, nil
	}

	m.nav.SelectTask(task.ID, task.Status.Column())
	m.syncFilterBar()
	m.addToast(types.ToastSuccess, fmt.Sprintf("Added %q", task.Title))
	return m, nil
}

// advanceCurrent moves the selected task one column to the right and keeps
// the cursor on it
func (m Model) advanceCurrent(columns []board.Column) (tea.Model, tea.Cmd) {
	current := m.nav.GetCurrentTask(columns)
	if current == nil {
		return m, nil
	}

	task, ok := m.store.Advance(current.ID)
	if !ok {
		return m, nil
	}

	m.nav.SelectTask(task.ID, task.Status.Column())
	m.addToast(types.ToastInfo, fmt.Sprintf("Moved to %s", task.Status))
	return m, nil
}

// clearFilter drops the filter immediately, discarding pending input
func (m *Model) clearFilter() {
	m.debouncer.Cancel()
	m.filter.Clear()
	m.syncFilterBar()
}

// syncFilterBar refreshes the match count shown by an open filter bar
func (m *Model) syncFilterBar() {
	if bar, ok := m.overlayStack.Current().(*overlay.FilterBar); ok {
		bar.SetMatchCount(m.visibleCount(), m.store.Len())
	}
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level types.ToastLevel, message string) {
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now()))
}

// expireToasts removes expired toasts from the list
func (m *Model) expireToasts() {
	m.toasts = types.PruneToasts(m.toasts, m.now())
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
