package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/pagewindow/internal/pagination"
)

// ViewState is the lifecycle state of the browse view.
type ViewState int

const (
	// ViewStateList shows the current page.
	ViewStateList ViewState = iota
	// ViewStateQuitting is entered when the user quits.
	ViewStateQuitting
)

const (
	defaultTitle = "Records"
	defaultWidth = 80
)

// BrowseModel is the Bubble Tea model for paging through records.
type BrowseModel struct {
	state   ViewState
	title   string
	records []string

	ctrl    *pagination.Controller
	items   []pagination.Item
	focused int

	keys KeyMap
	help help.Model

	width int

	startPage  int
	lastChange *pagination.PageInfo
	onChange   pagination.ChangeFunc
	logger     zerolog.Logger
}

// BrowseOption configures a BrowseModel.
type BrowseOption func(*BrowseModel)

// WithTitle sets the header title.
func WithTitle(title string) BrowseOption {
	return func(m *BrowseModel) {
		m.title = title
	}
}

// WithChangeHandler registers fn to be called after every page change.
func WithChangeHandler(fn pagination.ChangeFunc) BrowseOption {
	return func(m *BrowseModel) {
		m.onChange = fn
	}
}

// WithBrowseLogger sets the logger passed to the controller.
func WithBrowseLogger(logger zerolog.Logger) BrowseOption {
	return func(m *BrowseModel) {
		m.logger = logger
	}
}

// WithStartPage opens the view on page instead of page 1.
func WithStartPage(page int) BrowseOption {
	return func(m *BrowseModel) {
		m.startPage = page
	}
}

// NewBrowseModel creates a model paging through records. opts.TotalRecords is
// replaced by the number of records.
func NewBrowseModel(records []string, opts pagination.Options, bopts ...BrowseOption) (*BrowseModel, error) {
	m := &BrowseModel{
		state:     ViewStateList,
		title:     defaultTitle,
		records:   records,
		keys:      NewKeyMap(),
		help:      help.New(),
		width:     defaultWidth,
		startPage: 1,
		logger:    zerolog.Nop(),
	}
	for _, opt := range bopts {
		opt(m)
	}

	opts.TotalRecords = len(records)
	ctrl, err := pagination.New(opts, m.handleChange,
		pagination.WithLogger(m.logger),
		pagination.WithInitialPage(m.startPage),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pager: %w", err)
	}
	m.ctrl = ctrl
	m.refresh()
	return m, nil
}

// handleChange is the controller callback.
func (m *BrowseModel) handleChange(info pagination.PageInfo) {
	m.lastChange = &info
	m.refresh()
	if m.onChange != nil {
		m.onChange(info)
	}
}

// refresh recomputes the items, moves focus to the current page and
// disables the prev/next bindings at the ends of the range.
func (m *BrowseModel) refresh() {
	info := m.ctrl.Info()
	m.keys.Prev.SetEnabled(info.HasPrevious())
	m.keys.Next.SetEnabled(info.HasNext())

	m.items = m.ctrl.Items()
	m.focused = 0
	for i, item := range m.items {
		if item.Current {
			m.focused = i
			break
		}
	}
}

// Controller returns the underlying pagination controller.
func (m *BrowseModel) Controller() *pagination.Controller {
	return m.ctrl
}

// Items returns the pager items currently displayed.
func (m *BrowseModel) Items() []pagination.Item {
	return m.items
}

// Focused returns the index of the focused pager item.
func (m *BrowseModel) Focused() int {
	return m.focused
}

// LastChange returns the payload of the most recent page change, or nil.
func (m *BrowseModel) LastChange() *pagination.PageInfo {
	return m.lastChange
}

// State returns the current view state.
func (m *BrowseModel) State() ViewState {
	return m.state
}

// Init initializes the model.
func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.MoveLeft()
	case key.Matches(msg, m.keys.Next):
		m.ctrl.MoveRight()
	case key.Matches(msg, m.keys.First):
		m.ctrl.GoToPage(1)
	case key.Matches(msg, m.keys.Last):
		m.ctrl.GoToPage(m.ctrl.TotalPages())
	case key.Matches(msg, m.keys.FocusNext):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.FocusPrev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		if len(m.items) > 0 {
			m.ctrl.Activate(m.items[m.focused])
		}
	}
	return m, nil
}

func (m *BrowseModel) moveFocus(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.focused = ((m.focused+delta)%n + n) % n
}

// View renders the current page, the pager bar and help.
func (m *BrowseModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	info := m.ctrl.Info()
	sections := []string{
		HeaderStyle.Render(m.title) + "  " + SubtleStyle.Render(Summary(info)),
		"",
	}

	if len(m.records) == 0 {
		sections = append(sections, InfoStyle.Render("No records to display."))
	} else {
		sections = append(sections, m.renderRecords())
	}

	if len(m.items) > 0 {
		sections = append(sections, "", RenderPager(m.items, m.focused))
		sections = append(sections, SubtleStyle.Render(m.items[m.focused].Label))
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *BrowseModel) renderRecords() string {
	start, end := m.ctrl.Bounds()
	numWidth := len(strconv.Itoa(end))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := fmt.Sprintf("%*d  %s", numWidth, i+1, m.records[i])
		lines = append(lines, RecordStyle.MaxWidth(m.width).Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
