package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joefazee/countrysearch/app/countries"
)

// Loader performs the single country list load.
type Loader interface {
	Load(ctx context.Context) countries.LoadResult
}

// Options configures the terminal view.
type Options struct {
	Loader             Loader
	State              *countries.State
	PlaceholderFlagURL string
	// LoadTimeout bounds the load command. Zero means no extra bound.
	LoadTimeout time.Duration
}

// LoadedMsg carries the result of the load.
type LoadedMsg struct {
	Result countries.LoadResult
}

// Model is the Bubble Tea model of the country search.
type Model struct {
	options Options
	input   textinput.Model
	spinner spinner.Model
	width   int
	height  int

	quitting bool
}

// New creates the model. The list is empty and loading until a LoadedMsg
// arrives.
func New(opts Options) Model {
	if opts.State == nil {
		opts.State = countries.NewState()
	}

	ti := textinput.New()
	ti.Placeholder = countries.SearchPlaceholder
	ti.Prompt = "> "
	ti.CharLimit = countries.MaxQueryRunes
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = titleStyle.UnsetMarginBottom()

	return Model{
		options: opts,
		input:   ti,
		spinner: sp,
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	loader, timeout := m.options.Loader, m.options.LoadTimeout
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return LoadedMsg{Result: loader.Load(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LoadedMsg:
		m.options.State.Apply(msg.Result)
		return m, nil

	case spinner.TickMsg:
		if !m.options.State.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Query is the current search text.
func (m Model) Query() string {
	return m.input.Value()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := countries.BuildView(m.options.State.Snapshot(), m.input.Value(), m.options.PlaceholderFlagURL)

	var b strings.Builder
	b.WriteString(titleStyle.Render(view.Title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch view.Mode {
	case countries.ViewLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(messageStyle.Render(view.Message))
	case countries.ViewEmpty:
		b.WriteString(messageStyle.Render(view.Message))
	case countries.ViewGrid:
		b.WriteString(m.renderCards(view.Cards))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("esc to quit"))
	return b.String()
}

// renderCards lists as many cards as fit the window.
func (m Model) renderCards(cards []countries.Card) string {
	room := m.height - 8
	if room < 1 {
		room = 1
	}

	shown := cards
	if len(shown) > room {
		shown = shown[:room]
	}

	lines := make([]string, 0, len(shown)+1)
	for _, c := range shown {
		lines = append(lines, fmt.Sprintf("%s  %s", nameStyle.Render(c.Name), flagStyle.Render(c.FlagURL)))
	}
	if hidden := len(cards) - len(shown); hidden > 0 {
		lines = append(lines, messageStyle.Render(fmt.Sprintf("… and %d more", hidden)))
	}
	return strings.Join(lines, "\n")
}
