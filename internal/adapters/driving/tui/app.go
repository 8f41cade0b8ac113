// Package tui implements the interactive directory browser.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goodspot-labs/goodspot-cli/internal/adapters/driving/tui/keymap"
	"github.com/goodspot-labs/goodspot-cli/internal/adapters/driving/tui/styles"
	"github.com/goodspot-labs/goodspot-cli/internal/core/domain"
	"github.com/goodspot-labs/goodspot-cli/internal/core/ports/driving"
)

// Config holds the dependencies for the TUI.
type Config struct {
	SearchService driving.SearchService

	// SuggestDebounce is how long to wait after the last keystroke
	// before fetching suggestions. Zero means the default.
	SuggestDebounce time.Duration
}

const defaultDebounce = 150 * time.Millisecond

// Messages produced by async commands.
type (
	suggestionsMsg struct {
		seq         int
		suggestions *domain.Suggestions
	}
	resultMsg struct {
		result *domain.SearchResult
	}
	debounceMsg struct {
		seq int
	}
	errMsg struct {
		err error
	}
)

// App is the bubbletea model for the directory browser.
type App struct {
	styles *styles.Styles
	keys   *keymap.KeyMap
	search driving.SearchService
	ctx    context.Context

	input    textinput.Model
	debounce time.Duration

	// seq tags the latest keystroke so stale suggestion fetches are
	// dropped.
	seq         int
	suggestions *domain.Suggestions
	result      *domain.SearchResult
	cursor      int
	browsing    bool
	err         error

	width  int
	height int
}

// New creates the TUI application model.
func New(config Config) *App {
	input := textinput.New()
	input.Placeholder = "Search places, tags, cuisines..."
	input.Focus()
	input.CharLimit = 100

	debounce := config.SuggestDebounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &App{
		styles:   styles.DefaultStyles(),
		keys:     keymap.DefaultKeyMap(),
		search:   config.SearchService,
		ctx:      context.Background(),
		input:    input,
		debounce: debounce,
		width:    80,
		height:   24,
	}
}

// Run starts the TUI event loop.
func Run(config Config) error {
	if config.SearchService == nil {
		return ErrMissingSearchService
	}
	_, err := tea.NewProgram(New(config), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case debounceMsg:
		if msg.seq != a.seq {
			return a, nil
		}
		return a, a.fetchSuggestions(msg.seq, a.input.Value())

	case suggestionsMsg:
		if msg.seq == a.seq {
			a.suggestions = msg.suggestions
		}
		return a, nil

	case resultMsg:
		a.result = msg.result
		a.cursor = 0
		a.browsing = true
		a.err = nil
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil
	}

	return a.updateInput(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Back):
		if a.browsing {
			a.browsing = false
			a.input.Focus()
			return a, textinput.Blink
		}
		return a, tea.Quit

	case key.Matches(msg, a.keys.Search) && !a.browsing:
		return a, a.runSearch(a.input.Value())

	case key.Matches(msg, a.keys.Up) && a.browsing:
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.Down) && a.browsing:
		if a.result != nil && a.cursor < len(a.result.Places)-1 {
			a.cursor++
		}
		return a, nil
	}

	if a.browsing {
		return a, nil
	}
	return a.updateInput(msg)
}

// updateInput forwards the message to the text input and schedules a
// debounced suggestion fetch when the query changed.
func (a *App) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	if a.input.Value() == before {
		return a, cmd
	}

	a.seq++
	seq := a.seq
	tick := tea.Tick(a.debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
	return a, tea.Batch(cmd, tick)
}

func (a *App) fetchSuggestions(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := a.search.Suggest(a.ctx, query)
		if err != nil {
			return errMsg{err: err}
		}
		return suggestionsMsg{seq: seq, suggestions: suggestions}
	}
}

func (a *App) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.search.Search(a.ctx, domain.SearchFilters{Query: query})
		if err != nil {
			return errMsg{err: err}
		}
		return resultMsg{result: result}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("goodspot"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Width(a.width - 4).Render(a.input.View()))
	b.WriteString("\n\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
		b.WriteString("\n\n")
	}

	if a.browsing && a.result != nil {
		b.WriteString(a.viewResults())
	} else {
		b.WriteString(a.viewSuggestions())
	}

	b.WriteString("\n")
	b.WriteString(a.viewHelp())
	return b.String()
}

func (a *App) viewResults() string {
	var b strings.Builder

	if a.result.Total == 0 {
		b.WriteString(a.styles.Muted.Render("No places found."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(a.styles.Subtitle.Render(fmt.Sprintf("%d place(s)", a.result.Total)))
	b.WriteString("\n")
	for i, place := range a.result.Places {
		line := fmt.Sprintf("%s  %s  %s", place.Name, place.PriceRange, place.Address)
		if i == a.cursor {
			b.WriteString(a.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) viewSuggestions() string {
	if a.suggestions == nil {
		return a.styles.Muted.Render("Type to see suggestions, enter to search.") + "\n"
	}

	var b strings.Builder
	if len(a.suggestions.Places) > 0 {
		b.WriteString(a.styles.Subtitle.Render("Places"))
		b.WriteString("\n")
		for _, place := range a.suggestions.Places {
			b.WriteString(a.styles.Normal.Render("  " + place.Name))
			b.WriteString(a.styles.Muted.Render("  " + place.Slug))
			b.WriteString("\n")
		}
	}
	a.writeFacet(&b, "Tags", a.suggestions.Tags)
	a.writeFacet(&b, "Amenities", a.suggestions.Amenities)
	a.writeFacet(&b, "Cuisines", a.suggestions.Cuisines)
	if b.Len() == 0 {
		return a.styles.Muted.Render("No suggestions.") + "\n"
	}
	return b.String()
}

func (a *App) writeFacet(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	b.WriteString(a.styles.Subtitle.Render(label))
	b.WriteString(" ")
	b.WriteString(a.styles.Normal.Render(strings.Join(values, ", ")))
	b.WriteString("\n")
}

func (a *App) viewHelp() string {
	var parts []string
	for _, binding := range a.keys.ShortHelp() {
		parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
	}
	return a.styles.Help.Render(strings.Join(parts, " · "))
}
