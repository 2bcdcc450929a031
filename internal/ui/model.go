// Package ui implements the interactive day browser.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"obsidian-logging/internal/config"
	"obsidian-logging/internal/files"
	"obsidian-logging/internal/journal"
)

// Model owns Bubble Tea state for the day browser.
type Model struct {
	ctx   context.Context
	cfg   config.Config
	vault *files.Vault
	opts  journal.Options

	currentDate time.Time
	exists      bool
	entries     []journal.Entry
	notation    journal.ListType

	mode        mode
	inputBuffer string
	inputLabel  string

	loading    bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeAdd
	modeConfirmRemove
)

type dayLoadedMsg struct {
	date     time.Time
	exists   bool
	entries  []journal.Entry
	notation journal.ListType
	err      error
}

type savedMsg struct {
	date time.Time
	err  error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, cfg config.Config, vault *files.Vault) Model {
	opts := journal.Options{
		Header: cfg.SectionHeader,
		List:   cfg.ListType,
		Format: cfg.TimeFormat,
		Labels: cfg.Labels(),
	}

	return Model{
		ctx:         ctx,
		cfg:         cfg,
		vault:       vault,
		opts:        opts,
		currentDate: today(),
		notation:    cfg.ListType,
		loading:     true,
		statusLine:  "Loading today's note...",
	}
}

// Init loads the initial day.
func (m Model) Init() tea.Cmd {
	return m.loadDayCmd(m.currentDate)
}

// Update wires state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case dayLoadedMsg:
		return m.handleDayLoaded(msg)
	case savedMsg:
		return m.handleSaved(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h", "p":
		return m.gotoDate(m.currentDate.AddDate(0, 0, -1))
	case "right", "l", "n":
		return m.gotoDate(m.currentDate.AddDate(0, 0, 1))
	case "t":
		return m.gotoDate(today())
	case "r":
		m.loading = true
		m.statusLine = "Reloading..."
		return m, m.loadDayCmd(m.currentDate)
	case "a":
		m.mode = modeAdd
		m.inputBuffer = ""
		m.inputLabel = "New entry (text; add @HH:MM to backdate; Enter to save, Esc to cancel):"
		m.statusLine = ""
		m.errorLine = ""
	case "d":
		if len(m.entries) == 0 || m.loading {
			return m, nil
		}
		m.mode = modeConfirmRemove
		m.statusLine = ""
		m.errorLine = ""
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdd:
		switch msg.Type {
		case tea.KeyEnter:
			return m.submitAdd()
		case tea.KeyEsc:
			return m.cancelInput("Cancelled.")
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyBackspace, tea.KeyCtrlH:
			if len(m.inputBuffer) > 0 {
				m.inputBuffer = trimLastRune(m.inputBuffer)
			}
		case tea.KeyCtrlU:
			m.inputBuffer = ""
		case tea.KeySpace:
			m.inputBuffer += " "
		case tea.KeyRunes:
			m.inputBuffer += string(msg.Runes)
		}
		return m, nil
	case modeConfirmRemove:
		switch msg.String() {
		case "y", "Y":
			return m.confirmRemove()
		case "n", "N", "esc":
			return m.cancelInput("Remove cancelled.")
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	m.currentDate = date
	m.loading = true
	m.statusLine = fmt.Sprintf("Loading %s...", date.Format("2006-01-02"))
	m.errorLine = ""
	return m, m.loadDayCmd(date)
}

func (m Model) cancelInput(status string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.inputBuffer = ""
	m.inputLabel = ""
	m.statusLine = status
	m.errorLine = ""
	return m, nil
}

func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.inputBuffer)
	if text == "" {
		m.errorLine = "Entry cannot be empty."
		return m, nil
	}

	clock, remainder, err := extractTimeToken(text)
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	if remainder == "" {
		m.errorLine = "Entry cannot be empty."
		return m, nil
	}

	entry := journal.Entry{Time: clock, Text: remainder}
	cmd := m.appendEntryCmd(m.currentDate, entry)

	m.mode = modeNormal
	m.inputBuffer = ""
	m.inputLabel = ""
	m.statusLine = "Saving entry..."
	m.errorLine = ""
	return m, cmd
}

func (m Model) confirmRemove() (tea.Model, tea.Cmd) {
	cmd := m.removeLastCmd(m.currentDate)
	m.mode = modeNormal
	m.statusLine = "Removing entry..."
	m.errorLine = ""
	return m, cmd
}

func (m Model) handleDayLoaded(msg dayLoadedMsg) (tea.Model, tea.Cmd) {
	if !sameDay(msg.date, m.currentDate) {
		return m, nil
	}

	m.loading = false
	if msg.err != nil {
		m.errorLine = msg.err.Error()
		return m, nil
	}

	m.exists = msg.exists
	m.entries = msg.entries
	m.notation = msg.notation
	if len(msg.entries) > 0 {
		m.statusLine = plural(len(msg.entries))
	} else {
		m.statusLine = ""
	}
	m.errorLine = ""
	return m, nil
}

func (m Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = msg.err.Error()
		m.statusLine = ""
		return m, nil
	}
	m.loading = true
	return m, m.loadDayCmd(msg.date)
}

func (m Model) loadDayCmd(date time.Time) tea.Cmd {
	vault := m.vault
	opts := m.opts
	return func() tea.Msg {
		content, exists, err := vault.Read(date)
		if err != nil {
			return dayLoadedMsg{date: date, err: err}
		}

		extraction := journal.Extract(content, opts)
		return dayLoadedMsg{
			date:     date,
			exists:   exists,
			entries:  extraction.Entries,
			notation: extraction.Detected,
		}
	}
}

func (m Model) appendEntryCmd(date time.Time, entry journal.Entry) tea.Cmd {
	vault := m.vault
	opts := m.opts
	return func() tea.Msg {
		content, exists, err := vault.Read(date)
		if err != nil {
			return savedMsg{date: date, err: err}
		}
		opts.NewDocument = !exists

		if err := vault.Write(date, journal.Synchronize(content, entry, opts)); err != nil {
			return savedMsg{date: date, err: err}
		}
		return savedMsg{date: date}
	}
}

func (m Model) removeLastCmd(date time.Time) tea.Cmd {
	vault := m.vault
	opts := m.opts
	return func() tea.Msg {
		content, exists, err := vault.Read(date)
		if err != nil || !exists {
			return savedMsg{date: date, err: err}
		}

		extraction := journal.Extract(content, opts)
		if len(extraction.Entries) == 0 {
			return savedMsg{date: date}
		}

		latest := 0
		for i, entry := range extraction.Entries {
			if !entry.Time.Before(extraction.Entries[latest].Time) {
				latest = i
			}
		}
		remaining := append([]journal.Entry{}, extraction.Entries[:latest]...)
		remaining = append(remaining, extraction.Entries[latest+1:]...)

		if err := vault.Write(date, journal.Reassemble(content, remaining, opts)); err != nil {
			return savedMsg{date: date, err: err}
		}
		return savedMsg{date: date}
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := m.currentDate.Format("Monday, 02 January 2006")
	b.WriteString(headerStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case !m.exists:
		b.WriteString("(no note)\n")
	case len(m.entries) == 0:
		b.WriteString("(no entries)\n")
	default:
		for _, line := range journal.Render(m.entries, m.notation, m.opts.Format, m.opts.Labels, true) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if m.errorLine != "" {
		b.WriteString("\n! ")
		b.WriteString(errorStyle.Render(m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	switch m.mode {
	case modeAdd:
		b.WriteString("\n")
		b.WriteString(m.inputLabel)
		b.WriteByte('\n')
		b.WriteString("> ")
		b.WriteString(m.inputBuffer)
		b.WriteByte('\n')
	case modeConfirmRemove:
		b.WriteString("\nRemove the last entry? (y/n, Esc to cancel)\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Navigation: <-/h/p prev  ->/l/n next  t today  r reload"))
	b.WriteByte('\n')
	b.WriteString(hintStyle.Render("Actions: a add entry  d remove last  q quit"))
	b.WriteByte('\n')

	return b.String()
}

// extractTimeToken pulls an optional @HH:MM token out of the input, returning
// the entry clock and the remaining text. Without a token the current wall
// clock is used.
func extractTimeToken(input string) (journal.Clock, string, error) {
	var textParts []string
	var clock journal.Clock
	haveClock := false

	for _, token := range strings.Fields(input) {
		if strings.HasPrefix(token, "@") && len(token) > 1 && !haveClock {
			parsed, err := journal.ParseClock(token[1:])
			if err != nil {
				return journal.Clock{}, "", fmt.Errorf("invalid time %q (expected HH:MM)", token[1:])
			}
			clock = parsed
			haveClock = true
			continue
		}
		textParts = append(textParts, token)
	}

	if !haveClock {
		t := time.Now()
		c, err := journal.NewClock(t.Hour(), t.Minute(), t.Second())
		if err != nil {
			return journal.Clock{}, "", err
		}
		clock = c
	}

	return clock, strings.Join(textParts, " "), nil
}

func today() time.Time {
	now := time.Now().In(time.Local)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func plural(count int) string {
	if count == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", count)
}

func trimLastRune(s string) string {
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
