package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HERYORDEJY/FitQii/internal/db"
	"github.com/HERYORDEJY/FitQii/internal/models"
	"github.com/HERYORDEJY/FitQii/internal/query"
)

// Tab selects which agenda the list shows.
type Tab int

const (
	TabToday Tab = iota
	TabWeek
)

type todayLoadedMsg struct {
	sessions []models.Session
}

type weekLoadedMsg struct {
	buckets []db.DayBucket
}

type loadFailedMsg struct {
	err error
}

// ListModel is the interactive session browser: today's sessions or the
// week's day buckets, with live name search.
type ListModel struct {
	client *query.Client

	width  int
	height int

	tab      Tab
	sessions []models.Session
	buckets  []db.DayBucket
	selected int

	search    textinput.Model
	searching bool

	err error
}

// NewListModel creates the session browser backed by the query client.
func NewListModel(client *query.Client) ListModel {
	search := textinput.New()
	search.Placeholder = "search sessions"
	search.CharLimit = 64
	search.Width = 32

	return ListModel{
		client: client,
		tab:    TabToday,
		search: search,
	}
}

// Init loads today's sessions.
func (m ListModel) Init() tea.Cmd {
	return m.loadToday()
}

func (m ListModel) loadToday() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.client.Today(context.Background())
		if err != nil {
			return loadFailedMsg{err}
		}
		return todayLoadedMsg{sessions}
	}
}

func (m ListModel) loadWeek(search string) tea.Cmd {
	return func() tea.Msg {
		buckets, err := m.client.Week(context.Background(), search, time.Time{})
		if err != nil {
			return loadFailedMsg{err}
		}
		return weekLoadedMsg{buckets}
	}
}

func (m ListModel) reload() tea.Cmd {
	if m.tab == TabToday {
		return m.loadToday()
	}
	return m.loadWeek(m.search.Value())
}

// Update handles messages
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case todayLoadedMsg:
		m.sessions = msg.sessions
		m.err = nil
		if m.selected >= len(m.sessions) {
			m.selected = 0
		}
		return m, nil

	case weekLoadedMsg:
		m.buckets = msg.buckets
		m.err = nil
		return m, nil

	case loadFailedMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "tab":
			if m.tab == TabToday {
				m.tab = TabWeek
			} else {
				m.tab = TabToday
			}
			return m, m.reload()

		case "/":
			if m.tab == TabWeek {
				m.searching = true
				m.search.Focus()
				return m, textinput.Blink
			}
			return m, nil

		case "r":
			m.client.Invalidate(query.KindToday)
			m.client.Invalidate(query.KindWeek)
			return m, m.reload()

		case "up", "k":
			if m.tab == TabToday && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "j":
			if m.tab == TabToday && m.selected < len(m.sessions)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	return m, nil
}

func (m ListModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m, m.loadWeek("")

	case "enter":
		m.searching = false
		m.search.Blur()
		return m, m.loadWeek(m.search.Value())
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// View renders the list
func (m ListModel) View() string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Render("fitqii sessions")

	tabs := m.renderTabs()

	var body string
	switch {
	case m.err != nil:
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render(fmt.Sprintf("failed to load sessions: %v", m.err))
	case m.tab == TabToday:
		body = m.renderToday()
	default:
		body = m.renderWeek()
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render("tab: switch view  /: search (week)  r: refresh  j/k: move  q: quit")

	sections := []string{header, tabs}
	if m.searching || m.search.Value() != "" {
		sections = append(sections, m.search.View())
	}
	sections = append(sections, body, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m ListModel) renderTabs() string {
	active := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText))

	today := inactive.Render(" Today ")
	week := inactive.Render(" Week ")
	if m.tab == TabToday {
		today = active.Render("[Today]")
	} else {
		week = active.Render("[Week]")
	}
	return today + " " + week
}

func (m ListModel) renderToday() string {
	if len(m.sessions) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Render("No sessions today.")
	}

	var b strings.Builder
	for i, s := range m.sessions {
		line := fmt.Sprintf("#%-4d %s-%s  %-28s %-12s %s",
			s.ID, clock(s.StartTime), clock(s.EndTime), truncate(s.Name, 28), s.Category, s.Status)

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor(s.Status)))
		if i == m.selected {
			style = style.
				Foreground(lipgloss.Color(ColorAccentBright)).
				Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m ListModel) renderWeek() string {
	if len(m.buckets) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Render("Loading week...")
	}

	dayStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText))

	var b strings.Builder
	for _, bucket := range m.buckets {
		b.WriteString(dayStyle.Render(bucket.Title.Format("Mon, 02 Jan")))
		b.WriteString("\n")
		if len(bucket.Data) == 0 {
			b.WriteString(emptyStyle.Render("  (no sessions)"))
			b.WriteString("\n")
			continue
		}
		for _, s := range bucket.Data {
			line := fmt.Sprintf("  #%-4d %s-%s  %-28s %s",
				s.ID, clock(s.StartTime), clock(s.EndTime), truncate(s.Name, 28), s.Status)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(statusColor(s.Status))).
				Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func statusColor(s models.Status) string {
	switch s {
	case models.StatusCompleted:
		return ColorSuccess
	case models.StatusCancelled:
		return ColorWarning
	case models.StatusActive:
		return ColorAccentBright
	default:
		return ColorPrimaryText
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func clock(ms int64) string {
	if ms == 0 {
		return "--:--"
	}
	return time.UnixMilli(ms).Format("15:04")
}
