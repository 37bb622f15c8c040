// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen tabbed views over the remote relationship-OS API
package tui

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/kindredhq/kindred/api"
	"github.com/kindredhq/kindred/engine"
	"github.com/kindredhq/kindred/models"
	"github.com/kindredhq/kindred/session"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewLogin ViewMode = iota
	ViewContacts
	ViewFollowups
	ViewInteractions
	ViewIntros
	ViewAnalytics
)

var tabOrder = []ViewMode{ViewContacts, ViewFollowups, ViewInteractions, ViewIntros, ViewAnalytics}

var tabNames = map[ViewMode]string{
	ViewContacts:     "Contacts",
	ViewFollowups:    "Follow-ups",
	ViewInteractions: "Interactions",
	ViewIntros:       "Intros",
	ViewAnalytics:    "Analytics",
}

// Model is the main bubbletea model. Each view owns its own copy of
// fetched data; switching views re-fetches rather than sharing a cache,
// so staleness is bounded by a tab switch.
type Model struct {
	client  *api.Client
	session *session.Store

	viewMode ViewMode

	// Contacts view state
	searchInput  textinput.Model
	searchActive bool
	filter       engine.Filter
	sortMode     engine.SortMode
	contacts     []models.Contact
	selectedRow  int

	// Followups / interactions / intros / analytics state
	interactions []models.Interaction
	intros       []models.Introduction
	introNames   map[string]string
	metrics      models.DashboardMetrics
	haveMetrics  bool

	// Login form state
	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int

	loading bool
	err     error

	width  int
	height int
}

// NewModel creates a new TUI model. If no session is held the login view
// is shown first; token presence is the only gate applied client-side.
func NewModel(client *api.Client, sess *session.Store) Model {
	search := textinput.New()
	search.Placeholder = "search name, email, company, tags, notes"
	search.CharLimit = 80

	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	mode := ViewLogin
	if sess.IsAuthenticated() {
		mode = ViewContacts
	}

	return Model{
		client:        client,
		session:       sess,
		viewMode:      mode,
		searchInput:   search,
		emailInput:    email,
		passwordInput: password,
		sortMode:      engine.SortName,
		width:         80,
		height:        24,
	}
}

// Run starts the interactive interface.
func Run(client *api.Client, sess *session.Store) error {
	p := tea.NewProgram(NewModel(client, sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ----- messages ------------------------------------------------------

type contactsLoadedMsg struct {
	contacts []models.Contact
	err      error
}

type interactionsLoadedMsg struct {
	interactions []models.Interaction
	contacts     []models.Contact
	err          error
}

type introsLoadedMsg struct {
	intros   []models.Introduction
	contacts []models.Contact
	err      error
}

type dashboardLoadedMsg struct {
	metrics models.DashboardMetrics
	err     error
}

type loginDoneMsg struct{ err error }

// ----- commands ------------------------------------------------------

const fetchTimeout = 20 * time.Second

func (m Model) fetchContacts() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		contacts, err := client.AllContacts(ctx)
		return contactsLoadedMsg{contacts: contacts, err: err}
	}
}

// fetchInteractions pulls interactions and contacts concurrently and
// joins before the view renders; response ordering is not significant.
func (m Model) fetchInteractions() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		var msg interactionsLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.interactions, err = client.ListInteractions(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.contacts, err = client.AllContacts(gctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (m Model) fetchIntros() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		var msg introsLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.intros, err = client.SuggestedIntroductions(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.contacts, err = client.AllContacts(gctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (m Model) fetchDashboard() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		metrics, err := client.Dashboard(ctx)
		return dashboardLoadedMsg{metrics: metrics, err: err}
	}
}

func (m Model) submitLogin() tea.Cmd {
	sess := m.session
	email := m.emailInput.Value()
	password := m.passwordInput.Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return loginDoneMsg{err: sess.Login(ctx, email, password)}
	}
}

// ----- bubbletea plumbing ---------------------------------------------

func (m Model) Init() tea.Cmd {
	if m.viewMode == ViewContacts {
		return m.fetchContacts()
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case contactsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.contacts = msg.contacts
		m.selectedRow = 0
		return m, nil
	case interactionsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.interactions = msg.interactions
		m.contacts = msg.contacts
		return m, nil
	case introsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.intros = msg.intros
		sort.SliceStable(m.intros, func(i, j int) bool {
			return m.intros[i].DisplayScore() > m.intros[j].DisplayScore()
		})
		m.introNames = displayNames(msg.contacts)
		return m, nil
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.metrics = msg.metrics
		m.haveMetrics = msg.err == nil
		return m, nil
	case loginDoneMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.viewMode = ViewContacts
			m.loading = true
			return m, m.fetchContacts()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.viewMode == ViewLogin {
		return m.renderLoginView()
	}

	var body string
	switch m.viewMode {
	case ViewContacts:
		body = m.renderContactsView()
	case ViewFollowups:
		body = m.renderFollowupsView()
	case ViewInteractions:
		body = m.renderInteractionsView()
	case ViewIntros:
		body = m.renderIntrosView()
	case ViewAnalytics:
		body = m.renderAnalyticsView()
	}

	return titleStyle.Render("KINDRED") + "\n\n" + m.renderTabs() + "\n\n" + body
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.viewMode == ViewLogin {
		return m.handleLoginKeys(msg)
	}
	if m.searchActive {
		return m.handleSearchKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		return m.switchTab(msg.String() == "tab")
	case "r":
		return m.refresh()
	}

	if m.viewMode == ViewContacts {
		return m.handleContactsKeys(msg)
	}
	return m, nil
}

func (m Model) switchTab(forward bool) (tea.Model, tea.Cmd) {
	idx := 0
	for i, v := range tabOrder {
		if v == m.viewMode {
			idx = i
		}
	}
	if forward {
		idx = (idx + 1) % len(tabOrder)
	} else {
		idx = (idx - 1 + len(tabOrder)) % len(tabOrder)
	}
	m.viewMode = tabOrder[idx]
	return m.refresh()
}

// refresh re-fetches the data the current view owns.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	m.loading = true
	m.err = nil
	switch m.viewMode {
	case ViewContacts, ViewFollowups:
		return m, m.fetchContacts()
	case ViewInteractions:
		return m, m.fetchInteractions()
	case ViewIntros:
		return m, m.fetchIntros()
	case ViewAnalytics:
		return m, m.fetchDashboard()
	}
	return m, nil
}

func (m Model) renderTabs() string {
	var rendered []string
	for _, v := range tabOrder {
		if v == m.viewMode {
			rendered = append(rendered, tabActiveStyle.Render(tabNames[v]))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tabNames[v]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func displayNames(contacts []models.Contact) map[string]string {
	names := make(map[string]string, len(contacts))
	for _, c := range contacts {
		names[c.ID.String()] = c.DisplayName()
	}
	return names
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
