package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"skycast/alerts"
	"skycast/api"
	"skycast/charts"
	"skycast/config"
	"skycast/event"
	"skycast/export"
	"skycast/geo"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab indices
const (
	TabDashboard = iota
	TabForecast
	TabHistorical
	TabCompare
	TabEvent
	TabAlerts
	tabCount
)

// Operation keys for loading/errors/generation maps
const (
	opDashboard  = "dashboard"
	opHistorical = "historical"
	opCompare    = "compare"
	opAdvice     = "advice"
	opAlerts     = "alerts"
)

// Message types. Fetch results carry the generation of the request that
// produced them; stale generations are discarded in Update.
type (
	dashboardMsg struct {
		snap *api.Snapshot
		gen  int
		err  error
	}
	historicalMsg struct {
		days []api.HistoricalDay
		gen  int
		err  error
	}
	compareMsg struct {
		entries []api.ComparisonEntry
		gen     int
		err     error
	}
	adviceMsg struct {
		advice *api.Advice
		gen    int
		err    error
	}
	alertsMsg struct {
		items []alerts.Alert
		gen   int
		err   error
	}
	searchResolvedMsg struct {
		query string
		place geo.Place
		err   error
	}
	reverseLabelMsg struct {
		lat   float64
		lon   float64
		label string
	}
	locateMsg struct {
		place geo.Place
		err   error
	}
	exportDoneMsg struct {
		path string
		err  error
	}
	chartSavedMsg struct {
		path string
		err  error
	}
	configSavedMsg struct{ err error }
	icsLoadedMsg   struct {
		input event.Input
		err   error
	}
	tickMsg time.Time
)

// clearStatusMsg clears the status bar message
type clearStatusMsg struct{}

// Input modes for the shared footer text input
const (
	modeNone = iota
	modeSearch
	modeCompare
	modeICS
)

// Model is the root bubbletea model and the single owner of all client
// state: location, unit preference, compare set, last snapshot, chart slots.
type Model struct {
	cfg       *config.Config
	client    *api.Client
	geocoder  *geo.Client
	alertFeed *alerts.Client
	slots     *charts.Slots

	width     int
	height    int
	activeTab int

	// Location/unit state
	loc     LocationState
	unit    api.Unit
	compare CompareSet

	// Data
	snapshot    *api.Snapshot
	historical  []api.HistoricalDay
	comparison  []api.ComparisonEntry
	advice      *api.Advice
	activeAlert []alerts.Alert
	lastUpdated time.Time

	// Fetch state
	loading map[string]bool
	errors  map[string]string
	gen     map[string]int

	// Shared footer input + event form
	inputMode int
	input     textinput.Model
	form      eventForm

	statusMsg    string
	statusExpiry time.Time

	viewports [tabCount]viewport.Model
	spinner   spinner.Model
}

func NewModel(cfg *config.Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StyleSpinner

	vps := [tabCount]viewport.Model{}
	for i := range vps {
		vps[i] = viewport.New(80, 30)
	}

	input := textinput.New()
	input.CharLimit = 120

	loc := LocationState{Label: cfg.Location.Label}
	if cfg.Location.HasCoords() {
		lat, lon := cfg.Location.Latitude, cfg.Location.Longitude
		loc.Lat, loc.Lon = &lat, &lon
	}

	var compare CompareSet
	for _, label := range cfg.Compare {
		_ = compare.Add(label)
	}

	return Model{
		cfg:       cfg,
		client:    api.NewClient(cfg.BackendURL),
		geocoder:  geo.NewClient(),
		alertFeed: alerts.NewClient(),
		slots:     charts.NewSlots(),
		loc:       loc,
		unit:      api.ParseUnit(cfg.Unit),
		compare:   compare,
		loading:   make(map[string]bool),
		errors:    make(map[string]string),
		gen:       make(map[string]int),
		input:     input,
		form:      newEventForm(),
		spinner:   sp,
		viewports: vps,
		activeTab: TabDashboard,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		m.fetchDashboard(),
		tickEvery(time.Duration(m.cfg.RefreshSec) * time.Second),
	}
	if m.loc.HasCoords() {
		cmds = append(cmds, m.fetchAlerts())
	}
	return tea.Batch(cmds...)
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// query builds the shared request parameters from current state; coordinates
// win over the free-text label when both are known.
func (m Model) query() api.Query {
	q := api.Query{
		Location: m.loc.Label,
		Hours:    m.cfg.Hours,
		Days:     m.cfg.Days,
		Unit:     m.unit,
	}
	if m.loc.HasCoords() {
		q.Lat, q.Lon = m.loc.Lat, m.loc.Lon
	}
	return q
}

// ─── Fetch commands ───────────────────────────────────────────────────────────

func (m Model) fetchDashboard() tea.Cmd {
	m.loading[opDashboard] = true
	m.gen[opDashboard]++
	gen := m.gen[opDashboard]
	q := m.query()
	client := m.client
	return func() tea.Msg {
		snap, err := client.Dashboard(context.Background(), q)
		return dashboardMsg{snap: snap, gen: gen, err: err}
	}
}

func (m Model) fetchHistorical() tea.Cmd {
	m.loading[opHistorical] = true
	m.gen[opHistorical]++
	gen := m.gen[opHistorical]
	q := m.query()
	q.Days = m.cfg.HistoryDays
	client := m.client
	return func() tea.Msg {
		days, err := client.Historical(context.Background(), q)
		return historicalMsg{days: days, gen: gen, err: err}
	}
}

func (m Model) fetchCompare() tea.Cmd {
	if m.compare.Len() == 0 {
		return nil
	}
	m.loading[opCompare] = true
	m.gen[opCompare]++
	gen := m.gen[opCompare]
	locations := append([]string(nil), m.compare.Labels()...)
	unit := m.unit
	client := m.client
	return func() tea.Msg {
		entries, err := client.Compare(context.Background(), locations, unit)
		return compareMsg{entries: entries, gen: gen, err: err}
	}
}

func (m Model) fetchAdvice(in event.Input) tea.Cmd {
	m.loading[opAdvice] = true
	m.gen[opAdvice]++
	gen := m.gen[opAdvice]
	lat, lon := *m.loc.Lat, *m.loc.Lon
	unit := m.unit
	client := m.client
	return func() tea.Msg {
		advice, err := client.EventAdvice(context.Background(),
			lat, lon, in.WindowStart(), in.WindowEnd(), in.Type, unit)
		return adviceMsg{advice: advice, gen: gen, err: err}
	}
}

func (m Model) fetchAlerts() tea.Cmd {
	if !m.loc.HasCoords() {
		return nil
	}
	m.loading[opAlerts] = true
	m.gen[opAlerts]++
	gen := m.gen[opAlerts]
	lat, lon := *m.loc.Lat, *m.loc.Lon
	feed := m.alertFeed
	return func() tea.Msg {
		items, err := feed.Fetch(context.Background(), lat, lon)
		return alertsMsg{items: items, gen: gen, err: err}
	}
}

// refreshFor dispatches the fetch belonging to a view; used by the manual
// refresh key and by the unit toggle, which must only touch the active view.
func (m Model) refreshFor(op RefreshOp) tea.Cmd {
	switch op {
	case RefreshDashboard:
		return m.fetchDashboard()
	case RefreshHistorical:
		return m.fetchHistorical()
	case RefreshCompare:
		return m.fetchCompare()
	default:
		return nil
	}
}

// ─── Location commands ────────────────────────────────────────────────────────

func (m Model) searchCmd(query string) tea.Cmd {
	geocoder := m.geocoder
	return func() tea.Msg {
		place, err := geocoder.Search(context.Background(), query)
		return searchResolvedMsg{query: query, place: place, err: err}
	}
}

// reverseCmd resolves coordinates to a label. The numeric fallback is
// applied here so a geocoder failure never blocks the location update.
func (m Model) reverseCmd(lat, lon float64) tea.Cmd {
	geocoder := m.geocoder
	return func() tea.Msg {
		label, err := geocoder.Reverse(context.Background(), lat, lon)
		if err != nil || label == "" {
			label = geo.FormatCoords(lat, lon)
		}
		return reverseLabelMsg{lat: lat, lon: lon, label: label}
	}
}

func (m Model) locateCmd() tea.Cmd {
	geocoder := m.geocoder
	return func() tea.Msg {
		place, err := geocoder.Locate(context.Background())
		return locateMsg{place: place, err: err}
	}
}

func (m Model) saveConfigCmd() tea.Cmd {
	cfg := *m.cfg
	return func() tea.Msg {
		return configSavedMsg{err: config.Save(&cfg)}
	}
}

// ─── Export / chart commands ──────────────────────────────────────────────────

func (m Model) exportCmd(asCSV bool) tea.Cmd {
	snap := m.snapshot
	dir := m.cfg.ExportDir
	return func() tea.Msg {
		var (
			path string
			err  error
		)
		if asCSV {
			path, err = export.WriteCSV(dir, snap, time.Now())
		} else {
			path, err = export.WriteJSON(dir, snap, time.Now())
		}
		return exportDoneMsg{path: path, err: err}
	}
}

// chartCmd renders the active view's series to a PNG. Each view owns one
// chart slot; rendering disposes the slot's previous file first.
func (m Model) chartCmd() tea.Cmd {
	dir := m.cfg.ExportDir
	slots := m.slots
	now := time.Now()

	var (
		slot   string
		title  string
		labels []string
		values []float64
		bars   bool
	)

	switch m.activeTab {
	case TabDashboard:
		if m.snapshot == nil {
			return statusErrCmd(export.ErrNoSnapshot)
		}
		slot, bars = "hourly-precip", true
		title = "Hourly precipitation (mm/h) — " + m.snapshot.Location
		for _, h := range m.snapshot.Hourly {
			labels = append(labels, h.Time)
			values = append(values, h.Precipitation)
		}
	case TabForecast:
		if m.snapshot == nil {
			return statusErrCmd(export.ErrNoSnapshot)
		}
		slot = "forecast-high"
		title = fmt.Sprintf("Daily high (%s) — %s", m.snapshot.Unit, m.snapshot.Location)
		for _, d := range m.snapshot.Forecast {
			labels = append(labels, d.Date)
			values = append(values, d.High)
		}
	case TabHistorical:
		if len(m.historical) == 0 {
			return statusErrCmd(fmt.Errorf("no historical data to chart"))
		}
		slot = "historical-temp"
		title = fmt.Sprintf("Average temperature (%s) — %s", m.unit.Symbol(), m.loc.Label)
		for _, d := range m.historical {
			labels = append(labels, d.Date)
			values = append(values, d.AvgTemp)
		}
	default:
		return statusErrCmd(fmt.Errorf("no chart for this view"))
	}

	label := m.loc.Label
	return func() tea.Msg {
		// The per-slot sequence keeps back-to-back renders within the same
		// second from reusing a path the slot disposal would then remove.
		name := fmt.Sprintf("%s %s %d", label, slot, slots.Seq(slot))
		path := filepath.Join(dir, export.Filename(name, now, "png"))
		var (
			h   *charts.Handle
			err error
		)
		if bars {
			h, err = charts.RenderBars(path, title, labels, values)
		} else {
			h, err = charts.RenderLine(path, title, labels, values)
		}
		if err != nil {
			return chartSavedMsg{err: err}
		}
		if err := slots.Put(slot, h); err != nil {
			return chartSavedMsg{path: path, err: err}
		}
		return chartSavedMsg{path: path}
	}
}

func statusErrCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return chartSavedMsg{err: err}
	}
}

// ─── Update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentH := m.height - 6
		for i := range m.viewports {
			m.viewports[i].Width = msg.Width - 4
			m.viewports[i].Height = contentH
		}
		m.refreshAllPanes()

	case tea.KeyMsg:
		if m.inputMode != modeNone {
			return m.updateInput(msg)
		}
		if m.activeTab == TabEvent {
			handled, nm, cmd := m.updateEventForm(msg)
			if handled {
				return nm, cmd
			}
			m = nm
		}

		switch msg.String() {
		case "q", "ctrl+c":
			_ = m.slots.Close()
			return m, tea.Quit
		case "tab", "right":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab", "left":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		case "1":
			m.activeTab = TabDashboard
		case "2":
			m.activeTab = TabForecast
		case "3":
			m.activeTab = TabHistorical
			if m.historical == nil && !m.loading[opHistorical] {
				cmds = append(cmds, m.fetchHistorical())
			}
		case "4":
			m.activeTab = TabCompare
		case "5":
			m.activeTab = TabEvent
		case "6":
			m.activeTab = TabAlerts
		case "/":
			m = m.openInput(modeSearch, "city name or lat,lon")
			cmds = append(cmds, textinput.Blink)
		case "a":
			m = m.openInput(modeCompare, "location to compare")
			cmds = append(cmds, textinput.Blink)
		case "ctrl+o":
			m = m.openInput(modeICS, "path to .ics file")
			cmds = append(cmds, textinput.Blink)
		case "x":
			if m.activeTab == TabCompare && m.compare.Len() > 0 {
				labels := m.compare.Labels()
				m.compare.Remove(labels[len(labels)-1])
				m.cfg.Compare = m.compare.Labels()
				cmds = append(cmds, m.saveConfigCmd())
				if cmd := m.fetchCompare(); cmd != nil {
					cmds = append(cmds, cmd)
				} else {
					m.comparison = nil
					m.viewports[TabCompare].SetContent(m.renderCompareContent())
				}
			}
		case "u":
			m.unit = m.unit.Toggle()
			m.cfg.Unit = string(m.unit)
			m.setStatus("Unit switched to " + m.unit.Symbol())
			cmds = append(cmds, m.saveConfigCmd())
			if cmd := m.refreshFor(refreshOpForTab(m.activeTab)); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case "L":
			m.setStatus("Locating...")
			cmds = append(cmds, m.locateCmd())
		case "e":
			cmds = append(cmds, m.exportCmd(false))
		case "E":
			cmds = append(cmds, m.exportCmd(true))
		case "p":
			cmds = append(cmds, m.chartCmd())
		case "r":
			if m.activeTab == TabAlerts {
				cmds = append(cmds, m.fetchAlerts())
			} else if cmd := m.refreshFor(refreshOpForTab(m.activeTab)); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case "j", "down":
			m.viewports[m.activeTab].LineDown(1)
		case "k", "up":
			m.viewports[m.activeTab].LineUp(1)
		case "ctrl+d":
			m.viewports[m.activeTab].HalfViewDown()
		case "ctrl+u":
			m.viewports[m.activeTab].HalfViewUp()
		case "g":
			m.viewports[m.activeTab].GotoTop()
		case "G":
			m.viewports[m.activeTab].GotoBottom()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		if len(m.loading) > 0 {
			m.refreshActivePane()
		}

	case tickMsg:
		cmds = append(cmds, m.fetchDashboard(), tickEvery(time.Duration(m.cfg.RefreshSec)*time.Second))
		if m.loc.HasCoords() {
			cmds = append(cmds, m.fetchAlerts())
		}

	case dashboardMsg:
		if msg.gen != m.gen[opDashboard] {
			break // stale response, a newer request has been issued
		}
		delete(m.loading, opDashboard)
		if msg.err != nil {
			m.errors[opDashboard] = msg.err.Error()
		} else {
			m.snapshot = msg.snap
			m.lastUpdated = time.Now()
			delete(m.errors, opDashboard)
		}
		m.viewports[TabDashboard].SetContent(m.renderDashboardContent())
		m.viewports[TabForecast].SetContent(m.renderForecastContent())

	case historicalMsg:
		if msg.gen != m.gen[opHistorical] {
			break
		}
		delete(m.loading, opHistorical)
		if msg.err != nil {
			m.errors[opHistorical] = msg.err.Error()
		} else {
			m.historical = msg.days
			m.lastUpdated = time.Now()
			delete(m.errors, opHistorical)
		}
		m.viewports[TabHistorical].SetContent(m.renderHistoricalContent())

	case compareMsg:
		if msg.gen != m.gen[opCompare] {
			break
		}
		delete(m.loading, opCompare)
		if msg.err != nil {
			m.errors[opCompare] = msg.err.Error()
		} else {
			m.comparison = msg.entries
			m.lastUpdated = time.Now()
			delete(m.errors, opCompare)
		}
		m.viewports[TabCompare].SetContent(m.renderCompareContent())

	case adviceMsg:
		if msg.gen != m.gen[opAdvice] {
			break
		}
		delete(m.loading, opAdvice)
		if msg.err != nil {
			m.errors[opAdvice] = msg.err.Error()
		} else {
			m.advice = msg.advice
			m.lastUpdated = time.Now()
			delete(m.errors, opAdvice)
		}
		m.viewports[TabEvent].SetContent(m.renderEventContent())

	case alertsMsg:
		if msg.gen != m.gen[opAlerts] {
			break
		}
		delete(m.loading, opAlerts)
		if msg.err != nil {
			m.errors[opAlerts] = msg.err.Error()
		} else {
			m.activeAlert = msg.items
			delete(m.errors, opAlerts)
		}
		m.viewports[TabAlerts].SetContent(m.renderAlertsContent())
		m.viewports[TabDashboard].SetContent(m.renderDashboardContent())

	case searchResolvedMsg:
		if msg.err != nil {
			// Geocoder miss. The backend resolves free text itself, so
			// keep the raw query as a label-only location and let it try.
			m.loc = LocationState{Label: msg.query}
			m.resetLocationData()
			cmds = append(cmds, m.fetchDashboard())
			m.refreshAllPanes()
			break
		}
		lat, lon := msg.place.Lat, msg.place.Lon
		m.loc.Lat, m.loc.Lon = &lat, &lon
		m.loc.Label = msg.place.Name
		m.resetLocationData()
		cmds = append(cmds, m.fetchDashboard(), m.fetchAlerts())
		m.refreshAllPanes()

	case reverseLabelMsg:
		// Only label the location if it still points at these coordinates
		if m.loc.At(msg.lat, msg.lon) {
			m.loc.Label = msg.label
			m.refreshActivePane()
		}

	case locateMsg:
		if msg.err != nil {
			m.setStatus("Geolocation failed: " + msg.err.Error())
			break
		}
		m.loc.SetCoords(msg.place.Lat, msg.place.Lon)
		if msg.place.Name != "" {
			m.loc.Label = msg.place.Name
		}
		m.resetLocationData()
		cmds = append(cmds, m.reverseCmd(msg.place.Lat, msg.place.Lon),
			m.fetchDashboard(), m.fetchAlerts())
		m.refreshAllPanes()

	case exportDoneMsg:
		if msg.err != nil {
			m.setStatus("Export failed: " + msg.err.Error())
		} else {
			m.setStatus("Exported " + msg.path)
		}

	case chartSavedMsg:
		if msg.err != nil {
			m.setStatus("Chart failed: " + msg.err.Error())
		} else {
			m.setStatus("Chart saved " + msg.path)
		}

	case configSavedMsg:
		if msg.err != nil {
			m.setStatus("Saving preferences failed: " + msg.err.Error())
		}

	case icsLoadedMsg:
		if msg.err != nil {
			m.setStatus("Calendar import failed: " + msg.err.Error())
		} else {
			m.form.prefill(msg.input)
			m.activeTab = TabEvent
			m.setStatus("Event loaded from calendar")
			m.viewports[TabEvent].SetContent(m.renderEventContent())
		}

	case clearStatusMsg:
		if time.Now().After(m.statusExpiry) {
			m.statusMsg = ""
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusExpiry = time.Now().Add(4 * time.Second)
}

// resetLocationData drops everything fetched for the previous location so a
// new location never shows the old one's series under its label. Tab 3
// refetches lazily; alerts and advice refetch on demand.
func (m *Model) resetLocationData() {
	m.historical = nil
	m.advice = nil
	m.activeAlert = nil
	delete(m.errors, opHistorical)
	delete(m.errors, opAdvice)
	delete(m.errors, opAlerts)
}

func (m *Model) refreshActivePane() {
	switch m.activeTab {
	case TabDashboard:
		m.viewports[TabDashboard].SetContent(m.renderDashboardContent())
	case TabForecast:
		m.viewports[TabForecast].SetContent(m.renderForecastContent())
	case TabHistorical:
		m.viewports[TabHistorical].SetContent(m.renderHistoricalContent())
	case TabCompare:
		m.viewports[TabCompare].SetContent(m.renderCompareContent())
	case TabEvent:
		m.viewports[TabEvent].SetContent(m.renderEventContent())
	case TabAlerts:
		m.viewports[TabAlerts].SetContent(m.renderAlertsContent())
	}
}

func (m *Model) refreshAllPanes() {
	m.viewports[TabDashboard].SetContent(m.renderDashboardContent())
	m.viewports[TabForecast].SetContent(m.renderForecastContent())
	m.viewports[TabHistorical].SetContent(m.renderHistoricalContent())
	m.viewports[TabCompare].SetContent(m.renderCompareContent())
	m.viewports[TabEvent].SetContent(m.renderEventContent())
	m.viewports[TabAlerts].SetContent(m.renderAlertsContent())
}

// ─── View ─────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing skycast..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		m.renderActivePane(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	loadStr := ""
	if len(m.loading) > 0 {
		loadStr = "  " + m.spinner.View() + " loading..."
	}
	refreshStr := ""
	if !m.lastUpdated.IsZero() {
		refreshStr = fmt.Sprintf("  updated %s", m.lastUpdated.Format("15:04:05"))
	}
	title := StyleTitle.Render("⛅ SKYCAST")
	place := m.loc.Label
	if place == "" {
		place = "no location"
	}
	right := StyleSubtitle.Render(truncate(place, 40) + "  " + m.unit.Symbol() + loadStr + refreshStr)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return StyleHeader.Width(m.width).Render(
		title + strings.Repeat(" ", gap) + right,
	)
}

func (m Model) renderTabs() string {
	names := []string{"1 Now", "2 Forecast", "3 Historical", "4 Compare", "5 Event", "6 Alerts"}
	var parts []string
	for i, name := range names {
		if i == m.activeTab {
			parts = append(parts, StyleActiveTab.Render("[ "+name+" ]"))
		} else {
			parts = append(parts, StyleInactiveTab.Render("  "+name+"  "))
		}
	}
	return StyleTabBar.Width(m.width).Render(strings.Join(parts, " "))
}

func (m Model) renderActivePane() string {
	contentH := m.height - 6
	if contentH < 5 {
		contentH = 5
	}
	return StylePane.Width(m.width - 2).Height(contentH).Render(
		m.viewports[m.activeTab].View(),
	)
}

func (m Model) renderFooter() string {
	if m.inputMode != modeNone {
		return StyleFooterInput.Width(m.width).Render("  " + m.input.View())
	}
	if m.statusMsg != "" && time.Now().Before(m.statusExpiry) {
		return StyleFooterStatus.Width(m.width).Render("  " + m.statusMsg)
	}
	var hint string
	switch m.activeTab {
	case TabEvent:
		hint = "  ↑↓ field  enter next/submit  ctrl+o import .ics  tab switch  q quit"
	case TabCompare:
		hint = "  a add location  x remove last  r refresh  u unit  tab switch  q quit"
	default:
		hint = "  / search  L locate  u unit  r refresh  e/E export  p chart  tab switch  q quit"
	}
	return StyleFooter.Width(m.width).Render(hint)
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func formatAge(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 02")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// truncate shortens to n display runes; byte slicing would split multibyte
// place names.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
