package ui

import (
	"os"
	"strings"

	"skycast/event"
	"skycast/geo"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ─── Shared footer input (search / compare / calendar import) ─────────────────

func (m Model) openInput(mode int, placeholder string) Model {
	m.inputMode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = modeNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		mode := m.inputMode
		text := strings.TrimSpace(m.input.Value())
		m.inputMode = modeNone
		m.input.Blur()
		return m.commitInput(mode, text)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) commitInput(mode int, text string) (tea.Model, tea.Cmd) {
	switch mode {
	case modeSearch:
		if text == "" {
			return m, nil
		}
		// A coordinate pair plays the role of a map click: the location
		// updates immediately with the numeric label, the reverse geocode
		// upgrades it later if it can.
		if lat, lon, ok := geo.ParseCoords(text); ok {
			m.loc.SetCoords(lat, lon)
			m.resetLocationData()
			cmd := tea.Batch(m.reverseCmd(lat, lon), m.fetchDashboard(), m.fetchAlerts())
			m.refreshAllPanes()
			return m, cmd
		}
		m.setStatus("Searching " + text + "...")
		return m, m.searchCmd(text)

	case modeCompare:
		if err := m.compare.Add(text); err != nil {
			m.setStatus(err.Error())
			return m, nil
		}
		m.cfg.Compare = m.compare.Labels()
		m.activeTab = TabCompare
		m.viewports[TabCompare].SetContent(m.renderCompareContent())
		return m, tea.Batch(m.saveConfigCmd(), m.fetchCompare())

	case modeICS:
		if text == "" {
			return m, nil
		}
		return m, loadICSCmd(text)
	}
	return m, nil
}

func loadICSCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return icsLoadedMsg{err: err}
		}
		defer f.Close()
		in, err := event.FromICS(f)
		return icsLoadedMsg{input: in, err: err}
	}
}

// ─── Event form ───────────────────────────────────────────────────────────────

const (
	fieldName = iota
	fieldType
	fieldDate
	fieldStart
	fieldEnd
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Type", "Date", "Start", "End"}

type eventForm struct {
	inputs  [fieldCount]textinput.Model
	focused int
}

func newEventForm() eventForm {
	var f eventForm

	placeholders := [fieldCount]string{
		"e.g., Company picnic",
		"e.g., Outdoor Gathering",
		"YYYY-MM-DD",
		"HH:MM",
		"HH:MM",
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 60
		f.inputs[i] = in
	}
	f.inputs[fieldType].SetValue("General")
	f.inputs[fieldName].Focus()
	return f
}

func (f *eventForm) focusNext() {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + 1) % fieldCount
	f.inputs[f.focused].Focus()
}

func (f *eventForm) focusPrev() {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused - 1 + fieldCount) % fieldCount
	f.inputs[f.focused].Focus()
}

func (f *eventForm) prefill(in event.Input) {
	f.inputs[fieldName].SetValue(in.Name)
	f.inputs[fieldType].SetValue(in.Type)
	f.inputs[fieldDate].SetValue(in.Date)
	f.inputs[fieldStart].SetValue(in.Start)
	f.inputs[fieldEnd].SetValue(in.End)
}

func (f eventForm) values() event.Input {
	return event.Input{
		Name:  strings.TrimSpace(f.inputs[fieldName].Value()),
		Type:  strings.TrimSpace(f.inputs[fieldType].Value()),
		Date:  strings.TrimSpace(f.inputs[fieldDate].Value()),
		Start: strings.TrimSpace(f.inputs[fieldStart].Value()),
		End:   strings.TrimSpace(f.inputs[fieldEnd].Value()),
	}
}

// updateEventForm routes keys to the form while the event tab is active.
// handled is false for keys the global handler still owns (tab switching,
// quit, calendar import).
func (m Model) updateEventForm(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyCtrlC, tea.KeyCtrlO:
		return false, m, nil
	case tea.KeyUp:
		m.form.focusPrev()
	case tea.KeyDown:
		m.form.focusNext()
	case tea.KeyEnter:
		if m.form.focused < fieldCount-1 {
			m.form.focusNext()
		} else {
			return m.submitEvent()
		}
	default:
		var cmd tea.Cmd
		m.form.inputs[m.form.focused], cmd = m.form.inputs[m.form.focused].Update(msg)
		m.viewports[TabEvent].SetContent(m.renderEventContent())
		return true, m, cmd
	}
	m.viewports[TabEvent].SetContent(m.renderEventContent())
	return true, m, nil
}

// submitEvent validates once at the UI boundary; no request leaves on a
// validation failure.
func (m Model) submitEvent() (bool, Model, tea.Cmd) {
	in := m.form.values()
	if err := in.Validate(m.loc.HasCoords()); err != nil {
		m.errors[opAdvice] = err.Error()
		m.viewports[TabEvent].SetContent(m.renderEventContent())
		return true, m, nil
	}
	delete(m.errors, opAdvice)
	cmd := m.fetchAdvice(in)
	m.viewports[TabEvent].SetContent(m.renderEventContent())
	return true, m, cmd
}
