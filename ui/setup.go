package ui

import (
	"context"
	"fmt"

	"skycast/config"
	"skycast/geo"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	stepBackend = iota
	stepLocation
	stepSaving
	stepDone
)

type SetupModel struct {
	step int

	backendInput  textinput.Model
	locationInput textinput.Model

	spinner   spinner.Model
	resolving bool
	saving    bool
	err       string

	resolved geo.Place

	width  int
	height int
}

func NewSetupModel() SetupModel {
	backendInput := textinput.New()
	backendInput.Placeholder = "http://localhost:5000"
	backendInput.Focus()

	locationInput := textinput.New()
	locationInput.Placeholder = "e.g., New York or 40.7829,-73.9654"

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StyleSpinner

	return SetupModel{
		step:          stepBackend,
		backendInput:  backendInput,
		locationInput: locationInput,
		spinner:       sp,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return func() tea.Msg {
		return spinner.TickMsg{}
	}
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.backendInput.Width = minInt(50, msg.Width-20)
		m.locationInput.Width = minInt(50, msg.Width-20)

	case tea.KeyMsg:
		switch m.step {
		case stepBackend:
			switch msg.Type {
			case tea.KeyEnter:
				m.step = stepLocation
				m.backendInput.Blur()
				m.locationInput.Focus()
			default:
				var cmd tea.Cmd
				m.backendInput, cmd = m.backendInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case stepLocation:
			switch msg.Type {
			case tea.KeyEnter:
				if m.locationInput.Value() != "" {
					m.step = stepSaving
					m.resolving = true
					cmds = append(cmds, m.doResolve())
				}
			default:
				var cmd tea.Cmd
				m.locationInput, cmd = m.locationInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case stepSaving:
			if msg.Type == tea.KeyEnter && m.err != "" {
				m.step = stepLocation
				m.err = ""
			}

		case stepDone:
			return m, tea.Quit
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case resolveResultMsg:
		m.resolving = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.resolved = msg.place
			m.saving = true
			cmds = append(cmds, m.doSave(msg.place))
		}

	case saveResultMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.step = stepDone
		}
	}

	return m, tea.Batch(cmds...)
}

func (m SetupModel) View() string {
	if m.width == 0 {
		return "Initializing setup..."
	}

	stepIndicator := StyleStepIndicator.Render(fmt.Sprintf("[%d/3]", minInt(m.step+1, 3)))
	title := StyleSetupTitle.Render("Skycast Setup")
	header := lipgloss.JoinHorizontal(lipgloss.Center, stepIndicator, "  ", title)

	var content string
	switch m.step {
	case stepBackend:
		content = m.renderBackendStep()
	case stepLocation:
		content = m.renderLocationStep()
	case stepSaving:
		content = m.renderSavingStep()
	case stepDone:
		content = m.renderDoneStep()
	}

	footer := StyleMuted.Render("enter confirm  esc quit")

	centeredContent := lipgloss.Place(
		m.width-4, m.height-6,
		lipgloss.Center, lipgloss.Center,
		content,
	)

	container := lipgloss.JoinVertical(
		lipgloss.Center,
		header,
		"",
		centeredContent,
		"",
		footer,
	)

	return StyleSetupPane.Width(m.width).Render(container)
}

func (m SetupModel) renderBackendStep() string {
	prompt := StylePrompt.Render("Weather backend URL:") + "\n\n"
	prompt += m.backendInput.View() + "\n\n"
	prompt += StyleHint.Render("Leave empty for http://localhost:5000.")
	return prompt
}

func (m SetupModel) renderLocationStep() string {
	prompt := StylePrompt.Render("Default location:") + "\n\n"
	prompt += m.locationInput.View() + "\n\n"

	if m.err != "" {
		prompt += StyleError.Render("Error: "+m.err) + "\n"
		prompt += StyleHint.Render("Press Enter to go back and try again.")
	} else {
		prompt += StyleHint.Render("A place name to search, or a lat,lon pair.")
	}
	return prompt
}

func (m SetupModel) renderSavingStep() string {
	var lines []string

	if m.resolving {
		lines = append(lines, m.spinner.View()+" Looking up coordinates...")
	}
	if m.saving {
		lines = append(lines, m.spinner.View()+" Saving configuration...")
	}
	if m.err != "" {
		lines = append(lines, StyleError.Render("Error: "+m.err))
		lines = append(lines, StyleHint.Render("Press Enter to go back and try again."))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m SetupModel) renderDoneStep() string {
	msg := StyleSuccess.Render("Setup complete!") + "\n\n"
	msg += "  Location: " + StyleAccent.Render(m.resolved.Name) + "\n\n"
	msg += StyleHint.Render("Press any key to launch skycast...")
	return msg
}

func (m SetupModel) doResolve() tea.Cmd {
	query := m.locationInput.Value()
	return func() tea.Msg {
		if lat, lon, ok := geo.ParseCoords(query); ok {
			geocoder := geo.NewClient()
			label, err := geocoder.Reverse(context.Background(), lat, lon)
			if err != nil || label == "" {
				label = geo.FormatCoords(lat, lon)
			}
			return resolveResultMsg{place: geo.Place{Name: label, Lat: lat, Lon: lon}}
		}
		place, err := geo.NewClient().Search(context.Background(), query)
		return resolveResultMsg{place: place, err: err}
	}
}

func (m SetupModel) doSave(place geo.Place) tea.Cmd {
	backend := m.backendInput.Value()
	if backend == "" {
		backend = "http://localhost:5000"
	}
	return func() tea.Msg {
		cfg := &config.Config{
			BackendURL: backend,
			Location: config.Location{
				Label:     place.Name,
				Latitude:  place.Lat,
				Longitude: place.Lon,
			},
			Unit:        "fahrenheit",
			Hours:       24,
			Days:        7,
			HistoryDays: 30,
			RefreshSec:  300,
			ExportDir:   ".",
		}
		err := config.Save(cfg)
		return saveResultMsg{err: err}
	}
}

type resolveResultMsg struct {
	place geo.Place
	err   error
}

type saveResultMsg struct {
	err error
}
