package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pfeifer.dev/controlsd/cereal"
	"pfeifer.dev/controlsd/cereal/custom"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showOutput
	resetButtons
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list     list.Model
	state    mainState
	settings settingsModel
	output   outputModel
	pub      *cereal.Publisher[custom.ControlsdIn]
	sub      *cereal.Subscriber[custom.ControlsdOut]
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Settings", desc: "Modify settings of an active instance of controlsd", state: showSettings},
		item{title: "Watch", desc: "Watch the live output from controlsd", state: showOutput},
		item{title: "Reset Buttons", desc: "Drop the cruise button press controlsd is tracking", state: resetButtons},
	}

	listDelegate := list.NewDefaultDelegate()
	pub := cereal.NewPublisher("controlsdIn", cereal.ControlsdInCreator)
	sub := cereal.NewSubscriber("controlsdOut", cereal.ControlsdOutReader, true)
	m := uiModel{list: list.New(items, listDelegate, 0, 0), settings: getSettingsModel(), pub: &pub, sub: &sub}
	m.list.Title = "Controlsd Actions"
	return m
}

// send publishes a controlsdIn command. set may fill in the value fields.
func (m *uiModel) send(inputType custom.ControlsdInputType, set func(custom.ControlsdIn) error) error {
	msg, input := m.pub.NewMessage(true)
	input.SetType(inputType)
	if set != nil {
		if err := set(input); err != nil {
			return err
		}
	}
	return m.pub.Send(msg)
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			if it.state == resetButtons {
				status := "button state reset"
				if err := m.send(custom.ControlsdInputType_resetButtonState, nil); err != nil {
					status = err.Error()
				}
				cmd := m.list.NewStatusMessage(status)
				return m, cmd
			}
			m.state = it.state
			return m, nil
		}
		if msg.Type == tea.KeyEsc && m.state == showOutput {
			m.state = showMenu
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.settings, _ = m.settings.Update(msg, &m)
	case TickMsg:
		m.output, _ = m.output.Update(msg, &m)
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showOutput:
		m.output, cmd = m.output.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showOutput:
		return m.output.View()
	}
	return docStyle.Render(m.list.View())
}

func interactive() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
