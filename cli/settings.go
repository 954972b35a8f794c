package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"pfeifer.dev/controlsd/cereal/custom"
)

type SettingType int

const (
	String SettingType = iota
	Float
	Bool
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	settingsCommand
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType custom.ControlsdInputType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	err          error
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = m.selectedItem.Title()
				m.err = nil
				m.textInput.SetValue("")
				return m, m.textInput.Focus()
			case settingsCommand:
				m.state = showSettingsMenu
				status := it.title + " sent"
				if err := mm.send(it.MessageType, nil); err != nil {
					status = err.Error()
				}
				cmd := m.list.NewStatusMessage(status)
				return m, cmd
			}
			return m, nil
		}
		if m.state == settingsInput {
			switch msg.Type {
			case tea.KeyEsc:
				m.state = showSettingsMenu
				m.textInput.Blur()
				return m, nil
			case tea.KeyEnter:
				selected := m.selectedItem
				value := m.textInput.Value()
				err := mm.send(selected.MessageType, func(input custom.ControlsdIn) error {
					return setInputValue(input, selected.Type, value)
				})
				if err != nil {
					m.err = err
					return m, nil
				}
				m.state = showSettingsMenu
				m.textInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		errText := ""
		if m.err != nil {
			errText = "\n\n" + m.err.Error()
		}
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			errText,
			"(esc to quit)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View())
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title:       "Steer Actuator Delay",
			desc:        "Seconds between commanding a curvature and the vehicle reaching it",
			MessageType: custom.ControlsdInputType_setSteerActuatorDelay,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Metric",
			desc:        "Use kph steps for the cruise buttons instead of mph steps",
			MessageType: custom.ControlsdInputType_setIsMetric,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Trace Enabled",
			desc:        "Record every control cycle to a CSV file",
			MessageType: custom.ControlsdInputType_setTraceEnabled,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be for controlsd (debug, info, warn, error)",
			MessageType: custom.ControlsdInputType_setLogLevel,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Reload Settings",
			desc:        "Discard unsaved changes and reload the persisted settings",
			MessageType: custom.ControlsdInputType_reloadSettings,
			state:       settingsCommand,
		},
		settingsItem{
			title:       "Load Default Settings",
			desc:        "Reset every setting to its default",
			MessageType: custom.ControlsdInputType_loadDefaultSettings,
			state:       settingsCommand,
		},
		settingsItem{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			MessageType: custom.ControlsdInputType_saveSettings,
			state:       settingsCommand,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: textinput.New()}
	m.list.Title = "Controlsd Settings"
	return m
}
