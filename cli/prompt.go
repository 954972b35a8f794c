package cli

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"pfeifer.dev/controlsd/params"
	ms "pfeifer.dev/controlsd/settings"
)

type promptSetting struct {
	name     string
	current  func(s *ms.ControlsdSettings) string
	validate func(string) error
	apply    func(s *ms.ControlsdSettings, value string)
}

var promptSettings = []promptSetting{
	{
		name:     "Steer Actuator Delay",
		current:  func(s *ms.ControlsdSettings) string { return strconv.FormatFloat(float64(s.SteerActuatorDelay), 'f', -1, 32) },
		validate: func(v string) error { _, err := parseFloat(v); return err },
		apply: func(s *ms.ControlsdSettings, v string) {
			delay, _ := parseFloat(v)
			s.SetSteerActuatorDelay(delay)
		},
	},
	{
		name:     "Metric",
		current:  func(s *ms.ControlsdSettings) string { return strconv.FormatBool(s.IsMetric) },
		validate: func(v string) error { _, err := parseBool(v); return err },
		apply: func(s *ms.ControlsdSettings, v string) {
			s.IsMetric, _ = parseBool(v)
		},
	},
	{
		name:     "Trace Enabled",
		current:  func(s *ms.ControlsdSettings) string { return strconv.FormatBool(s.TraceEnabled) },
		validate: func(v string) error { _, err := parseBool(v); return err },
		apply: func(s *ms.ControlsdSettings, v string) {
			s.TraceEnabled, _ = parseBool(v)
		},
	},
	{
		name:     "Trace Directory",
		current:  func(s *ms.ControlsdSettings) string { return s.TraceDirectory },
		validate: func(v string) error { return nil },
		apply: func(s *ms.ControlsdSettings, v string) {
			s.TraceDirectory = v
		},
	},
	{
		name:     "Log Level",
		current:  func(s *ms.ControlsdSettings) string { return s.LogLevel },
		validate: func(v string) error { _, err := parseLogLevel(v); return err },
		apply: func(s *ms.ControlsdSettings, v string) {
			s.LogLevel, _ = parseLogLevel(v)
		},
	},
}

// editSettings edits the settings param directly, so it works while the
// daemon is stopped. A running daemon picks the changes up on reloadSettings.
func editSettings() error {
	params.EnsureParamDirectories()
	s := ms.ControlsdSettings{}
	s.Load()

	const done = "Save and Exit"
	for {
		items := make([]string, 0, len(promptSettings)+1)
		for _, p := range promptSettings {
			items = append(items, fmt.Sprintf("%s (%s)", p.name, p.current(&s)))
		}
		items = append(items, done)

		sel := promptui.Select{
			Label: "Select Setting",
			Items: items,
			Size:  len(items),
		}
		idx, _, err := sel.Run()
		if err != nil {
			fmt.Printf("Prompt failed %v\n", err)
			return nil
		}
		if idx == len(promptSettings) {
			break
		}

		setting := promptSettings[idx]
		prompt := promptui.Prompt{
			Label:    setting.name,
			Default:  setting.current(&s),
			Validate: setting.validate,
		}
		value, err := prompt.Run()
		if err != nil {
			fmt.Printf("Prompt failed %v\n", err)
			continue
		}
		setting.apply(&s, value)
	}

	s.Save()
	fmt.Println("Settings saved to", params.ParamPath(params.CONTROLSD_SETTINGS))
	return nil
}
