package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"pfeifer.dev/controlsd/cereal/custom"
)

type outputModel struct {
	output custom.ControlsdOut
	valid  bool
}

func (m outputModel) Update(msg tea.Msg, mm *uiModel) (outputModel, tea.Cmd) {
	out, success := mm.sub.Read()
	if success {
		m.valid = true
		m.output = out
	}

	return m, nil
}

func (m outputModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for controlsd...\n\n(esc to return)") + "\n"
	}
	return docStyle.Render(fmt.Sprintf(
		"enabled: %t\nv cruise: %.1f kph\nbutton count: %d\nlong pressed: %t\ndesired curvature: %f\ndesired curvature rate: %f\nmax curvature rate: %f\nsteer max: %f\nplan valid: %t\n\n(esc to return)",
		m.output.Enabled(),
		m.output.VCruise(),
		m.output.ButtonCount(),
		m.output.LongPressed(),
		m.output.DesiredCurvature(),
		m.output.DesiredCurvatureRate(),
		m.output.MaxCurvatureRate(),
		m.output.SteerMax(),
		m.output.PlanValid(),
	) + "\n")
}
