package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/wevm-cdk/abi"
	"github.com/wippyai/wevm-cdk/node"
	"github.com/wippyai/wevm-cdk/types"
)

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateConfirm
)

// callChoice is what the user picked.
type callChoice struct {
	action string
	values []string
}

type interactiveModel struct {
	err      error
	desc     *abi.Descriptor
	filename string
	choice   *callChoice
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

func newInteractiveModel(desc *abi.Descriptor, filename string) *interactiveModel {
	return &interactiveModel{
		desc:     desc,
		filename: filename,
		state:    stateSelectFunc,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			m.choice = nil
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				m.choice = nil
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.desc.ABI)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				if len(m.desc.ABI) == 0 {
					return m, nil
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					m.state = stateConfirm
				} else {
					m.state = stateInputArgs
				}
				return m, nil

			case stateInputArgs:
				m.err = m.validate()
				if m.err == nil {
					m.state = stateConfirm
				}
				return m, nil

			case stateConfirm:
				m.choice = &callChoice{action: m.desc.ABI[m.selected].Name, values: m.values()}
				return m, tea.Quit
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectFunc
				m.inputs = nil
				m.err = nil
			case stateConfirm:
				if len(m.inputs) > 0 {
					m.state = stateInputArgs
				} else {
					m.state = stateSelectFunc
				}
			}
			return m, nil
		}
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	f := m.desc.ABI[m.selected]
	m.inputs = make([]textinput.Model, len(f.Args))
	for i, arg := range f.Args {
		ti := textinput.New()
		ti.Placeholder = placeholder(arg.Type)
		ti.Prompt = arg.Name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
	m.err = nil
}

func (m *interactiveModel) values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = in.Value()
	}
	return out
}

func (m *interactiveModel) validate() error {
	_, err := node.ParamsFromABI(m.desc.ABI[m.selected], m.values())
	return err
}

func placeholder(t types.PrimitiveType) string {
	switch t {
	case types.Integer:
		return "42"
	case types.Boolean:
		return "true"
	case types.Binary:
		return node.Base58Prefix + "..."
	}
	return "text"
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.desc.Name))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		if len(m.desc.ABI) == 0 {
			b.WriteString("The contract has no actions.\n\n")
			b.WriteString(hintStyle.Render("q quit"))
			return b.String()
		}
		b.WriteString("Select an action to call:\n\n")
		for i, f := range m.desc.ABI {
			if i == m.selected {
				b.WriteString(cursorStyle.Render(formatFunc(f)))
			} else {
				b.WriteString("  " + formatFunc(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputArgs:
		f := m.desc.ABI[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", actionStyle.Render(f.Name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(wireTypeStyle.Render(f.Args[i].Type.String()))
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(problemStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("tab next field • enter continue • esc back"))

	case stateConfirm:
		f := m.desc.ABI[m.selected]
		values := m.values()
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = f.Args[i].Name + "=" + argValueStyle.Render(v)
		}
		b.WriteString(fmt.Sprintf("Call %s(%s)?\n\n", actionStyle.Render(f.Name), strings.Join(parts, ", ")))
		b.WriteString(hintStyle.Render("enter confirm • esc back • q quit"))
	}

	return b.String()
}

func formatFunc(f abi.Function) string {
	params := make([]string, len(f.Args))
	for i, a := range f.Args {
		params[i] = a.Name + ": " + wireTypeStyle.Render(a.Type.String())
	}
	return actionStyle.Render(f.Name) + "(" + strings.Join(params, ", ") + ")"
}

// runInteractive lets the user pick an action and its arguments. It returns
// nil when the user quits without confirming.
func runInteractive(desc *abi.Descriptor, filename string) (*callChoice, error) {
	p := tea.NewProgram(newInteractiveModel(desc, filename), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(*interactiveModel).choice, nil
}
