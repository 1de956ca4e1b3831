package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/jvm-runtime/klass"
	"github.com/wippyai/jvm-runtime/layout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectClass modelState = iota
	stateClassDetail
)

type interactiveModel struct {
	err        error
	reg        *klass.Registry
	classes    []*klass.Klass
	configFile string
	fieldInput textinput.Model
	resolved   string
	selected   int
	state      modelState
}

func newInteractiveModel(configFile string) *interactiveModel {
	return &interactiveModel{
		configFile: configFile,
		state:      stateSelectClass,
	}
}

type loadedMsg struct {
	err     error
	reg     *klass.Registry
	classes []*klass.Klass
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadClasses
}

func (m *interactiveModel) loadClasses() tea.Msg {
	reg, _, err := loadRegistry(m.configFile)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{reg: reg, classes: reg.Classes()}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateClassDetail && m.fieldInput.Focused() && msg.String() == "q" {
				break // let "q" reach the text input
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectClass && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectClass && m.selected < len(m.classes)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectClass:
				if len(m.classes) == 0 {
					break
				}
				m.state = stateClassDetail
				m.resolved = ""
				m.fieldInput = textinput.New()
				m.fieldInput.Placeholder = "field name"
				m.fieldInput.Prompt = "resolve: "
				m.fieldInput.Width = 30
				m.fieldInput.Focus()

			case stateClassDetail:
				m.resolved = m.resolveField(m.fieldInput.Value())
				m.fieldInput.SetValue("")
			}

		case "esc":
			if m.state == stateClassDetail {
				m.state = stateSelectClass
				m.resolved = ""
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.reg = msg.reg
		m.classes = msg.classes
	}

	if m.state == stateClassDetail {
		var cmd tea.Cmd
		m.fieldInput, cmd = m.fieldInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) resolveField(name string) string {
	if name == "" {
		return ""
	}
	k := m.classes[m.selected]
	f, err := k.ResolveField(name)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	table := "instance"
	if f.Static {
		table = "static"
	}
	return resultStyle.Render(fmt.Sprintf("%s: %s table, slot %d, %s %d, declared by %s",
		f.Name, table, f.Slot, storageIndexLabel(f), f.StorageIndex, f.Holder))
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.reg == nil {
		return "Loading classes..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Layout Inspector"))
	b.WriteString(" ")
	b.WriteString(m.configFile)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectClass:
		b.WriteString("Select a class:\n\n")
		for i, k := range m.classes {
			line := m.formatClass(k)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • q quit"))

	case stateClassDetail:
		k := m.classes[m.selected]
		b.WriteString(m.renderDetail(k))
		b.WriteString("\n")
		b.WriteString(m.fieldInput.View())
		b.WriteString("\n")
		if m.resolved != "" {
			b.WriteString(m.resolved)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter resolve field • esc back • ctrl+c quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatClass(k *klass.Klass) string {
	res, err := k.Layout()
	if err != nil {
		return classStyle.Render(string(k.Type()))
	}
	info := fmt.Sprintf(" (%d fields, %dB primitive, %d refs)",
		len(res.InstanceFields()), res.PrimitiveInstanceBytes(), res.InstanceRefCount())
	marker := ""
	if m.reg.IsValueType(k.Type()) {
		marker = kindStyle.Render(" [value type]")
	}
	return classStyle.Render(string(k.Type())) + info + marker
}

func (m *interactiveModel) renderDetail(k *klass.Klass) string {
	res, err := k.Layout()
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(classStyle.Render(string(k.Type())))
	if k.Super() != "" {
		b.WriteString(" extends ")
		b.WriteString(string(k.Super()))
	}
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("instance: %dB primitive, %d refs   static: %dB primitive, %d refs\n\n",
		res.PrimitiveInstanceBytes(), res.InstanceRefCount(),
		res.PrimitiveStaticBytes(), res.StaticRefCount()))

	if fields := res.InstanceFields(); len(fields) > 0 {
		b.WriteString("Instance fields:\n")
		for _, f := range fields {
			b.WriteString("  " + m.renderField(f) + "\n")
		}
	}
	if fields := res.StaticFields(); len(fields) > 0 {
		b.WriteString("Static fields:\n")
		for _, f := range fields {
			b.WriteString("  " + m.renderField(f) + "\n")
		}
	}
	return b.String()
}

func (m *interactiveModel) renderField(f *layout.Field) string {
	line := fmt.Sprintf("slot %2d  %s %s  %s %d",
		f.Slot, kindStyle.Render(fmt.Sprintf("%-8s", f.Kind.String())), f.Name,
		storageIndexLabel(f), f.StorageIndex)
	if f.Hidden {
		line += hiddenStyle.Render("  [hidden]")
	}
	return line
}

func runInteractive(configFile string) error {
	p := tea.NewProgram(newInteractiveModel(configFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
