package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent  = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6b7280")
	colorError   = lipgloss.Color("#e53935")
	colorPending = lipgloss.Color("#FFC107")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			MarginBottom(1)
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
	buttonStyle  = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(colorMuted)
	focusStyle   = buttonStyle.BorderForeground(colorAccent).Foreground(colorAccent)
	okStyle      = lipgloss.NewStyle().Foreground(colorAccent)
	errStyle     = lipgloss.NewStyle().Foreground(colorError)
	pendingStyle = lipgloss.NewStyle().Foreground(colorPending)
	helpStyle    = lipgloss.NewStyle().Foreground(colorMuted)
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("opspanel") + "  " + helpStyle.Render(m.client.Config().BaseURL) + "\n\n")

	b.WriteString(m.section("Create user",
		m.fieldRow("First name", ctrlFirstName),
		m.fieldRow("Last name", ctrlLastName),
		m.fieldRow("Age", ctrlAge),
		labelStyle.Render("Married")+m.marriedView(),
		m.button("Create user", ctrlCreateUser),
		m.resultView(actionUser),
	))

	b.WriteString(m.section("Submit item",
		m.fieldRow("Name", ctrlItemName),
		m.fieldRow("Value", ctrlItemValue),
		m.button("Submit", ctrlSubmitItem),
		m.resultView(actionItem),
	))

	b.WriteString(m.section("Health",
		m.button("Check", ctrlHealth),
		m.resultView(actionHealth),
	))

	b.WriteString(m.section("Triggers",
		lipgloss.JoinHorizontal(lipgloss.Top, m.button("Func1", ctrlFunc1), " ", m.button("Func2", ctrlFunc2)),
		m.resultView(actionFunc1),
		m.resultView(actionFunc2),
	))

	users := []string{m.button("Get users", ctrlUsers), m.resultView(actionUsers)}
	for _, l := range m.userLines {
		users = append(users, "  • "+l)
	}
	b.WriteString(m.section("Users", users...))

	var links []string
	for _, l := range m.links {
		links = append(links, labelStyle.Render(l.Name)+l.URL)
	}
	b.WriteString(m.section("Endpoints", links...))

	b.WriteString(helpStyle.Render("tab/shift+tab move • enter activate • space toggles married • esc quit"))
	return b.String()
}

func (m *Model) section(title string, rows ...string) string {
	var nonEmpty []string
	for _, r := range rows {
		if r != "" {
			nonEmpty = append(nonEmpty, r)
		}
	}
	body := headingStyle.Render(title) + "\n" + strings.Join(nonEmpty, "\n")
	style := sectionStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(body) + "\n"
}

func (m *Model) fieldRow(label string, c control) string {
	in := m.inputs[c]
	marker := "  "
	if m.focus == c {
		marker = okStyle.Render("> ")
	}
	return marker + labelStyle.Render(label) + in.View()
}

func (m *Model) marriedView() string {
	value := "false"
	if m.married {
		value = "true"
	}
	if m.focus == ctrlMarried {
		return okStyle.Render("‹ " + value + " ›")
	}
	return "  " + value
}

func (m *Model) button(label string, c control) string {
	if m.focus == c {
		return focusStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

// resultView renders a result element, colored by outcome.
func (m *Model) resultView(a action) string {
	text, ok := m.results[a]
	if !ok || text == "" {
		return ""
	}
	switch {
	case m.pending[a]:
		return pendingStyle.Render(text)
	case strings.HasPrefix(text, "❌"), strings.HasPrefix(text, "Error:"):
		return errStyle.Render(text)
	default:
		return okStyle.Render(text)
	}
}
