package tui

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-studio-backend/internal/domain"
	"go-studio-backend/internal/form"
	"go-studio-backend/pkg/validation"
)

const (
	fieldName = iota
	fieldEmail
	fieldCompany
	fieldPhone
	fieldMessage
	fieldBudget
)

var budgetOptions = []struct {
	label string
	value string
}{
	{"Subscription (Monthly / Annual)", domain.BudgetSubscription},
	{"Webflow / Landing Page ($3k - $5k)", domain.BudgetWebflow},
	{"Custom Web App / MVP ($8k - $15k)", domain.BudgetMVP},
	{"Not sure yet / Let's chat", domain.BudgetNotSure},
}

// ContactFormModel is the work-inquiry form. The phone field reformats on
// every keystroke; the submit control is disabled while a submission is
// in flight.
type ContactFormModel struct {
	inputs  []textinput.Model
	focus   int
	budget  int // index into budgetOptions, -1 when unselected
	status  form.Status
	control *form.Controller
}

func NewContactFormModel(client *http.Client, baseURL string) *ContactFormModel {
	labels := []string{"Name", "Email", "Company (Optional)", "Phone (Optional)", "Tell us about your project"}

	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.Prompt = "> "
		ti.CharLimit = 500
		inputs[i] = ti
	}
	inputs[fieldPhone].CharLimit = 14 // len("(123) 456-7890")

	return &ContactFormModel{
		inputs: inputs,
		budget: -1,
		status: form.Idle(),
		control: form.NewController(client, baseURL+"/api/contact",
			"Thanks for reaching out! We'll get back to you soon.",
			"Unable to send your inquiry right now."),
	}
}

func (m *ContactFormModel) Focus() tea.Cmd {
	m.focus = fieldName
	return m.inputs[fieldName].Focus()
}

func (m *ContactFormModel) Update(msg tea.Msg) tea.Cmd {
	if m.status.Kind == form.StatusSubmitting {
		// Submit control is disabled; drop input until the attempt
		// settles.
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		case "enter":
			if m.focus == fieldBudget {
				return m.submit()
			}
			return m.moveFocus(1)
		case "left", "right", " ":
			if m.focus == fieldBudget {
				m.cycleBudget(key.String())
				return nil
			}
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.focus == fieldPhone {
			formatted := form.FormatPhone(m.inputs[fieldPhone].Value())
			m.inputs[fieldPhone].SetValue(formatted)
			m.inputs[fieldPhone].CursorEnd()
		}
		return cmd
	}
	return nil
}

func (m *ContactFormModel) moveFocus(delta int) tea.Cmd {
	m.inputBlur()
	m.focus += delta
	if m.focus < 0 {
		m.focus = fieldBudget
	}
	if m.focus > fieldBudget {
		m.focus = 0
	}
	if m.focus < len(m.inputs) {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

func (m *ContactFormModel) inputBlur() {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
}

func (m *ContactFormModel) cycleBudget(key string) {
	switch key {
	case "left":
		if m.budget <= 0 {
			m.budget = len(budgetOptions) - 1
		} else {
			m.budget--
		}
	default:
		m.budget = (m.budget + 1) % len(budgetOptions)
	}
}

func (m *ContactFormModel) submit() tea.Cmd {
	// Clear any prior status before the new attempt.
	m.status = form.Submitting()

	budget := ""
	if m.budget >= 0 {
		budget = budgetOptions[m.budget].value
	}

	payload := domain.ContactRequest{
		Name:    domain.Text(m.inputs[fieldName].Value()),
		Email:   domain.Text(m.inputs[fieldEmail].Value()),
		Company: domain.Text(m.inputs[fieldCompany].Value()),
		Phone:   domain.Text(m.inputs[fieldPhone].Value()),
		Message: domain.Text(m.inputs[fieldMessage].Value()),
		Budget:  domain.Text(budget),
	}

	return submitCmd(formContact, m.control, payload)
}

// SetResult settles an in-flight submission. Success clears the inputs.
func (m *ContactFormModel) SetResult(status form.Status) tea.Cmd {
	m.status = status
	if status.Kind == form.StatusSuccess {
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.budget = -1
	}
	return nil
}

func (m *ContactFormModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Work inquiries"))
	b.WriteString("\n\n")

	labels := []string{"Name", "Email", "Company", "Phone", "Message"}
	for i, ti := range m.inputs {
		label := labels[i]
		if i == m.focus {
			b.WriteString(focusStyle.Render(label))
		} else {
			b.WriteString(labelStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(ti.View())
		b.WriteString("\n")
		// Advisory only; the server re-validates with the same check.
		if i == fieldEmail {
			if v := ti.Value(); v != "" && !validation.ValidEmail(v) {
				hint := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Faint(true)
				b.WriteString(hint.Render("Enter a valid email address"))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderBudget())
	b.WriteString("\n\n")
	b.WriteString(m.renderSubmit())
	b.WriteString("\n")
	b.WriteString(renderStatus(m.status))

	return b.String()
}

func (m *ContactFormModel) renderBudget() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	var b strings.Builder
	if m.focus == fieldBudget {
		b.WriteString(focusStyle.Render("Budget"))
		b.WriteString("  (←/→ to choose, enter to send)")
	} else {
		b.WriteString(labelStyle.Render("Budget"))
	}
	b.WriteString("\n")

	for i, opt := range budgetOptions {
		marker := "( )"
		if i == m.budget {
			marker = "(•)"
		}
		b.WriteString("  " + marker + " " + opt.label + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *ContactFormModel) renderSubmit() string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10"))

	if m.status.Kind == form.StatusSubmitting {
		return style.Background(lipgloss.Color("8")).Render("Sending...")
	}
	return style.Render("Send Inquiry")
}

func renderStatus(status form.Status) string {
	switch status.Kind {
	case form.StatusSuccess:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(status.Message)
	case form.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(status.Message)
	default:
		return ""
	}
}
