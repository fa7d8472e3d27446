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

// NewsletterFormModel is the footer blog-subscription form: one email
// field and a submit control.
type NewsletterFormModel struct {
	email   textinput.Model
	status  form.Status
	control *form.Controller
}

func NewNewsletterFormModel(client *http.Client, baseURL string) *NewsletterFormModel {
	ti := textinput.New()
	ti.Placeholder = "Email address"
	ti.Prompt = "> "
	ti.CharLimit = 254

	return &NewsletterFormModel{
		email:  ti,
		status: form.Idle(),
		control: form.NewController(client, baseURL+"/api/subscribe",
			"Thanks! You are subscribed to the blog.",
			"Unable to subscribe right now."),
	}
}

func (m *NewsletterFormModel) Focus() tea.Cmd {
	return m.email.Focus()
}

func (m *NewsletterFormModel) Update(msg tea.Msg) tea.Cmd {
	if m.status.Kind == form.StatusSubmitting {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		m.status = form.Submitting()
		payload := domain.SubscriptionRequest{
			Email: domain.Text(m.email.Value()),
		}
		return submitCmd(formNewsletter, m.control, payload)
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return cmd
}

func (m *NewsletterFormModel) SetResult(status form.Status) tea.Cmd {
	m.status = status
	if status.Kind == form.StatusSuccess {
		m.email.SetValue("")
	}
	return nil
}

func (m *NewsletterFormModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	submitLabel := "Subscribe"
	if m.status.Kind == form.StatusSubmitting {
		submitLabel = "Subscribing..."
	}
	submitStyle := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10"))
	if m.status.Kind == form.StatusSubmitting {
		submitStyle = submitStyle.Background(lipgloss.Color("8"))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Subscribe to the blog"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render("Get the latest insights on building scalable digital products."))
	b.WriteString("\n\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	// Advisory only; the server re-validates with the same check.
	if v := m.email.Value(); v != "" && !validation.ValidEmail(v) {
		hint := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Faint(true)
		b.WriteString(hint.Render("Enter a valid email address"))
	}
	b.WriteString("\n")
	b.WriteString(submitStyle.Render(submitLabel))
	b.WriteString("\n")
	b.WriteString(renderStatus(m.status))

	return b.String()
}
