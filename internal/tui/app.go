package tui

import (
	"context"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-studio-backend/internal/form"
)

type activeForm int

const (
	formContact activeForm = iota
	formNewsletter
)

// submitResultMsg carries a settled submission status back to the form
// that started it.
type submitResultMsg struct {
	target activeForm
	status form.Status
}

// AppModel is the root bubbletea model: the contact form and the footer
// newsletter form, switchable with ctrl+n. The two forms share nothing
// beyond the HTTP client.
type AppModel struct {
	active     activeForm
	contact    *ContactFormModel
	newsletter *NewsletterFormModel
	width      int
	height     int
}

func NewAppModel(baseURL string) *AppModel {
	client := &http.Client{Timeout: 30 * time.Second}

	return &AppModel{
		active:     formContact,
		contact:    NewContactFormModel(client, baseURL),
		newsletter: NewNewsletterFormModel(client, baseURL),
	}
}

func (m *AppModel) Init() tea.Cmd {
	return m.contact.Focus()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+n":
			if m.active == formContact {
				m.active = formNewsletter
				return m, m.newsletter.Focus()
			}
			m.active = formContact
			return m, m.contact.Focus()
		}

	case submitResultMsg:
		// Route to the form that issued the request, even if the user
		// switched views while it was in flight.
		if msg.target == formContact {
			return m, m.contact.SetResult(msg.status)
		}
		return m, m.newsletter.SetResult(msg.status)
	}

	if m.active == formContact {
		return m, m.contact.Update(msg)
	}
	return m, m.newsletter.Update(msg)
}

func (m *AppModel) View() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	var body string
	if m.active == formContact {
		body = m.contact.View()
	} else {
		body = m.newsletter.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Studio — work inquiries & blog"),
		"",
		body,
		"",
		hintStyle.Render("ctrl+n: switch form • ctrl+c: quit"),
	)
}

// submitCmd runs one submission attempt off the UI loop.
func submitCmd(target activeForm, ctrl *form.Controller, payload any) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return submitResultMsg{target: target, status: ctrl.Submit(ctx, payload)}
	}
}
