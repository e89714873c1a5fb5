package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prembandhan/matchclient/internal/session"
)

// LoginModel accepts a pasted bearer token. Account registration and the
// password flow live in the web front end; the terminal client only needs
// the resulting token.
type LoginModel struct {
	session session.Session

	input  textinput.Model
	notice string
	errMsg string
	saving bool
}

func NewLoginModel(sess session.Session) *LoginModel {
	input := textinput.New()
	input.Placeholder = "paste your access token"
	input.Width = 56
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'

	return &LoginModel{
		session: sess,
		input:   input,
	}
}

func (m *LoginModel) Init() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginNoticeMsg:
		m.notice = msg.notice
		m.errMsg = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case tokenSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		return m, navigateTo(pageBrowse)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "2":
			// the featured view works without signing in
			return m, navigateTo(pageFeatured)
		case "enter":
			token := strings.TrimSpace(m.input.Value())
			if token == "" {
				m.errMsg = "Token must not be empty"
				return m, nil
			}
			m.saving = true
			sess := m.session
			return m, func() tea.Msg {
				return tokenSavedMsg{err: sess.SetToken(token)}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(m.notice + "\n\n")
	}
	b.WriteString("Sign in on the PremBandhan website, copy your access\n")
	b.WriteString("token, and paste it below.\n\n")
	b.WriteString(m.input.View())

	if m.saving {
		b.WriteString("\n\nSaving token...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.errMsg))
	}

	return renderPage("Sign in", b.String(),
		"enter: save token · esc: featured profiles")
}
