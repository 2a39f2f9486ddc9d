package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roomatch/roomatch-cli/internal/client/models"
	"github.com/roomatch/roomatch-cli/internal/client/validate"
)

func (m Model) View() string {
	var body string
	switch m.route {
	case RouteLogin:
		body = m.viewLogin()
	case RouteSignUp:
		body = m.viewSignUp()
	case RouteDashboard:
		body = m.viewDashboard()
	case RouteProfile:
		body = m.viewProfile()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewFooter(),
	)
}

// --- chrome ----------------------------------------------------------------

func (m Model) viewHeader() string {
	brand := m.styles.Brand.Render("Room Matcher")

	var right string
	if sess := m.store.Current(); sess.IsAuthenticated && sess.User != nil {
		right = m.styles.NavHint.Render(sess.User.Name + "  ·  ctrl+d dashboard  ctrl+p profile  ctrl+l logout")
	} else {
		right = m.styles.NavHint.Render("ctrl+c quit")
	}

	return m.styles.Header.Render(brand + "  " + right)
}

func (m Model) viewFooter() string {
	var lines []string

	if m.toast.text != "" {
		style := m.styles.ToastSuccess
		if m.toast.level == toastError {
			style = m.styles.ToastError
		}
		lines = append(lines, style.Render(m.toast.text))
	}

	help := ""
	switch m.route {
	case RouteLogin:
		help = "tab next field · enter sign in · ctrl+n sign up · ctrl+c quit"
	case RouteSignUp:
		help = "tab next field · enter create account · esc back to login · ctrl+c quit"
	case RouteDashboard:
		help = "enter search · ctrl+p profile · ctrl+l logout · ctrl+c quit"
	case RouteProfile:
		help = "ctrl+d dashboard · ctrl+l logout · ctrl+c quit"
	}
	lines = append(lines, m.styles.Help.Render(help))

	return strings.Join(lines, "\n")
}

// --- auth screens ----------------------------------------------------------

var fieldLabels = map[string]string{
	validate.FieldName:     "Name",
	validate.FieldEmail:    "Email",
	validate.FieldPhone:    "Phone Number",
	validate.FieldPassword: "Password",
}

func (m Model) renderForm(f authForm) string {
	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString(m.styles.Label.Render(fieldLabels[field]))
		b.WriteString("\n")
		b.WriteString(f.inputs[field].View())
		b.WriteString("\n")
		if msg, ok := f.errors[field]; ok {
			b.WriteString(m.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome back"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Sign in to continue to your account"))
	b.WriteString("\n\n")
	b.WriteString(m.renderForm(m.login))
	b.WriteString("\n")
	if m.authBusy {
		b.WriteString(m.spin.View() + " Signing in...")
	} else {
		b.WriteString(m.styles.Subtitle.Render("Don't have an account? Create one (ctrl+n)"))
	}
	return m.styles.Card.Render(b.String())
}

func (m Model) viewSignUp() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Sign Up"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Sign Up to continue to your account"))
	b.WriteString("\n\n")
	b.WriteString(m.renderForm(m.signUp))
	b.WriteString("\n")
	if m.authBusy {
		b.WriteString(m.spin.View() + " Creating account...")
	} else {
		b.WriteString(m.styles.Subtitle.Render("Already have an Account? Login (esc)"))
	}
	return m.styles.Card.Render(b.String())
}

// --- dashboard -------------------------------------------------------------

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Find your roommate"))
	b.WriteString("\n\n")
	b.WriteString(m.query.View())
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(m.styles.Loader.Render(m.spin.View() + " " + loaderMessages[m.loaderIdx]))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.results) == 0 {
		b.WriteString(m.styles.Empty.Render("No results yet"))
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("Try searching above"))
		b.WriteString("\n")
		return b.String()
	}

	for _, r := range m.results {
		b.WriteString(m.renderResult(r))
		b.WriteString("\n")
	}
	return b.String()
}

// renderResult draws one match card: location and score up top, the
// profile's own words quoted, then the structured attributes and the
// server's match highlights.
func (m Model) renderResult(r models.SearchResult) string {
	p := r.Profile

	title := m.styles.CardTitle.Render(fmt.Sprintf("%s, %s", orNA(p.Area), orNA(p.City)))
	id := m.styles.CardMuted.Render("ID: " + p.ID)
	badge := m.styles.badge(tierForScore(r.Score)).Render(formatScore(r.Score) + " match")

	var b strings.Builder
	b.WriteString(title + "  " + id + "  " + badge)
	b.WriteString("\n")

	if quote := stripMarkup(p.RawProfileText); quote != "" {
		b.WriteString(m.styles.Quote.Render("“" + quote + "”"))
		b.WriteString("\n")
	}

	attrs := []string{
		"Budget: " + formatPKR(p.BudgetPKR),
		"Cleanliness: " + orNA(p.Cleanliness),
		"Study: " + orNA(p.StudyHabits),
		"Noise: " + orNA(p.NoiseTolerance),
		"Food: " + orNA(p.FoodPref),
		"Sleep: " + orNA(p.SleepSchedule),
	}
	b.WriteString(m.styles.CardMuted.Render(strings.Join(attrs, " · ")))
	b.WriteString("\n")

	if hl := stripMarkup(r.Similarity); hl != "" {
		b.WriteString(m.styles.Highlight.Render("Match Highlights: " + hl))
		b.WriteString("\n")
	}

	return m.styles.Card.Render(b.String())
}

// --- profile ---------------------------------------------------------------

func (m Model) viewProfile() string {
	sess := m.store.Current()
	if sess.User == nil {
		var b strings.Builder
		b.WriteString(m.styles.Title.Render("No user data found"))
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("Please login again."))
		return m.styles.Card.Render(b.String())
	}

	u := sess.User
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Your Profile"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.badge(tierSuccess).Render(avatarInitial(u.Name)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Name") + "\n" + u.Name + "\n\n")
	b.WriteString(m.styles.Label.Render("Email") + "\n" + u.Email + "\n\n")
	b.WriteString(m.styles.Label.Render("Phone") + "\n" + orNA(u.Phone) + "\n")
	return m.styles.Card.Render(b.String())
}
