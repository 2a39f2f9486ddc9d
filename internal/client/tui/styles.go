package tui

import "github.com/charmbracelet/lipgloss"

// One fixed palette. The semantic colors map the score badge tiers the web
// dashboard used (success / warning / info).
var (
	colorPrimary = lipgloss.Color("#2575fc")
	colorMuted   = lipgloss.Color("#6c757d")
	colorSuccess = lipgloss.Color("#198754")
	colorWarning = lipgloss.Color("#ffc107")
	colorInfo    = lipgloss.Color("#0dcaf0")
	colorDanger  = lipgloss.Color("#e53935")
	colorCardBg  = lipgloss.Color("#1e2a3d")
)

// Styles holds the rendered components of every view.
type Styles struct {
	Header   lipgloss.Style
	Brand    lipgloss.Style
	NavHint  lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	Label      lipgloss.Style
	FieldError lipgloss.Style

	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardMuted lipgloss.Style
	Quote     lipgloss.Style
	Highlight lipgloss.Style

	BadgeSuccess lipgloss.Style
	BadgeWarning lipgloss.Style
	BadgeInfo    lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	Loader lipgloss.Style
	Empty  lipgloss.Style
	Help   lipgloss.Style
}

func DefaultStyles() Styles {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return Styles{
		Header:   lipgloss.NewStyle().Padding(0, 1),
		Brand:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		NavHint:  lipgloss.NewStyle().Foreground(colorMuted),
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(colorMuted),

		Label:      lipgloss.NewStyle().Foreground(colorMuted),
		FieldError: lipgloss.NewStyle().Foreground(colorDanger),

		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Background(colorCardBg),
		CardTitle: lipgloss.NewStyle().Bold(true),
		CardMuted: lipgloss.NewStyle().Foreground(colorMuted),
		Quote:     lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		Highlight: lipgloss.NewStyle().Foreground(colorSuccess),

		BadgeSuccess: badge.Background(colorSuccess),
		BadgeWarning: badge.Background(colorWarning).Foreground(lipgloss.Color("#000000")),
		BadgeInfo:    badge.Background(colorInfo).Foreground(lipgloss.Color("#000000")),

		ToastSuccess: lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
		ToastError:   lipgloss.NewStyle().Bold(true).Foreground(colorDanger),

		Loader: lipgloss.NewStyle().Foreground(colorPrimary),
		Empty:  lipgloss.NewStyle().Foreground(colorMuted),
		Help:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// scoreTier classifies a match score for badge coloring.
type scoreTier int

const (
	tierSuccess scoreTier = iota // >= 80%
	tierWarning                  // >= 70%
	tierInfo                     // everything below
)

func tierForScore(score float64) scoreTier {
	percent := score * 100
	switch {
	case percent >= 80:
		return tierSuccess
	case percent >= 70:
		return tierWarning
	default:
		return tierInfo
	}
}

func (s Styles) badge(tier scoreTier) lipgloss.Style {
	switch tier {
	case tierSuccess:
		return s.BadgeSuccess
	case tierWarning:
		return s.BadgeWarning
	default:
		return s.BadgeInfo
	}
}
