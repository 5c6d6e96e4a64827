package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TimeScore theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSparkle = "✨"
	IconScore   = "🎯"
	IconBolt    = "⚡"
	IconStreak  = "🔥"
	IconWish    = "🌠"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconClock   = "⏱️"
	IconMood    = "🙂"
	IconUndo    = "↩️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconRest    = "🌿"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Score renders a signed score with the matching color.
func Score(v float64) string {
	s := fmt.Sprintf("%+.1f", v)
	if v < 0 {
		return Bad.Render(s)
	}
	return Good.Render(s)
}

// GradeText colors a grade tag: positive green, negative red, recovery calm.
func GradeText(grade string) string {
	switch grade {
	case "S", "A", "B":
		return Good.Render(grade)
	case "C", "D":
		return Bad.Render(grade)
	case "R1", "R2", "R3":
		return H2.Render(grade)
	default:
		return Muted.Render(grade)
	}
}

// ProgressBar renders "■■■□□…" of the given width for progress in [0,1].
func ProgressBar(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return Gold.Render(strings.Repeat("■", filled)) + Muted.Render(strings.Repeat("□", width-filled))
}

// MoodStars renders an average mood (1..5) as stars.
func MoodStars(mood float64) string {
	n := int(mood + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return Gold.Render(strings.Repeat("★", n)) + Muted.Render(strings.Repeat("☆", 5-n))
}

// EnergyText colors the energy value by how depleted it is.
func EnergyText(energy float64) string {
	s := fmt.Sprintf("%.1f", energy)
	switch {
	case energy > 70:
		return Good.Render(s)
	case energy >= 30:
		return Warn.Render(s)
	default:
		return Bad.Render(s)
	}
}
