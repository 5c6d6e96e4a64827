package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"timescore/internal/engine"
	"timescore/internal/storage"
	"timescore/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	snapshot *engine.EnergySnapshot
	stats    engine.Statistics
	today    []storage.Behavior
	contrib  engine.DailyContribution
	wishes   []storage.Wish

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	snapshot *engine.EnergySnapshot
	stats    engine.Statistics
	today    []storage.Behavior
	contrib  engine.DailyContribution
	wishes   []storage.Wish
	err      error
}

type redeemedMsg struct {
	res *engine.RedeemResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		snap, err := m.svc.Energy(m.ctx, now)
		if err != nil {
			return loadedMsg{err: err}
		}
		stats, err := m.svc.Stats(m.ctx, now)
		if err != nil {
			return loadedMsg{err: err}
		}
		today, contrib, err := m.svc.DailyReport(m.ctx, now)
		if err != nil {
			return loadedMsg{err: err}
		}
		wishes, err := m.svc.PendingWishes(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{snapshot: snap, stats: stats, today: today, contrib: contrib, wishes: wishes}
	}
}

func (m boardModel) redeemCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.RedeemWish(m.ctx, id, time.Now())
		return redeemedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.stats = msg.stats
		m.today = msg.today
		m.contrib = msg.contrib
		m.wishes = msg.wishes
		if m.selected >= len(m.wishes) {
			m.selected = len(m.wishes) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case redeemedMsg:
		if msg.err != nil {
			m.lastLog = "Redeem failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Redeemed %q (-%.0f points).", msg.res.Wish.Name, msg.res.Wish.Cost)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.wishes)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected < 0 || m.selected >= len(m.wishes) {
				return m, nil
			}
			w := m.wishes[m.selected]
			m.lastLog = fmt.Sprintf("Redeeming %q…", w.Name)
			return m, m.redeemCmd(w.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.snapshot == nil {
		return "TimeScore — loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	left := ui.Panel.Render(m.renderToday())
	right := ui.Panel.Render(m.renderWishes())
	linesLeft := strings.Split(left, "\n")
	linesRight := strings.Split(right, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}
	leftW := 44
	if m.width > 0 && m.width/2 < leftW {
		leftW = m.width / 2
	}
	for i := 0; i < max; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		b.WriteString(padRight(l, leftW))
		b.WriteString("  ")
		b.WriteString(r)
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	s := m.snapshot
	parts := []string{
		ui.Title.Render(ui.IconSparkle + " TimeScore"),
		ui.LabelValue("Points", fmt.Sprintf("%.1f", s.TotalPoints)),
		ui.LabelValue("Energy", fmt.Sprintf("%s %s", ui.EnergyText(s.CurrentEnergy), ui.ProgressBar(s.CurrentEnergy/engine.EnergyMax, 12))),
		ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconStreak, m.stats.Streak)),
		ui.LabelValue("Mood", ui.MoodStars(m.stats.AverageMood)),
	}
	return strings.Join(parts, "   ")
}

func (m boardModel) renderToday() string {
	var b strings.Builder
	b.WriteString(ui.H2.Render(ui.IconClock + " Today"))
	b.WriteString("\n")
	if len(m.today) == 0 {
		b.WriteString(ui.Muted.Render("No behaviors yet."))
		return b.String()
	}
	for _, r := range m.today {
		fmt.Fprintf(&b, "%s %s %-18s %s\n",
			ui.Muted.Render(r.RecordedAt.Local().Format("15:04")),
			ui.GradeText(r.Grade),
			trim(r.Name, 18),
			ui.Score(r.Score))
	}
	fmt.Fprintf(&b, "%s %s  %s %s",
		ui.Key.Render("Gained:"), ui.Good.Render(fmt.Sprintf("%+.1f", m.contrib.PositiveScore)),
		ui.Key.Render("Lost:"), ui.Bad.Render(fmt.Sprintf("%+.1f", m.contrib.NegativeScore)))
	return b.String()
}

func (m boardModel) renderWishes() string {
	var b strings.Builder
	b.WriteString(ui.H2.Render(ui.IconWish + " Wishes"))
	b.WriteString("\n")
	if len(m.wishes) == 0 {
		b.WriteString(ui.Muted.Render("No pending wishes."))
		return b.String()
	}
	for i, w := range m.wishes {
		line := fmt.Sprintf("%-16s %.0f [%s] %3.0f%%", trim(w.Name, 16), w.Cost, ui.ProgressBar(w.Progress, 10), w.Progress*100)
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m boardModel) renderFooter() string {
	help := ui.Muted.Render("↑/↓ select wish · enter redeem · r refresh · q quit")
	return help + "\n" + ui.Muted.Render(m.lastLog) + "\n"
}

func trim(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func padRight(s string, w int) string {
	// Width accounting with styled output is approximate; good enough for
	// the two-column layout.
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
