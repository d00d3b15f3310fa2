package view

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/casefine/internal/report"
)

type reportChoice int

const (
	reportMonthly reportChoice = iota
	reportPaymentStatus
	reportOffenseTypes
	reportCount
)

var reportTitles = [reportCount]string{
	"Monthly Fine Statistics",
	"Payment Status",
	"Offense Type Distribution",
}

// ReportsModel picks one of the registry reports and renders it.
type ReportsModel struct {
	CommonModel
	reportService *report.Service

	cursor  reportChoice
	content string
	showing bool
	err     error
}

func NewReportsModel(svc *report.Service) ReportsModel {
	return ReportsModel{reportService: svc}
}

func (m ReportsModel) Init() tea.Cmd {
	return nil
}

type reportMsg struct {
	content string
	err     error
}

func (m ReportsModel) generateCmd(choice reportChoice) tea.Cmd {
	return func() tea.Msg {
		var (
			content string
			err     error
		)

		ctx := context.Background()

		switch choice {
		case reportMonthly:
			content, err = m.reportService.MonthlyFineStatistics(ctx)
		case reportPaymentStatus:
			content, err = m.reportService.PaymentStatusReport(ctx)
		case reportOffenseTypes:
			content, err = m.reportService.OffenseTypeDistribution(ctx)
		}

		return reportMsg{content: content, err: err}
	}
}

func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		m.content = msg.content
		m.err = msg.err
		m.showing = true

		return m, nil

	case tea.KeyMsg:
		if m.showing {
			if msg.Type == tea.KeyEsc {
				m.showing = false
				m.content = ""
				m.err = nil
			}

			return m, nil
		}

		switch msg.String() {
		case "esc", "q":
			return m, Back
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < reportCount-1 {
				m.cursor++
			}
		case "enter":
			return m, m.generateCmd(m.cursor)
		}
	}

	return m, nil
}

func (m ReportsModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.showing {
		if m.err != nil {
			return style.Render("Error: " + m.err.Error() + "\n\n(Esc to back)")
		}

		return style.Render(m.content + "\n(Esc to back)")
	}

	out := "Reports\n\n"
	for i := reportChoice(0); i < reportCount; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		out += cursor + reportTitles[i] + "\n"
	}

	return style.Render(out + "\nEnter: generate | Esc: back")
}
