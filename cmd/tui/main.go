package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/casefine/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/casefine/internal/clock"
	"github.com/MrJamesThe3rd/casefine/internal/config"
	"github.com/MrJamesThe3rd/casefine/internal/registry"
	"github.com/MrJamesThe3rd/casefine/internal/registry/store"
	"github.com/MrJamesThe3rd/casefine/internal/report"
)

type model struct {
	caseService   *registry.Service
	reportService *report.Service

	currentView View

	submitView  view.SubmitModel
	casesView   view.CasesModel
	reportsView view.ReportsModel
}

type View int

const (
	ViewMenu    View = 0
	ViewSubmit  View = 1
	ViewCases   View = 2
	ViewReports View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	clk := clock.System{}
	caseSvc := registry.NewService(store.New(), clk, cfg.Registry(), nil)
	reportSvc := report.NewService(caseSvc, clk)

	return model{
		caseService:   caseSvc,
		reportService: reportSvc,
		currentView:   ViewMenu,
		submitView:    view.NewSubmitModel(caseSvc),
		casesView:     view.NewCasesModel(caseSvc),
		reportsView:   view.NewReportsModel(reportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewSubmit
				m.submitView = view.NewSubmitModel(m.caseService)

				return m, m.submitView.Init()
			case "2":
				m.currentView = ViewCases
				m.casesView = view.NewCasesModel(m.caseService)

				return m, m.casesView.Init()
			case "3":
				m.currentView = ViewReports
				m.reportsView = view.NewReportsModel(m.reportService)

				return m, m.reportsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewSubmit:
		var newModel tea.Model
		newModel, cmd = m.submitView.Update(msg)
		m.submitView = newModel.(view.SubmitModel)
	case ViewCases:
		var newModel tea.Model
		newModel, cmd = m.casesView.Update(msg)
		m.casesView = newModel.(view.CasesModel)
	case ViewReports:
		var newModel tea.Model
		newModel, cmd = m.reportsView.Update(msg)
		m.reportsView = newModel.(view.ReportsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Casefine\n\n" +
				"1. Submit Offense\n" +
				"2. Browse Cases\n" +
				"3. Reports\n\n" +
				"q. Quit",
		)
	case ViewSubmit:
		return m.submitView.View()
	case ViewCases:
		return m.casesView.View()
	case ViewReports:
		return m.reportsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
