package view

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/casefine/internal/casefile"
	"github.com/MrJamesThe3rd/casefine/internal/offense"
	"github.com/MrJamesThe3rd/casefine/internal/registry"
)

type submitState int

const (
	submitStateForm submitState = iota
	submitStateSaving
	submitStateResult
)

// SubmitModel collects an offense report and opens a case for it.
type SubmitModel struct {
	CommonModel
	caseService *registry.Service

	state submitState
	form  *huh.Form
	err   error

	// Form bindings
	fullName    string
	address     string
	dateOfBirth string
	location    string
	offenseDate string
	offenseType string
	evidence    string

	result casefile.Snapshot
}

func NewSubmitModel(svc *registry.Service) SubmitModel {
	m := SubmitModel{caseService: svc, state: submitStateForm}
	m.form = m.buildForm()

	return m
}

func (m SubmitModel) Title() string { return "Submit Offense" }

func (m SubmitModel) ShortHelp() string {
	if m.state == submitStateResult {
		return "Enter: submit another | Esc: back"
	}
	return "Navigate form | Esc: back"
}

func (m SubmitModel) buildForm() *huh.Form {
	typeOptions := make([]huh.Option[string], 0, len(offense.Types()))
	for _, t := range offense.Types() {
		info, _ := offense.Lookup(t)
		typeOptions = append(typeOptions, huh.NewOption(fmt.Sprintf("%s (%s)", t, FormatMoney(info.BaseFine)), string(t)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("full_name").
				Title("Offender Full Name").
				Value(&m.fullName).
				Validate(notEmpty),
			huh.NewInput().
				Key("date_of_birth").
				Title("Date of Birth").
				Placeholder("YYYY-MM-DD").
				Value(&m.dateOfBirth).
				Validate(validDate),
			huh.NewInput().
				Key("address").
				Title("Address").
				Value(&m.address),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("offense_type").
				Title("Offense Type").
				Options(typeOptions...).
				Value(&m.offenseType),
			huh.NewInput().
				Key("location").
				Title("Location").
				Value(&m.location).
				Validate(notEmpty),
			huh.NewInput().
				Key("offense_date").
				Title("Offense Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.offenseDate).
				Validate(validDate),
			huh.NewText().
				Key("evidence").
				Title("Evidence (optional)").
				Value(&m.evidence),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m SubmitModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SubmitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case submitStateForm:
		return m.updateForm(msg)
	case submitStateSaving:
		if result, ok := msg.(submitResultMsg); ok {
			m.state = submitStateResult
			m.err = result.err
			m.result = result.snap

			return m, nil
		}
	case submitStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyEsc:
				return m, Back
			case tea.KeyEnter:
				fresh := NewSubmitModel(m.caseService)
				return fresh, fresh.Init()
			}
		}
	}

	return m, nil
}

func (m SubmitModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = submitStateSaving

	return m, m.submitCmd()
}

type submitResultMsg struct {
	snap casefile.Snapshot
	err  error
}

func (m SubmitModel) submitCmd() tea.Cmd {
	return func() tea.Msg {
		dob, _ := time.Parse("2006-01-02", m.form.GetString("date_of_birth"))
		date, _ := time.Parse("2006-01-02", m.form.GetString("offense_date"))

		c, err := m.caseService.CreateCase(context.Background(), registry.Submission{
			FullName:     m.form.GetString("full_name"),
			Address:      m.form.GetString("address"),
			DateOfBirth:  dob,
			Location:     m.form.GetString("location"),
			Date:         date,
			Type:         offense.Type(m.form.GetString("offense_type")),
			EvidenceNote: m.form.GetString("evidence"),
		})
		if err != nil {
			return submitResultMsg{err: err}
		}

		return submitResultMsg{snap: c.Snapshot()}
	}
}

func (m SubmitModel) View() string {
	switch m.state {
	case submitStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case submitStateSaving:
		return lipgloss.NewStyle().Padding(1).Render("Creating case...")

	case submitStateResult:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(1).Render(
				lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
					"\n\n(Enter to retry, Esc to back)",
			)
		}

		header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")).Render("Case Created")

		body := fmt.Sprintf(
			"\n\nCase ID:  %s\nStatus:   %s\nFine:     %s\nDeadline: %s\n\n(Enter to submit another, Esc to back)",
			m.result.ID,
			m.result.Status,
			FormatMoney(m.result.Fine.Amount),
			FormatDate(m.result.Fine.Deadline),
		)

		return lipgloss.NewStyle().Padding(1).Render(header + body)
	}

	return ""
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}
