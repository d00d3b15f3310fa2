package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/casefine/internal/casefile"
	"github.com/MrJamesThe3rd/casefine/internal/registry"
)

type casesState int

const (
	casesStateBrowse casesState = iota
	casesStatePayment
	casesStateAppeal
	casesStateDecision
	casesStateDetail
)

// CasesModel browses the case registry and drives lifecycle operations on
// the selected case.
type CasesModel struct {
	CommonModel
	caseService *registry.Service

	state casesState
	table table.Model
	snaps []casefile.Snapshot
	form  *huh.Form

	status string
	err    error

	// Form bindings
	formAmount   string
	formReason   string
	formReviewer string
	formApproved bool
}

func NewCasesModel(svc *registry.Service) CasesModel {
	columns := []table.Column{
		{Title: "Created", Width: 12},
		{Title: "Status", Width: 18},
		{Title: "Offense", Width: 20},
		{Title: "Fine", Width: 10},
		{Title: "Paid", Width: 10},
		{Title: "Deadline", Width: 12},
		{Title: "ID", Width: 36},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return CasesModel{
		caseService: svc,
		table:       t,
	}
}

func (m CasesModel) Title() string { return "Browse Cases" }

func (m CasesModel) ShortHelp() string {
	switch m.state {
	case casesStateBrowse:
		return "Esc: back | Enter: detail | p: payment | a: appeal | d: decide | w: sweep reminders | r: refresh"
	case casesStateDetail:
		return "Esc: back to list"
	}
	return "Navigate form | Esc: cancel"
}

func (m CasesModel) Init() tea.Cmd {
	return m.loadCasesCmd()
}

func (m CasesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCasesMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.snaps = msg.snaps
		m.err = nil
		m.refreshTable()

		return m, nil

	case caseActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}

		m.state = casesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCasesCmd()

	case sweepMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Reminders sent for %d case(s)", msg.reminded)
		}

		return m, m.loadCasesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case casesStateBrowse:
		return m.updateBrowse(msg)
	case casesStateDetail:
		return m.updateDetail(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m CasesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)

		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "r":
		return m, m.loadCasesCmd()
	case "w":
		m.status = "Sweeping reminders..."
		return m, m.sweepCmd()
	case "enter":
		if m.selected() != nil {
			m.state = casesStateDetail
		}

		return m, nil
	case "p":
		if snap := m.selected(); snap != nil {
			m.state = casesStatePayment
			m.formAmount = ""
			m.form = m.buildPaymentForm(snap)

			return m, m.form.Init()
		}
	case "a":
		if m.selected() != nil {
			m.state = casesStateAppeal
			m.formReason = ""
			m.form = m.buildAppealForm()

			return m, m.form.Init()
		}
	case "d":
		if m.selected() != nil {
			m.state = casesStateDecision
			m.formReason = ""
			m.formReviewer = ""
			m.formApproved = false
			m.form = m.buildDecisionForm()

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CasesModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = casesStateBrowse
	}

	return m, nil
}

func (m CasesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = casesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	snap := m.selected()
	if snap == nil {
		m.state = casesStateBrowse
		return m, nil
	}

	switch m.state {
	case casesStatePayment:
		return m, m.recordPaymentCmd(snap.ID, m.form.GetString("amount"))
	case casesStateAppeal:
		return m, m.fileAppealCmd(snap.ID, m.form.GetString("reason"))
	case casesStateDecision:
		return m, m.decideAppealCmd(snap.ID, m.form.GetBool("approved"), m.form.GetString("reason"), m.form.GetString("reviewer"))
	}

	return m, nil
}

func (m CasesModel) buildPaymentForm(snap *casefile.Snapshot) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(fmt.Sprintf("Payment Amount (remaining %s)", FormatMoney(snap.Fine.Remaining()))).
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(validAmount),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m CasesModel) buildAppealForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key("reason").
				Title("Appeal Reason").
				Value(&m.formReason),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m CasesModel) buildDecisionForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("approved").
				Title("Approve the appeal?").
				Value(&m.formApproved),
			huh.NewInput().
				Key("reason").
				Title("Decision Reason").
				Value(&m.formReason),
			huh.NewInput().
				Key("reviewer").
				Title("Reviewer").
				Value(&m.formReviewer),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m *CasesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.snaps))

	for _, snap := range m.snaps {
		rows = append(rows, table.Row{
			FormatDate(snap.CreatedAt),
			string(snap.Status),
			string(snap.Offense.Type),
			FormatMoney(snap.Fine.Amount),
			FormatMoney(snap.Fine.TotalPaid),
			FormatDate(snap.Fine.Deadline),
			snap.ID.String(),
		})
	}

	m.table.SetRows(rows)
}

func (m *CasesModel) selected() *casefile.Snapshot {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.snaps) {
		return nil
	}

	return &m.snaps[idx]
}

type loadCasesMsg struct {
	snaps []casefile.Snapshot
	err   error
}

func (m CasesModel) loadCasesCmd() tea.Cmd {
	return func() tea.Msg {
		snaps, err := m.caseService.AllCases(context.Background())
		return loadCasesMsg{snaps: snaps, err: err}
	}
}

type caseActionMsg struct {
	status string
	err    error
}

func (m CasesModel) recordPaymentCmd(id uuid.UUID, amount string) tea.Cmd {
	return func() tea.Msg {
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return caseActionMsg{err: err}
		}

		if _, err := m.caseService.RecordPayment(context.Background(), id, d); err != nil {
			return caseActionMsg{err: err}
		}

		return caseActionMsg{status: fmt.Sprintf("Payment of %s recorded", FormatMoney(d))}
	}
}

func (m CasesModel) fileAppealCmd(id uuid.UUID, reason string) tea.Cmd {
	return func() tea.Msg {
		if err := m.caseService.FileAppeal(context.Background(), id, reason); err != nil {
			return caseActionMsg{err: err}
		}

		return caseActionMsg{status: "Appeal filed"}
	}
}

func (m CasesModel) decideAppealCmd(id uuid.UUID, approved bool, reason, reviewer string) tea.Cmd {
	return func() tea.Msg {
		if err := m.caseService.DecideAppeal(context.Background(), id, approved, reason, reviewer); err != nil {
			return caseActionMsg{err: err}
		}

		verdict := "rejected"
		if approved {
			verdict = "approved"
		}

		return caseActionMsg{status: fmt.Sprintf("Appeal %s", verdict)}
	}
}

type sweepMsg struct {
	reminded int
	err      error
}

func (m CasesModel) sweepCmd() tea.Cmd {
	return func() tea.Msg {
		reminded, err := m.caseService.SweepReminders(context.Background())
		return sweepMsg{reminded: reminded, err: err}
	}
}

func (m CasesModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	switch m.state {
	case casesStateDetail:
		return m.viewDetail()
	case casesStateBrowse:
		out := m.table.View()
		if m.status != "" {
			out += "\n" + m.status
		}

		return lipgloss.NewStyle().Padding(1).Render(out + "\n\n" + m.ShortHelp())
	default:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}
}

func (m CasesModel) viewDetail() string {
	snap := m.selected()
	if snap == nil {
		return "No case selected"
	}

	out := fmt.Sprintf(
		"Case %s\n\nStatus:    %s\nOffense:   %s at %s on %s\nFine:      %s (paid %s, remaining %s)\nDeadline:  %s\n",
		snap.ID, snap.Status,
		snap.Offense.Type, snap.Offense.Location, FormatDate(snap.Offense.Date),
		FormatMoney(snap.Fine.Amount), FormatMoney(snap.Fine.TotalPaid), FormatMoney(snap.Fine.Remaining()),
		FormatDate(snap.Fine.Deadline),
	)

	if snap.ClosedAt != nil {
		out += fmt.Sprintf("Closed:    %s\n", FormatDate(*snap.ClosedAt))
	}

	if snap.Appeal != nil {
		out += fmt.Sprintf("\nAppeal filed %s: %s\n", FormatDate(snap.Appeal.FiledAt), snap.Appeal.Reason)

		if snap.Appeal.Decided() {
			verdict := "rejected"
			if snap.Appeal.Approved {
				verdict = "approved"
			}

			out += fmt.Sprintf("Decision (%s by %s): %s\n", verdict, snap.Appeal.Reviewer, snap.Appeal.Decision)
		}
	}

	out += "\nHistory:\n"
	for _, a := range snap.Actions {
		out += fmt.Sprintf("  %s  %-18s %s\n", a.At.Format("2006-01-02 15:04"), a.Type, a.Description)
	}

	return lipgloss.NewStyle().Padding(1).Render(out + "\n(Esc to back)")
}

func validAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}

	if !d.IsPositive() {
		return fmt.Errorf("must be positive")
	}

	return nil
}
