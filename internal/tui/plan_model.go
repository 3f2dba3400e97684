package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nboyer/gymlog/internal/db"
	"github.com/nboyer/gymlog/internal/models"
	"github.com/nboyer/gymlog/internal/parser"
	"github.com/nboyer/gymlog/internal/session"
)

// planStep is the current step in the planning wizard
type planStep int

const (
	stepDate planStep = iota
	stepType
	stepExerciseName
	stepExerciseSets
)

// PlanModel is the TUI model for planning a new session
type PlanModel struct {
	repo        *db.Repository
	builder     *session.Builder
	types       []string
	defaultSets int

	step      planStep
	dateInput textinput.Model
	typeInput textinput.Model
	nameInput textinput.Model
	setsInput textinput.Model

	width  int
	height int

	// Collected session data
	date        string // ISO once validated
	sessionType string
	exercises   []session.PlannedExercise
	pendingName string

	// Modals
	showSaveModal      bool
	saveModalChoice    bool
	showReplaceModal   bool
	replaceModalChoice bool
	existingPlanned    *models.Session

	// Outcome
	validationErr string
	created       *models.Session
	cancelled     bool
	declined      bool
	err           error
}

// NewPlanModel creates a new planning wizard model. Prefilled keys:
// "date", "type".
func NewPlanModel(repo *db.Repository, builder *session.Builder, types []string, defaultSets int, prefilled map[string]string) PlanModel {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 50
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		return in
	}

	if defaultSets < 1 {
		defaultSets = 3
	}

	m := PlanModel{
		repo:        repo,
		builder:     builder,
		types:       types,
		defaultSets: defaultSets,
		step:        stepDate,
		dateInput:   newInput("yyyy-mm-dd, dd/mm/yyyy or 'today'", 20),
		typeInput:   newInput("Pick a number or type your own", 50),
		nameInput:   newInput("Exercise name (empty to finish)", 80),
		setsInput:   newInput(fmt.Sprintf("Planned sets (default %d)", defaultSets), 3),
	}

	m.dateInput.SetValue("today")
	if date, ok := prefilled["date"]; ok {
		m.dateInput.SetValue(date)
	}
	if t, ok := prefilled["type"]; ok {
		m.typeInput.SetValue(t)
	}
	m.dateInput.Focus()

	return m
}

// Init initializes the model
func (m PlanModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showReplaceModal {
			return m.handleReplaceModalKeys(msg)
		}
		if m.showSaveModal {
			return m.handleSaveModalKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "esc":
			return m.prevStep()

		case "enter":
			return m.nextStep()
		}
	}

	// Pass all other keys to the focused input
	var cmd tea.Cmd
	switch m.step {
	case stepDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case stepType:
		m.typeInput, cmd = m.typeInput.Update(msg)
	case stepExerciseName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case stepExerciseSets:
		m.setsInput, cmd = m.setsInput.Update(msg)
	}
	return m, cmd
}

// nextStep validates the current input and advances the wizard
func (m PlanModel) nextStep() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.step {
	case stepDate:
		date, err := parser.ParseSessionDate(m.dateInput.Value())
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.date = date
		m.step = stepType
		m.dateInput.Blur()
		m.typeInput.Focus()
		return m, textinput.Blink

	case stepType:
		value := strings.TrimSpace(m.typeInput.Value())
		// A bare number selects from the picklist
		if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= len(m.types) {
			value = m.types[n-1]
		}
		if value == "" {
			m.validationErr = "session type is required"
			return m, nil
		}
		m.sessionType = value
		m.step = stepExerciseName
		m.typeInput.Blur()
		m.nameInput.Focus()
		return m, textinput.Blink

	case stepExerciseName:
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			if len(m.exercises) == 0 {
				m.validationErr = "add at least one exercise"
				return m, nil
			}
			m.showSaveModal = true
			m.saveModalChoice = true
			return m, nil
		}
		m.pendingName = name
		m.step = stepExerciseSets
		m.nameInput.Blur()
		m.setsInput.Focus()
		return m, textinput.Blink

	case stepExerciseSets:
		sets := m.defaultSets
		if value := strings.TrimSpace(m.setsInput.Value()); value != "" {
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				m.validationErr = "planned set count must be at least 1"
				return m, nil
			}
			sets = n
		}
		m.exercises = append(m.exercises, session.PlannedExercise{Name: m.pendingName, Sets: sets})
		m.pendingName = ""
		m.nameInput.SetValue("")
		m.setsInput.SetValue("")
		m.step = stepExerciseName
		m.setsInput.Blur()
		m.nameInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// prevStep goes back one step
func (m PlanModel) prevStep() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.step {
	case stepDate:
		m.cancelled = true
		return m, tea.Quit
	case stepType:
		m.step = stepDate
		m.typeInput.Blur()
		m.dateInput.Focus()
	case stepExerciseName:
		m.step = stepType
		m.nameInput.Blur()
		m.typeInput.Focus()
	case stepExerciseSets:
		m.pendingName = ""
		m.setsInput.SetValue("")
		m.step = stepExerciseName
		m.setsInput.Blur()
		m.nameInput.Focus()
	}
	return m, textinput.Blink
}

// handleSaveModalKeys handles the save confirmation modal
func (m PlanModel) handleSaveModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right":
		m.saveModalChoice = !m.saveModalChoice
		return m, nil
	case "y", "Y":
		m.saveModalChoice = true
		return m.handleSaveChoice()
	case "n", "N":
		m.saveModalChoice = false
		return m.handleSaveChoice()
	case "enter":
		return m.handleSaveChoice()
	case "esc":
		// Close modal and go back to adding exercises
		m.showSaveModal = false
		return m, nil
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m PlanModel) handleSaveChoice() (tea.Model, tea.Cmd) {
	m.showSaveModal = false
	if !m.saveModalChoice {
		return m, nil
	}

	// A planned session on the same date needs explicit confirmation
	// before it gets replaced.
	existing, err := m.repo.FindByDateAndStatus(m.date, models.StatusPlanned)
	if err == nil {
		m.existingPlanned = existing
		m.showReplaceModal = true
		m.replaceModalChoice = false
		return m, nil
	}

	return m.create(false)
}

// handleReplaceModalKeys handles the replace-existing-session modal
func (m PlanModel) handleReplaceModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right":
		m.replaceModalChoice = !m.replaceModalChoice
		return m, nil
	case "y", "Y":
		m.replaceModalChoice = true
		return m.handleReplaceChoice()
	case "n", "N":
		m.replaceModalChoice = false
		return m.handleReplaceChoice()
	case "enter":
		return m.handleReplaceChoice()
	case "esc":
		m.showReplaceModal = false
		return m, nil
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m PlanModel) handleReplaceChoice() (tea.Model, tea.Cmd) {
	m.showReplaceModal = false
	if !m.replaceModalChoice {
		m.declined = true
		return m, tea.Quit
	}
	return m.create(true)
}

func (m PlanModel) create(replace bool) (tea.Model, tea.Cmd) {
	req := session.CreateRequest{
		Date:      m.date,
		Type:      m.sessionType,
		Exercises: m.exercises,
	}
	created, err := m.builder.Create(req, func(models.Session) bool { return replace })
	if err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			m.validationErr = verr.Error()
			return m, nil
		}
		m.err = err
		return m, tea.Quit
	}
	m.created = created
	return m, tea.Quit
}

// View renders the TUI
func (m PlanModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 1

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderForm(leftWidth),
		" ",
		m.renderSummary(rightWidth),
	)

	var bottom string
	switch {
	case m.showReplaceModal:
		bottom = m.renderReplaceModal()
	case m.showSaveModal:
		bottom = m.renderSaveModal()
	default:
		bottom = m.renderHelpBar()
	}

	return lipgloss.JoinVertical(lipgloss.Left, "", content, "", bottom)
}

// renderForm renders the left panel with the current wizard step
func (m PlanModel) renderForm(width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	b.WriteString(titleStyle.Render("🏋️ New Session"))
	b.WriteString("\n\n")

	switch m.step {
	case stepDate:
		b.WriteString(labelStyle.Render("Date"))
		b.WriteString("\n")
		b.WriteString(m.dateInput.View())

	case stepType:
		b.WriteString(labelStyle.Render("Session type"))
		b.WriteString("\n")
		for i, t := range m.types {
			b.WriteString(hintStyle.Render(fmt.Sprintf("  %d. %s", i+1, t)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.typeInput.View())

	case stepExerciseName:
		b.WriteString(labelStyle.Render(fmt.Sprintf("Exercise %d", len(m.exercises)+1)))
		b.WriteString("\n")
		b.WriteString(m.nameInput.View())
		if len(m.exercises) > 0 {
			b.WriteString("\n\n")
			b.WriteString(hintStyle.Render("Press Enter on an empty name to save the session"))
		}

	case stepExerciseSets:
		b.WriteString(labelStyle.Render(fmt.Sprintf("Planned sets for %q", m.pendingName)))
		b.WriteString("\n")
		b.WriteString(m.setsInput.View())
	}

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n\n")
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2).
		Width(width)
	return border.Render(b.String())
}

// renderSummary renders the right panel with everything entered so far
func (m PlanModel) renderSummary(width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	b.WriteString(titleStyle.Render("Summary"))
	b.WriteString("\n\n")

	if m.date != "" {
		b.WriteString("Date: ")
		b.WriteString(valueStyle.Render(parser.FormatSessionDate(m.date)))
		b.WriteString("\n")
	}
	if m.sessionType != "" {
		b.WriteString("Type: ")
		b.WriteString(valueStyle.Render(m.sessionType))
		b.WriteString("\n")
	}
	if len(m.exercises) > 0 {
		b.WriteString("\nExercises:\n")
		for i, ex := range m.exercises {
			b.WriteString(fmt.Sprintf("  %d. %s × %d sets\n", i+1, ex.Name, ex.Sets))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("No exercises yet"))
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Width(width)
	return border.Render(b.String())
}

func (m PlanModel) renderSaveModal() string {
	question := fmt.Sprintf("Save %s session for %s with %d exercise(s)?",
		m.sessionType, parser.FormatSessionDate(m.date), len(m.exercises))
	return renderYesNoModal(question, m.saveModalChoice, m.width)
}

func (m PlanModel) renderReplaceModal() string {
	question := fmt.Sprintf("A planned session already exists for %s (%s). Replace it?",
		parser.FormatSessionDate(m.date), m.existingPlanned.Type)
	return renderYesNoModal(question, m.replaceModalChoice, m.width)
}

func (m PlanModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	return helpStyle.Render("enter next · esc back · ctrl+c cancel")
}

// renderYesNoModal renders a centered yes/no question bar
func renderYesNoModal(question string, yesSelected bool, width int) string {
	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)
	if yesSelected {
		yesStyle = yesStyle.Bold(true).Foreground(lipgloss.Color(ColorSuccess)).Underline(true)
		noStyle = noStyle.Foreground(lipgloss.Color(ColorDisabledText))
	} else {
		yesStyle = yesStyle.Foreground(lipgloss.Color(ColorDisabledText))
		noStyle = noStyle.Bold(true).Foreground(lipgloss.Color(ColorError)).Underline(true)
	}

	body := question + "\n\n" + yesStyle.Render("Yes") + "   " + noStyle.Render("No")
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Padding(1, 3).
		Align(lipgloss.Center)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, modal.Render(body))
}
