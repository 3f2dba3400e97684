package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nboyer/gymlog/internal/models"
	"github.com/nboyer/gymlog/internal/parser"
	"github.com/nboyer/gymlog/internal/session"
)

const (
	fieldReps = iota
	fieldWeight
	fieldRest
	fieldCount
)

// setForm holds the three inputs of one set row
type setForm struct {
	inputs [fieldCount]textinput.Model
}

// exerciseForm holds one exercise and its set rows
type exerciseForm struct {
	name string
	sets []setForm
}

// CompleteModel is the TUI model for filling in a planned session
type CompleteModel struct {
	completer *session.Completer
	target    models.Session

	exercises []exerciseForm

	// Focus position
	exIdx    int
	setIdx   int
	fieldIdx int

	width  int
	height int

	showSaveModal   bool
	saveModalChoice bool

	// Outcome
	validationErr string
	completed     *models.Session
	cancelled     bool
	err           error
}

// NewCompleteModel creates a completion form for the given planned
// session. Every planned set becomes an editable row; extra sets can
// be added while filling in.
func NewCompleteModel(completer *session.Completer, target models.Session) CompleteModel {
	m := CompleteModel{
		completer: completer,
		target:    target,
	}
	for _, ex := range target.Exercises {
		form := exerciseForm{name: ex.Name}
		for _, s := range ex.Series {
			form.sets = append(form.sets, newSetForm(s))
		}
		if len(form.sets) == 0 {
			form.sets = append(form.sets, newSetForm(models.Series{}))
		}
		m.exercises = append(m.exercises, form)
	}
	m.focusCurrent()
	return m
}

func newSetForm(s models.Series) setForm {
	placeholders := [fieldCount]string{"reps", "kg", "rest (s)"}
	var form setForm
	for i := range form.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 6
		in.Width = 8
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		form.inputs[i] = in
	}
	if s.Reps != nil {
		form.inputs[fieldReps].SetValue(strconv.Itoa(*s.Reps))
	}
	if s.Weight != nil {
		form.inputs[fieldWeight].SetValue(strconv.FormatFloat(*s.Weight, 'f', -1, 64))
	}
	if s.Rest != nil {
		form.inputs[fieldRest].SetValue(strconv.Itoa(*s.Rest))
	}
	return form
}

// Init initializes the model
func (m CompleteModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m CompleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showSaveModal {
			return m.handleSaveModalKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "enter":
			return m.moveField(1), textinput.Blink

		case "shift+tab":
			return m.moveField(-1), textinput.Blink

		case "up":
			return m.moveSet(-1), textinput.Blink

		case "down":
			return m.moveSet(1), textinput.Blink

		case "ctrl+a":
			// Extra set performed beyond the plan
			m = m.blurCurrent()
			ex := &m.exercises[m.exIdx]
			ex.sets = append(ex.sets, newSetForm(models.Series{}))
			m.setIdx = len(ex.sets) - 1
			m.fieldIdx = fieldReps
			m.focusCurrent()
			return m, textinput.Blink

		case "ctrl+d":
			// Drop the current set row, but never the last one
			ex := &m.exercises[m.exIdx]
			if len(ex.sets) > 1 {
				ex.sets = append(ex.sets[:m.setIdx], ex.sets[m.setIdx+1:]...)
				if m.setIdx >= len(ex.sets) {
					m.setIdx = len(ex.sets) - 1
				}
				m.focusCurrent()
			}
			return m, textinput.Blink

		case "ctrl+s":
			m.showSaveModal = true
			m.saveModalChoice = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	in := &m.exercises[m.exIdx].sets[m.setIdx].inputs[m.fieldIdx]
	*in, cmd = in.Update(msg)
	return m, cmd
}

// moveField advances the focus by delta fields, flowing across sets
// and exercises.
func (m CompleteModel) moveField(delta int) CompleteModel {
	m = m.blurCurrent()
	m.fieldIdx += delta

	for m.fieldIdx >= fieldCount {
		m.fieldIdx -= fieldCount
		m.setIdx++
		if m.setIdx >= len(m.exercises[m.exIdx].sets) {
			m.setIdx = 0
			m.exIdx++
			if m.exIdx >= len(m.exercises) {
				m.exIdx = 0
			}
		}
	}
	for m.fieldIdx < 0 {
		m.fieldIdx += fieldCount
		m.setIdx--
		if m.setIdx < 0 {
			m.exIdx--
			if m.exIdx < 0 {
				m.exIdx = len(m.exercises) - 1
			}
			m.setIdx = len(m.exercises[m.exIdx].sets) - 1
		}
	}

	m.focusCurrent()
	return m
}

// moveSet moves focus a whole set up or down within the session
func (m CompleteModel) moveSet(delta int) CompleteModel {
	m = m.blurCurrent()
	m.setIdx += delta
	if m.setIdx < 0 {
		if m.exIdx > 0 {
			m.exIdx--
			m.setIdx = len(m.exercises[m.exIdx].sets) - 1
		} else {
			m.setIdx = 0
		}
	} else if m.setIdx >= len(m.exercises[m.exIdx].sets) {
		if m.exIdx < len(m.exercises)-1 {
			m.exIdx++
			m.setIdx = 0
		} else {
			m.setIdx = len(m.exercises[m.exIdx].sets) - 1
		}
	}
	m.focusCurrent()
	return m
}

func (m CompleteModel) blurCurrent() CompleteModel {
	m.exercises[m.exIdx].sets[m.setIdx].inputs[m.fieldIdx].Blur()
	return m
}

func (m *CompleteModel) focusCurrent() {
	m.exercises[m.exIdx].sets[m.setIdx].inputs[m.fieldIdx].Focus()
}

// handleSaveModalKeys handles the save confirmation modal
func (m CompleteModel) handleSaveModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		m.showSaveModal = false
		return m, nil
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m CompleteModel) handleSaveChoice() (tea.Model, tea.Cmd) {
	m.showSaveModal = false
	if !m.saveModalChoice {
		return m, nil
	}

	results, err := m.collectResults()
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	completed, err := m.completer.Complete(m.target.ID, results)
	if err != nil {
		var ierr *session.IncompleteDataError
		if errors.As(err, &ierr) {
			m.validationErr = ierr.Error()
			return m, nil
		}
		m.err = err
		return m, tea.Quit
	}
	m.completed = completed
	return m, tea.Quit
}

// collectResults parses the form inputs into a completion submission.
// Empty fields stay nil so the engine reports them properly.
func (m CompleteModel) collectResults() ([]session.ExerciseResult, error) {
	results := make([]session.ExerciseResult, 0, len(m.exercises))
	for _, ex := range m.exercises {
		er := session.ExerciseResult{Name: ex.name}
		for i, set := range ex.sets {
			var sr session.SeriesResult
			if v := strings.TrimSpace(set.inputs[fieldReps].Value()); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil {
					return nil, fmt.Errorf("%s, set %d: reps must be a whole number", ex.name, i+1)
				}
				sr.Reps = &n
			}
			if v := strings.TrimSpace(set.inputs[fieldWeight].Value()); v != "" {
				w, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, fmt.Errorf("%s, set %d: weight must be a number", ex.name, i+1)
				}
				sr.Weight = &w
			}
			if v := strings.TrimSpace(set.inputs[fieldRest].Value()); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil {
					return nil, fmt.Errorf("%s, set %d: rest must be whole seconds", ex.name, i+1)
				}
				sr.Rest = &n
			}
			er.Series = append(er.Series, sr)
		}
		results = append(results, er)
	}
	return results, nil
}

// View renders the TUI
func (m CompleteModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	exStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	b.WriteString(titleStyle.Render(fmt.Sprintf("🏋️ %s — %s", m.target.Type, parser.FormatSessionDate(m.target.Date))))
	b.WriteString("\n\n")

	for ei, ex := range m.exercises {
		b.WriteString(exStyle.Render(ex.name))
		b.WriteString("\n")
		for si, set := range ex.sets {
			label := fmt.Sprintf("  Set %d: ", si+1)
			if ei == m.exIdx && si == m.setIdx {
				label = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true).Render(label)
			} else {
				label = labelStyle.Render(label)
			}
			b.WriteString(label)
			b.WriteString(set.inputs[fieldReps].View())
			b.WriteString(" ")
			b.WriteString(set.inputs[fieldWeight].View())
			b.WriteString(" ")
			b.WriteString(set.inputs[fieldRest].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n")
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Width(m.width - 4)

	var bottom string
	if m.showSaveModal {
		bottom = renderYesNoModal("Finish and save this session?", m.saveModalChoice, m.width)
	} else {
		helpStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(m.width)
		bottom = helpStyle.Render("tab/enter next field · ↑/↓ set · ctrl+a add set · ctrl+d drop set · ctrl+s save · esc cancel")
	}

	return lipgloss.JoinVertical(lipgloss.Left, "", border.Render(b.String()), "", bottom)
}
