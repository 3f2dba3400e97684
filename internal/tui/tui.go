package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nboyer/gymlog/internal/parser"
)

// RunPlanTUI starts the interactive session planning wizard
func RunPlanTUI(model PlanModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(PlanModel); ok {
		switch {
		case m.cancelled:
			fmt.Println("❌ Session planning cancelled.")
		case m.declined:
			fmt.Println("Kept the existing planned session. Nothing saved.")
		case m.created != nil:
			fmt.Printf("✅ Planned %s session for %s — %d exercise(s), id %s\n",
				m.created.Type, parser.FormatSessionDate(m.created.Date),
				len(m.created.Exercises), shortID(m.created.ID))
		case m.err != nil:
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunCompleteTUI starts the interactive completion form
func RunCompleteTUI(model CompleteModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	if err != nil {
		return err
	}

	if m, ok := finalModel.(CompleteModel); ok {
		switch {
		case m.cancelled:
			fmt.Println("❌ Session left as planned. Nothing saved.")
		case m.completed != nil:
			fmt.Printf("✅ Completed %s session for %s 💪\n",
				m.completed.Type, parser.FormatSessionDate(m.completed.Date))
		case m.err != nil:
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// shortID is the first uuid group, enough to address a session on the
// command line.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
