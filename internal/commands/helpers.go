package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nboyer/gymlog/internal/models"
)

// resolveSession finds a session by full id or by unique id prefix, so
// the short ids printed in tables work as arguments.
func resolveSession(idOrPrefix string) (*models.Session, error) {
	sessions, err := repo.All()
	if err != nil {
		return nil, err
	}

	var match *models.Session
	for i := range sessions {
		if sessions[i].ID == idOrPrefix {
			s := sessions[i]
			return &s, nil
		}
		if strings.HasPrefix(sessions[i].ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("id %q is ambiguous, use more characters", idOrPrefix)
			}
			s := sessions[i]
			match = &s
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no session with id %q", idOrPrefix)
	}
	return match, nil
}

// promptYesNo asks a y/N question on the terminal. Anything but an
// explicit yes is a no.
func promptYesNo(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// shortID is the first uuid group, enough to identify a session in a
// table.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
