package commit

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var ErrNoRepository = errors.New("not in a git repository")

// Writer creates one dated record. The emitter only ever needs this
// single capability, so tests inject fakes instead of running git.
type Writer interface {
	WriteCommit(timestamp string) error
}

// GitWriter writes empty commits with a forced author date. Timestamps
// are YYYY-MM-DDTHH:MM:SS strings, which git accepts as ISO 8601 in
// the local timezone.
type GitWriter struct {
	// Dir is the repository to commit into; empty means the current
	// directory.
	Dir string
	// MessagePrefix is prepended to the timestamp to form the commit
	// message.
	MessagePrefix string
}

func (g *GitWriter) WriteCommit(timestamp string) error {
	cmd := exec.Command("git",
		"commit",
		"--allow-empty",
		"-m", fmt.Sprintf("%s %s", g.MessagePrefix, timestamp),
		"--date", timestamp,
	)
	cmd.Dir = g.Dir

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("Couldn't create commit for %s:\n%w: %s", timestamp, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// CheckRepository verifies a git repository exists before any commits
// are attempted. Emission must not start at all outside a repository.
func (g *GitWriter) CheckRepository() error {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = g.Dir

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w, run 'git init' first", ErrNoRepository)
	}
	return nil
}
