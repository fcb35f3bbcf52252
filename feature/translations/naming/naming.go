// Package naming provides the suffixes used to name generated fix files.
package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

var (
	// ErrNoBranch is returned when the repository HEAD is detached or unreadable.
	ErrNoBranch = zerr.New("could not determine the current git branch")
	// ErrUnknownFormat is returned for an unsupported name format.
	ErrUnknownFormat = zerr.New("unknown fix name format")
)

// Labeler produces the label appended to fix file names.
type Labeler interface {
	Label() (string, error)
}

// Static always returns the same label.
type Static string

func (s Static) Label() (string, error) {
	return string(s), nil
}

// Date labels fix files with the current day as YYYY-MM-DD.
type Date struct {
	Now func() time.Time
}

func (d Date) Label() (string, error) {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return now().Format(time.DateOnly), nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// GitBranch labels fix files with the branch checked out in the repository at Root.
type GitBranch struct {
	Fs   afero.Fs
	Root string
}

func (g GitBranch) Label() (string, error) {
	head := filepath.Join(g.Root, ".git", "HEAD")
	data, err := afero.ReadFile(g.Fs, head)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrNoBranch.Error()), "path", head)
	}

	ref := strings.TrimSpace(string(data))
	branch, ok := strings.CutPrefix(ref, "ref: refs/heads/")
	if !ok || branch == "" {
		return "", fmt.Errorf("%w: HEAD is %q", ErrNoBranch, ref)
	}
	return unsafeChars.ReplaceAllString(branch, "_"), nil
}

// New returns the labeler for format. A non-empty label overrides the format.
func New(format, label string, fs afero.Fs, root string) (Labeler, error) {
	if label != "" {
		return Static(label), nil
	}
	switch format {
	case "git":
		return GitBranch{Fs: fs, Root: root}, nil
	case "date":
		return Date{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
