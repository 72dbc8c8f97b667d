package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fmebackup/internal/tui"
)

// Options configure a single backup run.
type Options struct {
	// Root is the resolved installation root. Must be set by the caller.
	Root string

	// Dest is the parent directory receiving the backup folder. Empty
	// means the current user's home directory.
	Dest string

	// Timestamp names the backup folder. The zero value means time.Now().
	Timestamp time.Time

	// DryRun prints the copy plan without creating or copying anything.
	DryRun bool
}

// Result summarizes a completed run.
type Result struct {
	Dest    string   // destination directory of this run
	Copied  int      // successfully copied items
	Missing []string // manifest paths absent from the root
	Failed  []string // manifest paths whose copy failed
}

// Run executes one backup: validate the root, create the timestamped
// destination folder, and copy every manifest item that exists on disk.
// A missing or failing item is reported and skipped; it never aborts the
// run. Run returns an error only for the fatal preconditions: invalid
// root, unresolvable home directory, or destination creation failure.
func Run(opts Options, p *tui.Printer) (*Result, error) {
	info, err := os.Stat(opts.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("installation root not found: %s", opts.Root)
		}
		return nil, fmt.Errorf("failed to access installation root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("installation root is not a directory: %s", opts.Root)
	}

	sources := SourcePaths(opts.Root)

	parent := opts.Dest
	if parent == "" {
		parent, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
	}
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("backup parent is not a directory: %s", parent)
	}

	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	dest := filepath.Join(parent, DestName(ts))

	if opts.DryRun {
		p.Infof("Would create %s", dest)
		for _, src := range sources {
			if _, err := os.Stat(src); os.IsNotExist(err) {
				p.Warnf("Would skip %s (not found)", src)
				continue
			}
			p.Infof("Would copy %s", src)
		}
		return &Result{Dest: dest}, nil
	}

	// Mkdir, not MkdirAll: a name collision must surface as an error
	// instead of silently reusing the existing folder.
	if err := os.Mkdir(dest, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory %s: %w", dest, err)
	}

	result := &Result{Dest: dest}
	for _, src := range sources {
		if _, err := os.Stat(src); os.IsNotExist(err) {
			p.Warnf("Not found, skipping: %s", src)
			result.Missing = append(result.Missing, src)
			continue
		}

		if err := copyPath(src, dest); err != nil {
			p.Errorf("Failed to copy %s: %v", src, err)
			p.Warnf("Skipping: %s", src)
			result.Failed = append(result.Failed, src)
			continue
		}

		result.Copied++
		p.Successf("Copied %s", src)
	}

	summarize(result, p)
	return result, nil
}

// summarize prints the end-of-run message.
func summarize(r *Result, p *tui.Printer) {
	switch {
	case r.Copied > 0:
		p.Successf("Backed up %d item(s) to %s", r.Copied, r.Dest)
	case r.Dest != "":
		p.Warnf("Backup folder %s was created but no items were copied", r.Dest)
	default:
		// Unreachable: the run fails before the loop when the folder
		// cannot be created.
		p.Warnf("No backup was created")
	}
}
