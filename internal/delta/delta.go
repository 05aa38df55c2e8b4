// Package delta summarises what a save changed on disk.
package delta

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Stats counts changed lines between two versions of a file.
type Stats struct {
	Added   int
	Removed int
	Created bool
}

// Changed reports whether anything differs.
func (s Stats) Changed() bool { return s.Created || s.Added > 0 || s.Removed > 0 }

// String renders the stats as shown on the status line, e.g. "+3 -1".
func (s Stats) String() string {
	if s.Created {
		return fmt.Sprintf("new, +%d", s.Added)
	}
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Compute diffs before against after. existed is false when the file did not
// exist before the save.
func Compute(path, before, after string, existed bool) Stats {
	u := Unified(path, before, after)
	st := Stats{Created: !existed}
	for _, h := range u.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case gotextdiff.Insert:
				st.Added++
			case gotextdiff.Delete:
				st.Removed++
			}
		}
	}
	return st
}

// Unified returns the unified diff of before and after, labelled with path.
func Unified(path, before, after string) gotextdiff.Unified {
	edits := myers.ComputeEdits(span.URIFromPath(path), before, after)
	return gotextdiff.ToUnified("a/"+path, "b/"+path, before, edits)
}
