package tui

import (
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// changeCounts summarizes unsaved line changes relative to the persisted text.
type changeCounts struct {
	added    int
	modified int
	removed  int
}

func (c changeCounts) any() bool { return c.added+c.modified+c.removed > 0 }

// diffCounts computes line-level change counts between the last persisted
// text and the current buffer. Paired insert/delete lines within a hunk count
// as modifications, the remainder as pure additions or removals.
func diffCounts(saved, current string) changeCounts {
	if saved == current {
		return changeCounts{}
	}
	edits := myers.ComputeEdits(span.URIFromPath("doc"), saved, current)
	unified := gotextdiff.ToUnified("saved", "current", saved, edits)

	var c changeCounts
	for _, h := range unified.Hunks {
		var ins, del int
		for _, l := range h.Lines {
			switch l.Kind {
			case gotextdiff.Insert:
				ins++
			case gotextdiff.Delete:
				del++
			}
		}
		common := min(ins, del)
		c.modified += common
		c.added += ins - common
		c.removed += del - common
	}
	return c
}
