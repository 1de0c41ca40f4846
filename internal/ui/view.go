package ui

import (
	"fmt"
	"strings"

	"github.com/jimezsa/jobsieve/internal/filter"
)

// FilterView renders filter-engine instructions as terminal rows: matched
// entries print highlighted with their annotation badges, hidden entries are
// omitted, reset entries print unstyled.
type FilterView struct {
	ui *UI
}

func NewFilterView(u *UI) *FilterView {
	return &FilterView{ui: u}
}

func (v *FilterView) Summary(text string) {
	v.ui.Infof("Filters: %s", text)
}

func (v *FilterView) Apply(inst filter.Instruction) {
	switch inst.Action {
	case filter.ActionHide:
		return
	case filter.ActionHighlight:
		line := entryLine(inst)
		if v.ui.ColorEnabled {
			line = v.ui.Output.String(line).Foreground(v.ui.Output.Color("2")).Bold().String()
		}
		badges := badgeText(inst.Annotations, v.ui)
		fmt.Fprintln(v.ui.Out, strings.TrimRight(line+" "+badges, " "))
	default:
		fmt.Fprintln(v.ui.Out, entryLine(inst))
	}
}

func entryLine(inst filter.Instruction) string {
	return fmt.Sprintf("%s | %s", inst.Title, inst.Company)
}

func badgeText(annotations []string, u *UI) string {
	if len(annotations) == 0 {
		return ""
	}
	badges := make([]string, 0, len(annotations))
	for _, annotation := range annotations {
		badge := "[" + annotation + "]"
		if u.ColorEnabled {
			badge = u.Output.String(badge).Faint().String()
		}
		badges = append(badges, badge)
	}
	return strings.Join(badges, " ")
}
