package subtitle

import (
	"fmt"
	"strings"
)

// Render serializes groups as "[MM]" label lines each followed by the
// minute's paragraph, blocks separated by one blank line. Empty groups render
// as the empty string.
func Render(groups MinuteGroups) string {
	if len(groups) == 0 {
		return ""
	}

	minutes := groups.Minutes()
	lines := make([]string, 0, len(minutes)*3)
	for i, minute := range minutes {
		lines = append(lines,
			formatMinuteLabel(minute),
			Paragraph(groups[minute]),
		)
		if i < len(minutes)-1 {
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

// Paragraph trims each fragment and joins them with single spaces. Whitespace
// inside a fragment is left untouched.
func Paragraph(fragments []string) string {
	trimmed := make([]string, len(fragments))
	for i, fragment := range fragments {
		trimmed[i] = strings.TrimSpace(fragment)
	}
	return strings.Join(trimmed, " ")
}

// two digits minimum, never truncated
func formatMinuteLabel(minute int) string {
	return fmt.Sprintf("[%02d]", minute)
}
