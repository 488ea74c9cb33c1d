package subtitle

import (
	"strings"
	"unicode/utf8"
)

// per-minute summary of a parsed transcript
type MinuteStats struct {
	Minute     int
	Entries    int
	Words      int
	Characters int
	Formats    map[Format]int
}

// Stats summarizes entries per minute in ascending minute order. Word and
// character counts are taken from the rendered paragraph.
func Stats(entries []Entry) []MinuteStats {
	groups := Group(entries)

	formats := make(map[int]map[Format]int, len(groups))
	for _, entry := range entries {
		if formats[entry.Minute] == nil {
			formats[entry.Minute] = make(map[Format]int)
		}
		formats[entry.Minute][entry.Format]++
	}

	stats := make([]MinuteStats, 0, len(groups))
	for _, minute := range groups.Minutes() {
		paragraph := Paragraph(groups[minute])
		stats = append(stats, MinuteStats{
			Minute:     minute,
			Entries:    len(groups[minute]),
			Words:      len(strings.Fields(paragraph)),
			Characters: utf8.RuneCountInString(paragraph),
			Formats:    formats[minute],
		})
	}
	return stats
}
