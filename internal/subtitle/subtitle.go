package subtitle

import "sort"

// represents single recognized subtitle line or block
type Entry struct {
	Minute int
	Text   string
	Format Format
	Line   int // 1-based source line of the timestamp
}

// represents the timestamp syntax an entry was recognized from
type Format string

const (
	// [MM:SS.mmm --> MM:SS.mmm] text, optionally with a leading HH: field
	FormatBracket Format = "bracket"
	// HH:MM:SS,mmm --> HH:MM:SS,mmm followed by text lines
	FormatBlock Format = "block"
)

// MinuteGroups maps a minute bucket to its text fragments in source order.
type MinuteGroups map[int][]string

// ascending minute keys
func (g MinuteGroups) Minutes() []int {
	minutes := make([]int, 0, len(g))
	for minute := range g {
		minutes = append(minutes, minute)
	}
	sort.Ints(minutes)
	return minutes
}
