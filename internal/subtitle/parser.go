package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

// bracketRegex matches whisper style single-line entries. The hour field is
// optional and ignored; group 1 is the start minute.
var bracketRegex = regexp.MustCompile(
	`^\[(?:\d{2}:)?(\d{2}):\d{2}[.,]\d{3}\s*-->\s*(?:\d{2}:)?\d{2}:\d{2}[.,]\d{3}\]\s*(.*)$`,
)

// blockRegex matches an SRT/VTT style timestamp range alone on its line.
var blockRegex = regexp.MustCompile(
	`^(\d{2}):(\d{2}):\d{2}[.,]\d{3}\s*-->\s*\d{2}:\d{2}:\d{2}[.,]\d{3}$`,
)

// Parse scans text line by line and returns every recognized entry in source
// order. Unrecognized lines are skipped; Parse never fails.
//
// The two syntaxes bucket differently on purpose. Bracket entries use the raw
// minute field of the start timestamp, block entries use hour*60+minute.
// Both conventions are kept as exported by their respective tools.
func Parse(text string) []Entry {
	lines := splitLines(text)
	if len(lines) > 0 {
		lines[0] = strings.TrimPrefix(lines[0], "\ufeff")
	}

	var entries []Entry
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if matches := bracketRegex.FindStringSubmatch(line); matches != nil {
			minute, _ := strconv.Atoi(matches[1])
			entries = append(entries, Entry{
				Minute: minute,
				Text:   strings.TrimSpace(matches[2]),
				Format: FormatBracket,
				Line:   i + 1,
			})
			i++
			continue
		}

		if matches := blockRegex.FindStringSubmatch(line); matches != nil {
			hours, _ := strconv.Atoi(matches[1])
			minutes, _ := strconv.Atoi(matches[2])
			entry := Entry{
				Minute: hours*60 + minutes,
				Format: FormatBlock,
				Line:   i + 1,
			}
			i++

			var textLines []string
			for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
				textLines = append(textLines, strings.TrimSpace(lines[i]))
				i++
			}
			entry.Text = strings.Join(textLines, " ")
			entries = append(entries, entry)

			// terminating blank line
			i++
			continue
		}

		i++
	}

	return entries
}

// splits on \n, \r\n and lone \r
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
