package subtitle

// Transform converts a subtitle transcript into minute-indexed paragraphs.
// It is total: unrecognized input yields the empty string.
func Transform(text string) string {
	return Render(Group(Parse(text)))
}
