package subtitle

// Group buckets entry texts by minute, keeping source order within a minute.
func Group(entries []Entry) MinuteGroups {
	groups := make(MinuteGroups)
	for _, entry := range entries {
		groups[entry.Minute] = append(groups[entry.Minute], entry.Text)
	}
	return groups
}
