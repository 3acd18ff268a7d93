package list

// Filter returns the items whose label contains query, ignoring case, in
// their original order. An empty query returns source itself.
func Filter(source []Item, query string) []Item {
	if query == "" {
		return source
	}

	m := NewMatcher(query)
	out := make([]Item, 0, len(source))
	for _, item := range source {
		if m.Contains(item.FilterValue()) {
			out = append(out, item)
		}
	}
	return out
}

// Group partitions items into consecutive groups of size. The last group may
// be shorter; no group is ever empty. A non-positive size puts every item in
// a single group.
func Group(items []Item, size int) [][]Item {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]Item{items}
	}

	groups := make([][]Item, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		// Cap the capacity so an append on one group can't clobber the next.
		groups = append(groups, items[i:end:end])
	}
	return groups
}

// SelectPage returns groups[index], or an *IndexError.
func SelectPage(groups [][]Item, index int) ([]Item, error) {
	if err := CheckIndex(index, len(groups)); err != nil {
		return nil, err
	}
	return groups[index], nil
}
