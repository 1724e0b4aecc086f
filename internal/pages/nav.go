package pages

// NavItem is a view model for one navigation control.
type NavItem struct {
	ID     ID
	Label  string
	Icon   string
	Href   string
	Active bool
}

var labels = map[ID]struct{ label, icon string }{
	Home:       {"Home", "🏠"},
	Skills:     {"Skills", "🧠"},
	Projects:   {"Projects", "🚀"},
	Experience: {"Experience", "📚"},
	Contact:    {"Contact", "📞"},
}

// Nav renders the navigation bar with the current page marked active.
func Nav(current ID) []NavItem {
	if !current.Valid() {
		current = Default
	}
	items := make([]NavItem, 0, len(ordered))
	for _, id := range ordered {
		l := labels[id]
		items = append(items, NavItem{
			ID:     id,
			Label:  l.label,
			Icon:   l.icon,
			Href:   id.Href(),
			Active: id == current,
		})
	}
	return items
}
