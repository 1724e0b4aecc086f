package pages

import "strings"

// ID identifies one of the static portfolio pages.
type ID string

const (
	Home       ID = "Home"
	Skills     ID = "Skills"
	Projects   ID = "Projects"
	Experience ID = "Experience"
	Contact    ID = "Contact"
)

// Default is the page shown when nothing else has been selected.
const Default = Home

// QueryParam is the URL query key carrying the current page.
const QueryParam = "page"

var ordered = []ID{Home, Skills, Projects, Experience, Contact}

var aliases = map[string]ID{
	"about": Home,
}

// All returns the known pages in navigation order.
func All() []ID {
	out := make([]ID, len(ordered))
	copy(out, ordered)
	return out
}

// Valid reports whether id is one of the known pages.
func (id ID) Valid() bool {
	for _, known := range ordered {
		if id == known {
			return true
		}
	}
	return false
}

func (id ID) String() string {
	return string(id)
}

// Href is the canonical URL of the page.
func (id ID) Href() string {
	return "/?" + QueryParam + "=" + string(id)
}

// Parse maps a raw identifier to a known page. Matching ignores case and
// surrounding whitespace. Unknown values yield (Default, false).
func Parse(raw string) (ID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default, false
	}
	for _, known := range ordered {
		if strings.EqualFold(raw, string(known)) {
			return known, true
		}
	}
	if id, ok := aliases[strings.ToLower(raw)]; ok {
		return id, true
	}
	return Default, false
}

// Resolve picks the page to render. A query value, when present, wins even if
// it is unknown (in which case Default is used). Otherwise the stored page is
// used, falling back to Default.
func Resolve(query string, present bool, stored ID) ID {
	if present {
		id, _ := Parse(query)
		return id
	}
	if stored.Valid() {
		return stored
	}
	return Default
}
