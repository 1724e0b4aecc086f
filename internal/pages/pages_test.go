package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw    string
		want   ID
		wantOK bool
	}{
		{"Home", Home, true},
		{"skills", Skills, true},
		{"  PROJECTS ", Projects, true},
		{"Experience", Experience, true},
		{"contact", Contact, true},
		{"About", Home, true},
		{"", Home, false},
		{"Blog", Home, false},
		{"../etc/passwd", Home, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Parse(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("query wins over stored", func(t *testing.T) {
		assert.Equal(t, Projects, Resolve("Projects", true, Skills))
	})
	t.Run("unknown query falls back to home", func(t *testing.T) {
		assert.Equal(t, Home, Resolve("Nope", true, Skills))
	})
	t.Run("empty query value present falls back to home", func(t *testing.T) {
		assert.Equal(t, Home, Resolve("", true, Contact))
	})
	t.Run("stored used when query absent", func(t *testing.T) {
		assert.Equal(t, Experience, Resolve("", false, Experience))
	})
	t.Run("invalid stored falls back to home", func(t *testing.T) {
		assert.Equal(t, Home, Resolve("", false, ID("garbage")))
		assert.Equal(t, Home, Resolve("", false, ""))
	})
}

func TestResolveAlwaysKnown(t *testing.T) {
	inputs := []string{"", "x", "HOME", "contact", "Skills ", "🚀", "null"}
	for _, in := range inputs {
		for _, stored := range append(All(), "", "bogus") {
			assert.True(t, Resolve(in, true, stored).Valid())
			assert.True(t, Resolve(in, false, stored).Valid())
		}
	}
}

func TestNav(t *testing.T) {
	items := Nav(Projects)
	assert.Len(t, items, len(All()))
	active := 0
	for _, it := range items {
		if it.Active {
			active++
			assert.Equal(t, Projects, it.ID)
		}
		assert.Equal(t, "/?page="+string(it.ID), it.Href)
	}
	assert.Equal(t, 1, active)

	for _, it := range Nav("unknown") {
		assert.Equal(t, it.ID == Home, it.Active)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = "mutated"
	assert.Equal(t, Home, All()[0])
}
