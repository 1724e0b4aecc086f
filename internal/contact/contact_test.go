package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Submission
		want    Status
		missing []string
	}{
		{"all fields", Submission{"Ada", "ada@example.com", "Hello"}, Success, nil},
		{"whitespace counts as filled", Submission{" ", " ", " "}, Success, nil},
		{"missing name", Submission{"", "ada@example.com", "Hello"}, Warning, []string{"name"}},
		{"missing email", Submission{"Ada", "", "Hello"}, Warning, []string{"email"}},
		{"missing message", Submission{"Ada", "ada@example.com", ""}, Warning, []string{"message"}},
		{"all empty", Submission{}, Warning, []string{"name", "email", "message"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.in)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, tt.missing, got.Missing)
			assert.Equal(t, tt.want == Success, got.OK())
			if got.OK() {
				assert.Equal(t, "Message received (demo).", got.Message)
			} else {
				assert.Equal(t, "Please fill all fields.", got.Message)
			}
		})
	}
}
