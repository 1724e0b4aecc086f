// Package contact checks contact form submissions. Delivery is handled by an
// external form relay; nothing here stores or sends a message.
package contact

// Submission is the bound contact form.
type Submission struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// Status is the outcome shown to the visitor.
type Status string

const (
	Success Status = "success"
	Warning Status = "warning"
)

const (
	successMessage = "Message received (demo)."
	warningMessage = "Please fill all fields."
)

// Result is the feedback rendered after a submission.
type Result struct {
	Status  Status
	Message string
	Missing []string
}

// OK reports whether the submission was accepted.
func (r Result) OK() bool { return r.Status == Success }

// Validate accepts the submission only when all three fields are non-empty.
func Validate(s Submission) Result {
	var missing []string
	if s.Name == "" {
		missing = append(missing, "name")
	}
	if s.Email == "" {
		missing = append(missing, "email")
	}
	if s.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return Result{Status: Warning, Message: warningMessage, Missing: missing}
	}
	return Result{Status: Success, Message: successMessage}
}
