package registration

import "fmt"

// NotificationKind selects how a notification is presented.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// SuccessTitle is the title of the notification shown after a submission.
const SuccessTitle = "Registration Successful"

// Notification is a transient message for the user.
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
}

// Success builds the notification announcing that s was accepted.
func Success(s Submission) Notification {
	return Notification{
		Kind:        NotificationSuccess,
		Title:       SuccessTitle,
		Description: fmt.Sprintf("Welcome, %s! Your information has been logged.", s.Name),
	}
}

// Failure builds the notification shown when a submitter rejects a submission.
func Failure(err error) Notification {
	return Notification{
		Kind:        NotificationError,
		Title:       "Registration Failed",
		Description: err.Error(),
	}
}

// String renders the notification on one line.
func (n Notification) String() string {
	if n.Description == "" {
		return n.Title
	}
	return n.Title + ": " + n.Description
}
