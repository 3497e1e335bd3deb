package registration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	n := Success(Submission{Name: "Ada Lovelace"})

	require.Equal(t, NotificationSuccess, n.Kind)
	require.Equal(t, "Registration Successful", n.Title)
	require.Equal(t, "Welcome, Ada Lovelace! Your information has been logged.", n.Description)
	require.Equal(t, "Registration Successful: Welcome, Ada Lovelace! Your information has been logged.", n.String())
}

func TestFailure(t *testing.T) {
	n := Failure(errors.New("upstream unavailable"))

	require.Equal(t, NotificationError, n.Kind)
	require.Equal(t, "upstream unavailable", n.Description)
}
