package mojang

import (
	"fmt"
)

const maxUsernameLength = 16

type UsernameError struct {
	Username string
	Reason   string
}

func (e *UsernameError) Error() string {
	return fmt.Sprintf("invalid username %q: %s", e.Username, e.Reason)
}

// ValidateUsername checks that a username is one the API may return.
//
// It doesn't check whether the username is currently registered or even
// obtainable. Notably there is no minimum length check: some very old
// accounts do have usernames shorter than 3 characters.
func ValidateUsername(username string) error {
	if username == "" {
		return &UsernameError{username, "the username is empty"}
	}

	if len(username) > maxUsernameLength {
		return &UsernameError{username, "the username is too long"}
	}

	for _, ch := range username {
		if !isAllowedUsernameChar(ch) {
			return &UsernameError{username, fmt.Sprintf("the username contains an invalid character %q", ch)}
		}
	}

	return nil
}

func isAllowedUsernameChar(ch rune) bool {
	return ch == '_' ||
		(ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z')
}
