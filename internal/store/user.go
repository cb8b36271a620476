package store

import "strings"

// User is a single entry in the directory.
type User struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Username string `json:"username" db:"username"`
}

// FirstName returns the first whitespace-delimited token of the user's
// display name. Pages show this instead of the full name.
func (u User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
