package store

import "context"

// UserStore is the read-only query surface over the user directory.
// Lookups that match nothing return (nil, nil); callers decide how a miss
// translates to a response.
type UserStore interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]User, error)
	// Get returns the first user whose ID equals id.
	Get(ctx context.Context, id string) (*User, error)
	// GetBy returns the first user matching every criterion. Recognized
	// fields are "id", "name" and "username"; a criterion naming any other
	// field matches nothing.
	GetBy(ctx context.Context, criteria map[string]string) (*User, error)
}

// seedUsers is the directory content. It is created once and never mutated.
func seedUsers() []User {
	return []User{
		{ID: "1", Name: "José", Username: "josevalim"},
		{ID: "2", Name: "Bruce", Username: "redrapids"},
		{ID: "3", Name: "Chris", Username: "chrismccord"},
	}
}

// fieldValue maps a criterion field name to the user's value for it.
func fieldValue(u User, field string) (string, bool) {
	switch field {
	case "id":
		return u.ID, true
	case "name":
		return u.Name, true
	case "username":
		return u.Username, true
	}
	return "", false
}
