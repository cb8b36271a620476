package store

import "context"

// MemoryStore serves the seed users from an in-process slice. The slice is
// read-only after construction, so concurrent use needs no locking.
type MemoryStore struct {
	users []User
}

// NewMemoryStore creates a store holding the seed users.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: seedUsers()}
}

// List returns all users in insertion order.
func (s *MemoryStore) List(ctx context.Context) ([]User, error) {
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// Get scans the list for the first user with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*User, error) {
	return s.GetBy(ctx, map[string]string{"id": id})
}

// GetBy scans the list for the first user matching every criterion. Empty
// criteria are unsatisfiable, not match-all.
func (s *MemoryStore) GetBy(ctx context.Context, criteria map[string]string) (*User, error) {
	if len(criteria) == 0 {
		return nil, nil
	}
	for _, u := range s.users {
		if matches(u, criteria) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func matches(u User, criteria map[string]string) bool {
	for field, want := range criteria {
		got, ok := fieldValue(u, field)
		if !ok || got != want {
			return false
		}
	}
	return true
}
