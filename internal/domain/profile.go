package domain

// UserProfile is the singleton customer record for a session. Payment holds a
// masked descriptor only; full payment details are never stored.
type UserProfile struct {
	ID      string
	Name    string
	Address string
	Payment string
}
