package core

// System system info
type System struct {
	Admins  []string
	Genesis int64
	Version string
}

// IsAdmin check if the user is an admin
func (s *System) IsAdmin(userID string) bool {
	for _, a := range s.Admins {
		if a == userID {
			return true
		}
	}

	return false
}
