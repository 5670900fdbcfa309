package domain

// Session is the client-held identity blob. It lives only in the coach CLI's
// local store for the duration of a login; the server keeps no session state
// and re-checks the access code on every request.
type Session struct {
	Role      Role   `json:"role"`
	Code      string `json:"code"`
	CoachName string `json:"coach_name,omitempty"`
}

func (s *Session) IsCoach() bool {
	return s != nil && s.Role == RoleCoach
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
