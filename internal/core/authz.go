package core

// AdminPolicy decides whether an authenticated user is an administrator.
// Membership is configured (ADMIN_EMAILS) rather than compiled in, and the
// flag is always derived from the live session email, never stored.
type AdminPolicy struct {
	emails map[string]struct{}
}

// NewAdminPolicy builds a policy from the configured address list.
func NewAdminPolicy(emails []string) *AdminPolicy {
	m := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if e != "" {
			m[e] = struct{}{}
		}
	}
	return &AdminPolicy{emails: m}
}

// IsAdmin reports whether email exactly matches a configured admin
// address. The comparison is case-sensitive with no normalization.
func (p *AdminPolicy) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	_, ok := p.emails[email]
	return ok
}
