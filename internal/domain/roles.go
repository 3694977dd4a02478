package domain

type Role string

const (
	// RoleJobSeeker users browse the feed and apply to jobs.
	RoleJobSeeker Role = "job_seeker"
	// RoleRecruiter users can post and manage job listings.
	RoleRecruiter Role = "recruiter"
)

func IsValidRole(r string) bool {
	return r == string(RoleJobSeeker) || r == string(RoleRecruiter)
}

// RoleForRegistration maps the registration flag onto a role.
// Role is chosen exactly once, at registration, and never mutated by auth flows.
func RoleForRegistration(isRecruiter bool) Role {
	if isRecruiter {
		return RoleRecruiter
	}
	return RoleJobSeeker
}
