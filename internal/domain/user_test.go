package domain

import "testing"

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"A@X.com":        "a@x.com",
		"  ann@x.com  ":  "ann@x.com",
		"MiXeD@CaSe.IO":  "mixed@case.io",
		"already@low.er": "already@low.er",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRoleForRegistration(t *testing.T) {
	t.Parallel()

	if RoleForRegistration(true) != RoleRecruiter {
		t.Fatalf("recruiter flag must map to recruiter")
	}
	if RoleForRegistration(false) != RoleJobSeeker {
		t.Fatalf("default role must be job_seeker")
	}
}

func TestIsValidRole(t *testing.T) {
	t.Parallel()

	if !IsValidRole("job_seeker") || !IsValidRole("recruiter") {
		t.Fatalf("expected both roles valid")
	}
	if IsValidRole("admin") || IsValidRole("") {
		t.Fatalf("unexpected role accepted")
	}
}
