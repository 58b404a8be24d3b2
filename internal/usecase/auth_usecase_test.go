package usecase

import "testing"

func neverTaken(string) bool { return false }

func TestDeriveEmail(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"John Doe", "j.doe@aui.ma"},
		{"Sarah El Amrani", "s.amrani@aui.ma"},
		{"Madonna", "madonna@aui.ma"},
		{"  Omar   Benali  ", "o.benali@aui.ma"},
		{"Jean-Pierre Dupont", "j.dupont@aui.ma"},
		{"", "user@aui.ma"},
	}

	for _, tc := range tests {
		if got := DeriveEmail(tc.fullName, neverTaken); got != tc.want {
			t.Errorf("DeriveEmail(%q) = %q, want %q", tc.fullName, got, tc.want)
		}
	}
}

func TestDeriveEmailCollisionSuffix(t *testing.T) {
	taken := map[string]bool{
		"a.miller@aui.ma": true,
	}

	got := DeriveEmail("Alexandra Miller", func(email string) bool { return taken[email] })
	if got != "a.miller1@aui.ma" {
		t.Errorf("first collision: got %q, want a.miller1@aui.ma", got)
	}
	taken[got] = true

	got = DeriveEmail("Aaron Miller", func(email string) bool { return taken[email] })
	if got != "a.miller2@aui.ma" {
		t.Errorf("second collision: got %q, want a.miller2@aui.ma", got)
	}
}

func TestAvatarInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"John Doe", "JD"},
		{"Madonna", "M"},
		{"Sarah El Amrani", "SE"},
	}

	for _, tc := range tests {
		if got := avatarInitials(tc.name); got != tc.want {
			t.Errorf("avatarInitials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestGenerateDoctorID(t *testing.T) {
	id := generateDoctorID()
	if len(id) != 8 || id[0] != 'D' {
		t.Fatalf("doctor ID %q does not match D + 7 digits", id)
	}
	for _, c := range id[1:] {
		if c < '0' || c > '9' {
			t.Fatalf("doctor ID %q contains a non-digit", id)
		}
	}
}
