package user

import "testing"

func TestRoleAllowed(t *testing.T) {
	cases := []struct {
		name    string
		role    Role
		allowed []Role
		want    bool
	}{
		{"admin in admin set", RoleAdmin, []Role{RoleAdmin}, true},
		{"hr in admin+hr set", RoleHR, []Role{RoleAdmin, RoleHR}, true},
		{"employee never passes admin check", RoleEmployee, []Role{RoleAdmin}, false},
		{"no implicit admin bypass", RoleAdmin, []Role{RoleHR}, false},
		{"finance in payroll set", RoleFinance, []Role{RoleAdmin, RoleFinance}, true},
		{"manager outside payroll set", RoleManager, []Role{RoleAdmin, RoleFinance}, false},
		{"empty set admits nobody", RoleAdmin, nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RoleAllowed(c.role, c.allowed...); got != c.want {
				t.Errorf("RoleAllowed(%q, %v) = %v, want %v", c.role, c.allowed, got, c.want)
			}
		})
	}
}

func TestRoleAllowedExhaustive(t *testing.T) {
	// role is allowed iff it is a member of the declared set, for every
	// role x set pair used by the router.
	sets := map[string][]Role{
		"employee-management": {RoleAdmin, RoleHR},
		"payroll-processing":  {RoleAdmin, RoleFinance},
		"payroll-read":        {RoleAdmin, RoleFinance, RoleManager},
	}
	for name, set := range sets {
		for _, role := range Roles {
			want := false
			for _, member := range set {
				if member == role {
					want = true
				}
			}
			if got := RoleAllowed(role, set...); got != want {
				t.Errorf("set %s: RoleAllowed(%q) = %v, want %v", name, role, got, want)
			}
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, role := range Roles {
		if !role.IsValid() {
			t.Errorf("expected %q to be valid", role)
		}
	}
	for _, bad := range []Role{"", "superadmin", "Admin", "root"} {
		if bad.IsValid() {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}
