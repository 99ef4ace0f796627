package rbac

import (
	"reflect"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"administrator", RoleAdmin},
		{"owner", RoleOwner},
		{"receptionist", RoleReceptionist},
		{"staff", RoleStaff},
		{"superuser", RoleStaff},
		{"", RoleStaff},
	}

	for _, tc := range cases {
		if got := ParseRole(tc.in); got != tc.want {
			t.Errorf("ParseRole(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestClientProjectionPerTier(t *testing.T) {
	cases := []struct {
		role   Role
		fields []string
	}{
		{RoleAdmin, []string{"id", "person", "projected_revenue_30d", "total_revenue", "active", "created_at", "updated_at"}},
		{RoleOwner, []string{"id", "person", "projected_revenue_30d", "total_revenue"}},
		{RoleReceptionist, []string{"id", "person", "active"}},
		{RoleStaff, []string{"id", "person"}},
	}

	for _, tc := range cases {
		got := For(tc.role, EntityClient).Fields
		if !reflect.DeepEqual(got, tc.fields) {
			t.Errorf("%s client fields = %v, want %v", tc.role, got, tc.fields)
		}
	}
}

func TestPersonAdminSeesAllColumns(t *testing.T) {
	p := For(RoleAdmin, EntityPerson)
	if len(p.Fields) != 8 {
		t.Fatalf("admin person list has %d columns, want 8: %v", len(p.Fields), p.Fields)
	}
	for _, f := range []string{"cpf", "email", "active", "created_at", "updated_at"} {
		if !p.HasField(f) {
			t.Errorf("admin person list missing %q", f)
		}
	}
}

func TestActiveFilterRestrictedToAdminAndReceptionist(t *testing.T) {
	for _, entity := range []Entity{EntityPerson, EntityClient, EntitySlot, EntityAppointment} {
		for _, role := range []Role{RoleAdmin, RoleReceptionist} {
			if !For(role, entity).HasFilter("active") {
				t.Errorf("%s should have active filter on %s", role, entity)
			}
		}
		for _, role := range []Role{RoleOwner, RoleStaff} {
			if For(role, entity).HasFilter("active") {
				t.Errorf("%s should not have active filter on %s", role, entity)
			}
		}
	}
}

func TestBulkActionsOnlyForAdminAndReceptionist(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleReceptionist} {
		p := For(role, EntityAppointment)
		if !p.AllowsBulk("mark_completed") || !p.AllowsBulk("mark_canceled") {
			t.Errorf("%s should be allowed both bulk actions", role)
		}
	}
	for _, role := range []Role{RoleOwner, RoleStaff} {
		p := For(role, EntityAppointment)
		if p.AllowsBulk("mark_completed") || p.AllowsBulk("mark_canceled") {
			t.Errorf("%s should not be allowed bulk actions", role)
		}
	}
}

func TestUnknownRoleFallsBackToStaffTier(t *testing.T) {
	got := For(Role("intern"), EntityClient).Fields
	want := For(RoleStaff, EntityClient).Fields
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unknown role fields = %v, want staff tier %v", got, want)
	}
}

func TestReportAccess(t *testing.T) {
	if !CanGenerateReport(RoleAdmin) || !CanGenerateReport(RoleOwner) {
		t.Error("administrator and owner must be able to generate the report")
	}
	if CanGenerateReport(RoleReceptionist) || CanGenerateReport(RoleStaff) {
		t.Error("receptionist and staff must not generate the report")
	}
}
