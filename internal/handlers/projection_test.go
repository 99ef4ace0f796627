package handlers

import (
	"reflect"
	"testing"

	"github.com/salao-m2a/salon-scheduler/internal/domain/rbac"
)

func TestActiveFilterValue(t *testing.T) {
	// admin tem o filtro em clientes; owner não tem
	admin := rbac.For(rbac.RoleAdmin, rbac.EntityClient)
	owner := rbac.For(rbac.RoleOwner, rbac.EntityClient)

	cases := []struct {
		name      string
		policy    rbac.Policy
		raw       string
		wantValue bool
		wantApply bool
	}{
		{"admin sem parametro", admin, "", false, false},
		{"admin true", admin, "true", true, true},
		{"admin false", admin, "false", false, true},
		{"admin valor invalido", admin, "talvez", false, false},

		// papel sem o filtro lista ativos e inativos; o parâmetro é
		// ignorado em vez de virar restrição implícita
		{"owner sem parametro", owner, "", false, false},
		{"owner true", owner, "true", false, false},
		{"owner false", owner, "false", false, false},
	}

	for _, tc := range cases {
		value, apply := activeFilterValue(tc.policy, tc.raw)
		if value != tc.wantValue || apply != tc.wantApply {
			t.Errorf("%s: activeFilterValue = (%v, %v), want (%v, %v)",
				tc.name, value, apply, tc.wantValue, tc.wantApply)
		}
	}
}

func TestPriceRangeClause(t *testing.T) {
	cases := []struct {
		bucket string
		clause string
		args   []any
		ok     bool
	}{
		{"0-50", "price < ?", []any{"50"}, true},
		{"50-100", "price >= ? AND price <= ?", []any{"50", "100"}, true},
		{"100-150", "price >= ? AND price <= ?", []any{"100", "150"}, true},
		{"150-200", "price >= ? AND price <= ?", []any{"150", "200"}, true},
		{"200+", "price > ?", []any{"200"}, true},
		{"50-200", "", nil, false},
		{"", "", nil, false},
	}

	for _, tc := range cases {
		clause, args, ok := priceRangeClause(tc.bucket)
		if ok != tc.ok || clause != tc.clause || !reflect.DeepEqual(args, tc.args) {
			t.Errorf("priceRangeClause(%q) = (%q, %v, %v), want (%q, %v, %v)",
				tc.bucket, clause, args, ok, tc.clause, tc.args, tc.ok)
		}
	}
}

func TestProjectKeepsOnlyPolicyFields(t *testing.T) {
	p := rbac.Policy{Fields: []string{"id", "name"}}

	row := map[string]any{"id": 1, "name": "Corte", "price": "35.00"}
	got := project(p, row)

	if len(got) != 2 {
		t.Fatalf("projected %d fields, want 2", len(got))
	}
	if _, ok := got["price"]; ok {
		t.Error("price should not survive the projection")
	}
}
