package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	admin := Principal{Email: "a@x.io", Role: RoleAdmin}
	emp := Principal{Email: "e@x.io", Role: RoleEmployee, EmployeeID: "emp-1"}
	anon := Principal{}

	assert.True(t, HasRole(admin, RoleAdmin))
	assert.True(t, HasRole(emp, RoleAdmin, RoleEmployee))
	assert.False(t, HasRole(emp, RoleAdmin))
	assert.False(t, HasRole(anon, RoleAdmin, RoleEmployee))
	assert.False(t, HasRole(Principal{Role: RoleAdmin}), "role without identity is still anonymous")
}

func TestCanAccessEmployee(t *testing.T) {
	admin := Principal{Email: "a@x.io", Role: RoleAdmin}
	emp := Principal{Email: "e@x.io", Role: RoleEmployee, EmployeeID: "emp-1"}

	assert.True(t, CanAccessEmployee(admin, "emp-2"))
	assert.True(t, CanAccessEmployee(emp, "emp-1"))
	assert.False(t, CanAccessEmployee(emp, "emp-2"))
	assert.False(t, CanAccessEmployee(Principal{}, "emp-1"))
	assert.False(t, CanAccessEmployee(Principal{Email: "x@x.io", Role: RoleEmployee}, ""))
}
