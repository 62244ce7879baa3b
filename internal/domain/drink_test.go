package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrink_Validate(t *testing.T) {
	water := Recipe{{Name: "water", Color: "blue", Parts: 1}}

	assert.NoError(t, NewDrink("Water", water).Validate())

	err := NewDrink("   ", water).Validate()
	assert.True(t, IsCode(err, CodeBadRequest))

	err = NewDrink("Water", nil).Validate()
	assert.True(t, IsCode(err, CodeUnprocessable))

	err = NewDrink("Water", Recipe{{Name: "water", Color: "", Parts: 1}}).Validate()
	assert.True(t, IsCode(err, CodeUnprocessable))

	err = NewDrink("Water", Recipe{{Name: "water", Color: "blue", Parts: 0}}).Validate()
	assert.True(t, IsCode(err, CodeUnprocessable))
}

func TestPrincipal_HasPermission(t *testing.T) {
	p := &Principal{Subject: "auth0|barista", Permissions: []string{PermissionGetDrinksDetail}}
	assert.True(t, p.HasPermission(PermissionGetDrinksDetail))
	assert.False(t, p.HasPermission(PermissionDeleteDrinks))

	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.HasPermission(PermissionGetDrinksDetail))
}
