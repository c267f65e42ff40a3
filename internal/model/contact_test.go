package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContact_StoresEveryField(t *testing.T) {
	c := NewContact(3, "Ana", "Gomez", "F", "work", "1990-04-12", "Calle 1", 5551234, "ana@home.com")

	assert.Equal(t, 3, c.ID())
	assert.Equal(t, "Ana", c.FirstName())
	assert.Equal(t, "Gomez", c.LastName())
	assert.Equal(t, "F", c.Gender())
	assert.Equal(t, "work", c.Category())
	assert.Equal(t, "1990-04-12", c.BirthDate())
	assert.Equal(t, "Calle 1", c.Address())
	assert.Equal(t, 5551234, c.Phone())
	assert.Equal(t, "ana@home.com", c.Email())
}

func TestContactSetters(t *testing.T) {
	var c Contact

	c.SetID(9)
	c.SetFirstName("Luis")
	c.SetLastName("Perez")
	c.SetGender("M")
	c.SetCategory("friends")
	c.SetBirthDate("not a date")
	c.SetAddress("Av. 2")
	c.SetPhone(-1)
	c.SetEmail("")

	want := NewContact(9, "Luis", "Perez", "M", "friends", "not a date", "Av. 2", -1, "")
	assert.Equal(t, want, c)
}
