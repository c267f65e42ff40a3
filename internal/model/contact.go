// Package model defines the data structures used throughout the agenda.
// Go has no inheritance, so records that "extend" each other do it by
// embedding: a User embeds a Contact and gets all of its methods promoted.
package model

// Contact is the generic personal record every entry in the agenda carries.
//
// Fields are unexported and reached through accessors so that types
// embedding Contact expose the same surface as the contact itself.
// Unset fields keep their zero value (empty string or 0).
type Contact struct {
	id        int
	firstName string
	lastName  string
	gender    string
	category  string
	birthDate string // stored as given, no date parsing
	address   string
	phone     int
	email     string
}

// NewContact builds a fully populated Contact. Values are stored verbatim.
func NewContact(
	id int,
	firstName, lastName, gender, category, birthDate, address string,
	phone int,
	email string,
) Contact {
	return Contact{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		gender:    gender,
		category:  category,
		birthDate: birthDate,
		address:   address,
		phone:     phone,
		email:     email,
	}
}

func (c *Contact) ID() int      { return c.id }
func (c *Contact) SetID(id int) { c.id = id }

func (c *Contact) FirstName() string     { return c.firstName }
func (c *Contact) SetFirstName(v string) { c.firstName = v }

func (c *Contact) LastName() string     { return c.lastName }
func (c *Contact) SetLastName(v string) { c.lastName = v }

func (c *Contact) Gender() string     { return c.gender }
func (c *Contact) SetGender(v string) { c.gender = v }

func (c *Contact) Category() string     { return c.category }
func (c *Contact) SetCategory(v string) { c.category = v }

func (c *Contact) BirthDate() string     { return c.birthDate }
func (c *Contact) SetBirthDate(v string) { c.birthDate = v }

func (c *Contact) Address() string     { return c.address }
func (c *Contact) SetAddress(v string) { c.address = v }

func (c *Contact) Phone() int     { return c.phone }
func (c *Contact) SetPhone(v int) { c.phone = v }

// Email is the contact address, not the login credential (see User.LoginEmail).
func (c *Contact) Email() string     { return c.email }
func (c *Contact) SetEmail(v string) { c.email = v }
