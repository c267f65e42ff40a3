package model

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/contact-agenda/internal/apperror"
)

// UnnamedUser is what FullName returns when neither name is set.
const UnnamedUser = "User without a name"

// User represents an account that can authenticate against the agenda.
//
// It embeds Contact for the personal data, so u.FirstName(), u.Phone() and
// friends work directly on a User. The user ID is a separate identity from
// the embedded contact ID.
//
// The password is stored exactly as given. Hashing it is the caller's job,
// and it is never included in String, GoString or LogValue output.
//
// User has no internal locking; share instances across goroutines only with
// external synchronisation.
type User struct {
	Contact

	userID     int
	loginEmail string // login credential, expected unique across users
	password   string
	userPhone  int // may differ from the contact phone
}

// NewUser returns an empty User to be filled in through its setters.
func NewUser() *User {
	return &User{}
}

// NewUserWithCredentials returns a User with only its authentication fields
// set. The embedded Contact is left at its zero value.
func NewUserWithCredentials(userID int, loginEmail, password string, userPhone int) *User {
	return &User{
		userID:     userID,
		loginEmail: loginEmail,
		password:   password,
		userPhone:  userPhone,
	}
}

// NewUserWithContact returns a User carrying both credentials and contact
// data. Build the contact with NewContact.
func NewUserWithContact(userID int, loginEmail, password string, userPhone int, contact Contact) *User {
	return &User{
		Contact:    contact,
		userID:     userID,
		loginEmail: loginEmail,
		password:   password,
		userPhone:  userPhone,
	}
}

func (u *User) UserID() int      { return u.userID }
func (u *User) SetUserID(id int) { u.userID = id }

func (u *User) LoginEmail() string         { return u.loginEmail }
func (u *User) SetLoginEmail(email string) { u.loginEmail = email }

func (u *User) Password() string            { return u.password }
func (u *User) SetPassword(password string) { u.password = password }

func (u *User) UserPhone() int         { return u.userPhone }
func (u *User) SetUserPhone(phone int) { u.userPhone = phone }

// String implements fmt.Stringer. The password is deliberately absent.
func (u *User) String() string {
	return fmt.Sprintf("User{userId=%d, loginEmail='%s', firstName='%s', lastName='%s'}",
		u.userID, u.loginEmail, u.firstName, u.lastName)
}

// GoString keeps %#v from dumping the struct, password included.
func (u *User) GoString() string {
	return u.String()
}

// LogValue implements slog.LogValuer so a *User can be passed straight to a
// logger without leaking the password.
func (u *User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("userId", u.userID),
		slog.String("loginEmail", u.loginEmail),
		slog.String("firstName", u.firstName),
		slog.String("lastName", u.lastName),
	)
}

// Equal reports whether other is a User with the same user ID. Anything
// else, nil included, is not equal.
func (u *User) Equal(other any) bool {
	var o *User
	switch v := other.(type) {
	case *User:
		o = v
	case User:
		o = &v
	default:
		return false
	}
	if u == nil || o == nil {
		return u == nil && o == nil
	}
	return u.userID == o.userID
}

// Hash is derived from the user ID alone, so Equal users hash alike.
// Zero-valued IDs all collide: assign IDs before keying maps on them.
func (u *User) Hash() int {
	return u.userID
}

// HasValidCredentials reports whether both the login email and the password
// are present. It checks presence only, not format or strength.
func (u *User) HasValidCredentials() bool {
	return u.CheckCredentials() == nil
}

// CheckCredentials is HasValidCredentials with a reason: it returns an
// apperror.ErrValidation naming the first missing field.
func (u *User) CheckCredentials() error {
	if strings.TrimSpace(u.loginEmail) == "" {
		return apperror.ValidationFailed("loginEmail", "login email is required")
	}
	if strings.TrimSpace(u.password) == "" {
		return apperror.ValidationFailed("password", "password is required")
	}
	return nil
}

// FullName joins first and last name with a space, falls back to whichever
// one is set, and to UnnamedUser when neither is.
func (u *User) FullName() string {
	switch {
	case u.firstName != "" && u.lastName != "":
		return u.firstName + " " + u.lastName
	case u.firstName != "":
		return u.firstName
	case u.lastName != "":
		return u.lastName
	default:
		return UnnamedUser
	}
}
