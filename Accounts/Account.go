package Accounts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinDisc = 0
	MaxDisc = 9999
)

// ErrDiscriminatorRange is wrapped by every DiscriminatorError.
var ErrDiscriminatorRange = errors.New("discriminator out of valid range (0-9999)")

// DiscriminatorError reports a discriminator outside [MinDisc, MaxDisc].
type DiscriminatorError struct {
	Disc int
}

func (e *DiscriminatorError) Error() string {
	return fmt.Sprintf("discriminator %d out of valid range (%d-%d)", e.Disc, MinDisc, MaxDisc)
}

func (e *DiscriminatorError) Unwrap() error {
	return ErrDiscriminatorRange
}

// Account is a user account identified by (username, discriminator).
// The zero value is not a valid account; use New.
type Account struct {
	username string
	disc     int
	nitro    bool
	badge    string
	status   string
}

// New validates disc and returns the account. No account is returned when the
// discriminator is out of range.
func New(username string, disc int, nitro bool, badge, status string) (Account, error) {
	if disc < MinDisc || disc > MaxDisc {
		return Account{}, &DiscriminatorError{Disc: disc}
	}
	return Account{username: username, disc: disc, nitro: nitro, badge: badge, status: status}, nil
}

// MustNew is New that panics on error. Meant for tests and literals.
func MustNew(username string, disc int, nitro bool, badge, status string) Account {
	a, err := New(username, disc, nitro, badge, status)
	if err != nil {
		panic(err)
	}
	return a
}

func (u Account) Username() string   { return u.username }
func (u Account) Discriminator() int { return u.disc }
func (u Account) HasNitro() bool     { return u.nitro }
func (u Account) Badge() string      { return u.badge }
func (u Account) Status() string     { return u.status }

// Tag renders the account as username#dddd.
func (u Account) Tag() string {
	return fmt.Sprintf("%s#%04d", u.username, u.disc)
}

// String renders the multi line account listing.
func (u Account) String() string {
	var b strings.Builder
	b.WriteString("Account name: ")
	b.WriteString(u.username)
	b.WriteString("\n\tDiscriminator: ")
	b.WriteString(strconv.Itoa(u.disc))
	b.WriteString("\n\tNitro: ")
	if u.nitro {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	b.WriteString("\n\tBadge: ")
	b.WriteString(u.badge)
	b.WriteString("\n\tStatus: ")
	b.WriteString(u.status)
	return b.String()
}
