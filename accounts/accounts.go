// Package accounts reads and writes typed per-account user data on top of a
// string key/value Store.
package accounts

import (
	"strconv"

	"github.com/pkg/errors"
)

// Store holds the raw user data of one account.
type Store interface {
	UserData(key string) (string, bool)
	SetUserData(key, value string) error
}

// Account converts user data to and from typed values. Getters fall back to
// the supplied default when the key is missing or does not parse.
type Account struct {
	store Store
}

func New(store Store) *Account {
	return &Account{store: store}
}

func (a *Account) set(key, value string) error {
	return errors.Wrapf(a.store.SetUserData(key, value), "set user data %q", key)
}

func (a *Account) String(key, def string) string {
	if v, ok := a.store.UserData(key); ok {
		return v
	}
	return def
}

func (a *Account) SetString(key, value string) error {
	return a.set(key, value)
}

func (a *Account) Int(key string, def int) int {
	if v, ok := a.store.UserData(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (a *Account) SetInt(key string, value int) error {
	return a.set(key, strconv.Itoa(value))
}

func (a *Account) Int64(key string, def int64) int64 {
	if v, ok := a.store.UserData(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func (a *Account) SetInt64(key string, value int64) error {
	return a.set(key, strconv.FormatInt(value, 10))
}

func (a *Account) Float32(key string, def float32) float32 {
	if v, ok := a.store.UserData(key); ok {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return def
}

func (a *Account) SetFloat32(key string, value float32) error {
	return a.set(key, strconv.FormatFloat(float64(value), 'g', -1, 32))
}

func (a *Account) Float64(key string, def float64) float64 {
	if v, ok := a.store.UserData(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func (a *Account) SetFloat64(key string, value float64) error {
	return a.set(key, strconv.FormatFloat(value, 'g', -1, 64))
}

func (a *Account) Bool(key string, def bool) bool {
	if v, ok := a.store.UserData(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func (a *Account) SetBool(key string, value bool) error {
	return a.set(key, strconv.FormatBool(value))
}
