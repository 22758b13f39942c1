// Package ident supplies the identity fields a server pairs with a partial
// message on promotion: unique ids and second-resolution timestamps.
package ident

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// New returns a fresh message id.
func New() string {
	return uuid.NewString()
}

// Timestamp returns the current moment in Unix seconds.
func Timestamp() int64 {
	return time.Now().Unix()
}

// Stamp returns Timestamp in the pointer form message literals carry.
func Stamp() *int64 {
	return lo.ToPtr(Timestamp())
}
