package eap

import "github.com/pkg/errors"

var (
	// ErrUnknownIdentifier is returned when an EAP type identifier is not in the canonical table
	ErrUnknownIdentifier = errors.New("unknown identifier")

	// ErrInvalidProfile is returned when a profile breaks a required invariant
	ErrInvalidProfile = errors.New("invalid profile")
)
