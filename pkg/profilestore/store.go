// Package profilestore manages EAP profiles held by a system profile store.
package profilestore

import "github.com/pkg/errors"

var (
	// ErrStoreUnavailable is returned when the store cannot be opened or read
	ErrStoreUnavailable = errors.New("profile store unavailable")

	// ErrStoreRejected is returned when the store refuses a write
	ErrStoreRejected = errors.New("profile store rejected the operation")

	// ErrNotFound is returned when no profile matches the requested target.
	// Store implementations return it from Conn.Remove for unknown ids.
	ErrNotFound = errors.New("profile not found")
)

// StoreError ties a gateway error kind to the error the store returned.
// errors.Is and errors.As match both Kind and Cause.
type StoreError struct {
	Kind  error
	Cause error
}

func (e *StoreError) Error() string {
	return e.Kind.Error() + ": " + e.Cause.Error()
}

func (e *StoreError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}

func storeError(kind, cause error) error {
	return &StoreError{Kind: kind, Cause: cause}
}

// Property keys of the native profile record
const (
	PropertySSID                    = "SSID"
	PropertyUserDefinedName         = "UserDefinedName"
	PropertyDomainName              = "DomainName"
	PropertyOuterIdentity           = "OuterIdentity"
	PropertyAcceptEAPTypes          = "AcceptEAPTypes"
	PropertySecurityType            = "SecurityType"
	PropertyTTLSInnerAuthentication = "TTLSInnerAuthentication"
	PropertyTLSTrustedServerNames   = "TLSTrustedServerNames"
	PropertyTLSTrustedCertificates  = "TLSTrustedCertificates"
)

// Properties is the native representation of a profile. A missing key is
// an unset field. Values are string, []int, []string or [][]byte.
type Properties map[string]interface{}

// Record is a profile as held by the store
type Record struct {
	ID         string
	Properties Properties
}

// Store opens connections to the system profile store
type Store interface {
	Open() (Conn, error)
}

// Conn is one open connection to the profile store. It is used by a single
// gateway call and closed before the call returns.
type Conn interface {
	// List returns every record in store order
	List() ([]Record, error)

	// Create stores a new record and returns the identifier assigned to it
	Create(props Properties) (string, error)

	// Remove deletes the record with the given identifier, returning
	// ErrNotFound if there is none
	Remove(id string) error

	Close() error
}
