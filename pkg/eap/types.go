package eap

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Type is an EAP authentication method code
type Type int

const (
	TypeInvalid          Type = 0
	TypeIdentity         Type = 1
	TypeNotification     Type = 2
	TypeNak              Type = 3
	TypeMD5Challenge     Type = 4
	TypeOneTimePassword  Type = 5
	TypeGenericTokenCard Type = 6
	TypeTLS              Type = 13
	TypeCiscoLEAP        Type = 17
	TypeEAPSIM           Type = 18
	TypeSRPSHA1          Type = 19
	TypeTTLS             Type = 21
	TypeEAPAKA           Type = 23
	TypePEAP             Type = 25
	TypeMSCHAPv2         Type = 26
	TypeExtensions       Type = 33
	TypeEAPFAST          Type = 43
	TypeEAPAKAPrime      Type = 50
)

// SecurityType is the wireless security mode a profile applies to
type SecurityType int

const (
	SecurityUnknown SecurityType = iota
	SecurityWEP
	SecurityWPA
	SecurityWPA2
	SecurityAny
)

// InnerAuthType is the authentication protocol run inside a TTLS tunnel
type InnerAuthType int

const (
	InnerAuthUnknown InnerAuthType = iota
	InnerAuthPAP
	InnerAuthCHAP
	InnerAuthMSCHAP
	InnerAuthMSCHAPv2
)

// codec is a bidirectional lookup between enum values and their identifiers
type codec[T ~int] struct {
	names  map[T]string
	values map[string]T
}

func newCodec[T ~int](names map[T]string) codec[T] {
	values := make(map[string]T, len(names))
	for value, name := range names {
		if _, dup := values[name]; dup {
			panic(fmt.Sprintf("eap: duplicate identifier %q", name))
		}
		values[name] = value
	}
	return codec[T]{names: names, values: values}
}

func (c codec[T]) encode(value T) (string, bool) {
	name, ok := c.names[value]
	return name, ok
}

func (c codec[T]) decode(name string) (T, bool) {
	value, ok := c.values[name]
	return value, ok
}

var typeCodec = newCodec(map[Type]string{
	TypeInvalid:          "Invalid",
	TypeIdentity:         "Identity",
	TypeNotification:     "Notification",
	TypeNak:              "Nak",
	TypeMD5Challenge:     "MD5Challenge",
	TypeOneTimePassword:  "OneTimePassword",
	TypeGenericTokenCard: "GenericTokenCard",
	TypeTLS:              "TLS",
	TypeCiscoLEAP:        "CiscoLEAP",
	TypeEAPSIM:           "EAPSIM",
	TypeSRPSHA1:          "SRPSHA1",
	TypeTTLS:             "TTLS",
	TypeEAPAKA:           "EAPAKA",
	TypePEAP:             "PEAP",
	TypeMSCHAPv2:         "MSCHAPv2",
	TypeExtensions:       "Extensions",
	TypeEAPFAST:          "EAPFAST",
	TypeEAPAKAPrime:      "EAPAKAPrime",
})

var securityCodec = newCodec(map[SecurityType]string{
	SecurityUnknown: "Unknown",
	SecurityWEP:     "WEP",
	SecurityWPA:     "WPA",
	SecurityWPA2:    "WPA2",
	SecurityAny:     "Any",
})

var innerAuthCodec = newCodec(map[InnerAuthType]string{
	InnerAuthUnknown:  "Unknown",
	InnerAuthPAP:      "PAP",
	InnerAuthCHAP:     "CHAP",
	InnerAuthMSCHAP:   "MSCHAP",
	InnerAuthMSCHAPv2: "MSCHAPv2",
})

// Types returns every EAP type with a canonical identifier, ordered by code
func Types() []Type {
	return []Type{
		TypeInvalid, TypeIdentity, TypeNotification, TypeNak, TypeMD5Challenge,
		TypeOneTimePassword, TypeGenericTokenCard, TypeTLS, TypeCiscoLEAP,
		TypeEAPSIM, TypeSRPSHA1, TypeTTLS, TypeEAPAKA, TypePEAP, TypeMSCHAPv2,
		TypeExtensions, TypeEAPFAST, TypeEAPAKAPrime,
	}
}

// Identifier returns the canonical identifier of the EAP type. The second
// return value is false for codes outside the canonical table.
func (t Type) Identifier() (string, bool) {
	return typeCodec.encode(t)
}

// Known reports whether the code is listed in the canonical table
func (t Type) Known() bool {
	_, ok := typeCodec.encode(t)
	return ok
}

// ValidatesCertificate reports whether the method validates a server certificate
func (t Type) ValidatesCertificate() bool {
	switch t {
	case TypeTLS, TypeTTLS, TypePEAP, TypeEAPFAST:
		return true
	}
	return false
}

func (t Type) String() string {
	if name, ok := t.Identifier(); ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType returns the EAP type for a canonical identifier. Unknown
// identifiers are an error wrapping ErrUnknownIdentifier.
func ParseType(s string) (Type, error) {
	t, ok := typeCodec.decode(s)
	if !ok {
		return TypeInvalid, errors.Wrapf(ErrUnknownIdentifier, "eap type %q", s)
	}
	return t, nil
}

// MarshalText implements encoding.TextMarshaler
func (t Type) MarshalText() ([]byte, error) {
	name, ok := t.Identifier()
	if !ok {
		return nil, errors.Errorf("eap type %d has no identifier", int(t))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (t Type) MarshalYAML() (interface{}, error) {
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	return t.UnmarshalText([]byte(node.Value))
}

// Identifier returns the canonical identifier of the security type
func (s SecurityType) Identifier() (string, bool) {
	return securityCodec.encode(s)
}

func (s SecurityType) String() string {
	if name, ok := s.Identifier(); ok {
		return name
	}
	return fmt.Sprintf("SecurityType(%d)", int(s))
}

// ParseSecurityType returns the security type for an identifier, or
// SecurityUnknown when the identifier is not recognised.
func ParseSecurityType(s string) SecurityType {
	value, _ := securityCodec.decode(s)
	return value
}

// MarshalText implements encoding.TextMarshaler
func (s SecurityType) MarshalText() ([]byte, error) {
	name, ok := s.Identifier()
	if !ok {
		return nil, errors.Errorf("security type %d has no identifier", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *SecurityType) UnmarshalText(text []byte) error {
	*s = ParseSecurityType(string(text))
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (s SecurityType) MarshalYAML() (interface{}, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (s *SecurityType) UnmarshalYAML(node *yaml.Node) error {
	return s.UnmarshalText([]byte(node.Value))
}

// Identifier returns the canonical identifier of the inner authentication type
func (a InnerAuthType) Identifier() (string, bool) {
	return innerAuthCodec.encode(a)
}

func (a InnerAuthType) String() string {
	if name, ok := a.Identifier(); ok {
		return name
	}
	return fmt.Sprintf("InnerAuthType(%d)", int(a))
}

// ParseInnerAuthType returns the inner authentication type for an
// identifier, or InnerAuthUnknown when the identifier is not recognised.
func ParseInnerAuthType(s string) InnerAuthType {
	value, _ := innerAuthCodec.decode(s)
	return value
}

// MarshalText implements encoding.TextMarshaler
func (a InnerAuthType) MarshalText() ([]byte, error) {
	name, ok := a.Identifier()
	if !ok {
		return nil, errors.Errorf("inner auth type %d has no identifier", int(a))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *InnerAuthType) UnmarshalText(text []byte) error {
	*a = ParseInnerAuthType(string(text))
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (a InnerAuthType) MarshalYAML() (interface{}, error) {
	text, err := a.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (a *InnerAuthType) UnmarshalYAML(node *yaml.Node) error {
	return a.UnmarshalText([]byte(node.Value))
}
