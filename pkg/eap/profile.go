package eap

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Profile is one 802.1X configuration. Nil pointers and nil slices are
// absent fields; a non-nil empty slice is a present, empty field.
type Profile struct {
	// ID is assigned by the profile store and is nil until the profile is created
	ID *string

	SSID            *string
	UserDefinedName *string
	DomainName      *string
	OuterIdentity   *string

	// AcceptEAPTypes lists the methods to negotiate, most preferred first
	AcceptEAPTypes []Type

	SecurityType      *SecurityType
	TTLSInnerAuthType *InnerAuthType

	TrustedServerNames []string
	// TrustedCertificates holds DER encoded trust anchors
	TrustedCertificates [][]byte
}

// Option sets a field on a new profile
type Option func(*Profile)

// NewProfile builds a profile without an ID from the given options
func NewProfile(opts ...Option) *Profile {
	p := &Profile{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func WithSSID(ssid string) Option {
	return func(p *Profile) { p.SSID = &ssid }
}

func WithUserDefinedName(name string) Option {
	return func(p *Profile) { p.UserDefinedName = &name }
}

func WithDomainName(domain string) Option {
	return func(p *Profile) { p.DomainName = &domain }
}

func WithOuterIdentity(identity string) Option {
	return func(p *Profile) { p.OuterIdentity = &identity }
}

// WithAcceptEAPTypes sets the accepted methods in preference order
func WithAcceptEAPTypes(types ...Type) Option {
	return func(p *Profile) { p.AcceptEAPTypes = append([]Type{}, types...) }
}

func WithSecurityType(t SecurityType) Option {
	return func(p *Profile) { p.SecurityType = &t }
}

func WithTTLSInnerAuthType(t InnerAuthType) Option {
	return func(p *Profile) { p.TTLSInnerAuthType = &t }
}

func WithTrustedServerNames(names ...string) Option {
	return func(p *Profile) { p.TrustedServerNames = append([]string{}, names...) }
}

// WithTrustedCertificates sets the pinned DER certificates
func WithTrustedCertificates(certs ...[]byte) Option {
	return func(p *Profile) {
		p.TrustedCertificates = make([][]byte, 0, len(certs))
		for _, der := range certs {
			p.TrustedCertificates = append(p.TrustedCertificates, append([]byte{}, der...))
		}
	}
}

// Validate checks the invariants a profile must hold before it is created.
// The returned error wraps ErrInvalidProfile.
func (p *Profile) Validate() error {
	if !isSet(p.SSID) && !isSet(p.DomainName) {
		return errors.Wrap(ErrInvalidProfile, "ssid or domain name is required")
	}

	seen := make(map[Type]struct{}, len(p.AcceptEAPTypes))
	for _, t := range p.AcceptEAPTypes {
		if !t.Known() {
			return errors.Wrapf(ErrInvalidProfile, "unsupported eap type code %d", int(t))
		}
		if _, dup := seen[t]; dup {
			return errors.Wrapf(ErrInvalidProfile, "duplicate eap type %s", t)
		}
		seen[t] = struct{}{}
	}

	if p.SecurityType != nil {
		if _, ok := p.SecurityType.Identifier(); !ok {
			return errors.Wrapf(ErrInvalidProfile, "unsupported security type %d", int(*p.SecurityType))
		}
	}
	if p.TTLSInnerAuthType != nil {
		if _, ok := p.TTLSInnerAuthType.Identifier(); !ok {
			return errors.Wrapf(ErrInvalidProfile, "unsupported ttls inner authentication %d", int(*p.TTLSInnerAuthType))
		}
	}

	for i, cert := range p.TrustedCertificates {
		if len(cert) == 0 {
			return errors.Wrapf(ErrInvalidProfile, "trusted certificate %d is empty", i)
		}
	}

	return nil
}

// Warnings returns the advisory problems of the profile, which do not
// prevent it from being created.
func (p *Profile) Warnings() []string {
	var warnings []string

	if len(p.TrustedServerNames) > 0 || len(p.TrustedCertificates) > 0 {
		if !p.accepts(Type.ValidatesCertificate) {
			warnings = append(warnings,
				"trusted server names or certificates are set but no accepted eap type validates certificates")
		}
	}
	if p.TTLSInnerAuthType != nil && *p.TTLSInnerAuthType != InnerAuthUnknown {
		if !p.accepts(func(t Type) bool { return t == TypeTTLS }) {
			warnings = append(warnings,
				fmt.Sprintf("ttls inner authentication %s is set but TTLS is not accepted", *p.TTLSInnerAuthType))
		}
	}

	return warnings
}

func (p *Profile) accepts(match func(Type) bool) bool {
	for _, t := range p.AcceptEAPTypes {
		if match(t) {
			return true
		}
	}
	return false
}

// SameTarget reports whether both profiles resolve to the same store entry:
// by ID when both have one, by SSID when neither has one.
func (p *Profile) SameTarget(other *Profile) bool {
	if p == nil || other == nil {
		return false
	}
	switch {
	case p.ID != nil && other.ID != nil:
		return *p.ID == *other.ID
	case p.ID == nil && other.ID == nil:
		return p.SSID != nil && other.SSID != nil && *p.SSID == *other.SSID
	}
	return false
}

// Clone returns a deep copy of the profile
func (p *Profile) Clone() *Profile {
	c := &Profile{
		ID:              cloneString(p.ID),
		SSID:            cloneString(p.SSID),
		UserDefinedName: cloneString(p.UserDefinedName),
		DomainName:      cloneString(p.DomainName),
		OuterIdentity:   cloneString(p.OuterIdentity),
	}
	if p.AcceptEAPTypes != nil {
		c.AcceptEAPTypes = append([]Type{}, p.AcceptEAPTypes...)
	}
	if p.SecurityType != nil {
		st := *p.SecurityType
		c.SecurityType = &st
	}
	if p.TTLSInnerAuthType != nil {
		it := *p.TTLSInnerAuthType
		c.TTLSInnerAuthType = &it
	}
	if p.TrustedServerNames != nil {
		c.TrustedServerNames = append([]string{}, p.TrustedServerNames...)
	}
	c.TrustedCertificates = cloneBlobs(p.TrustedCertificates)
	return c
}

// DisplayName returns the best human readable name of the profile
func (p *Profile) DisplayName() string {
	for _, s := range []*string{p.UserDefinedName, p.SSID, p.DomainName, p.ID} {
		if isSet(s) {
			return *s
		}
	}
	return "<unnamed>"
}

func (p *Profile) String() string {
	types := make([]string, 0, len(p.AcceptEAPTypes))
	for _, t := range p.AcceptEAPTypes {
		types = append(types, t.String())
	}
	return fmt.Sprintf("Profile(%s, types=[%s])", p.DisplayName(), strings.Join(types, ","))
}

// String returns a pointer to s, for building profiles field by field
func String(s string) *string {
	return &s
}

func isSet(s *string) bool {
	return s != nil && *s != ""
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneBlobs(blobs [][]byte) [][]byte {
	if blobs == nil {
		return nil
	}
	out := make([][]byte, len(blobs))
	for i, b := range blobs {
		out[i] = append([]byte{}, b...)
	}
	return out
}
