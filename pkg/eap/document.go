package eap

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is the exported form of a profile. Enumerations are written as
// their identifiers and certificates as PEM. Slices are pointers so that an
// empty list survives a round trip distinct from an absent one.
type Document struct {
	ID                  *string        `json:"profileId,omitempty" yaml:"profileId,omitempty"`
	SSID                *string        `json:"ssid,omitempty" yaml:"ssid,omitempty"`
	UserDefinedName     *string        `json:"userDefinedName,omitempty" yaml:"userDefinedName,omitempty"`
	DomainName          *string        `json:"domainName,omitempty" yaml:"domainName,omitempty"`
	OuterIdentity       *string        `json:"outerIdentity,omitempty" yaml:"outerIdentity,omitempty"`
	AcceptEAPTypes      *[]Type        `json:"acceptEAPTypes,omitempty" yaml:"acceptEAPTypes,omitempty"`
	SecurityType        *SecurityType  `json:"securityType,omitempty" yaml:"securityType,omitempty"`
	TTLSInnerAuthType   *InnerAuthType `json:"ttlsInnerAuthType,omitempty" yaml:"ttlsInnerAuthType,omitempty"`
	TrustedServerNames  *[]string      `json:"trustedServerName,omitempty" yaml:"trustedServerName,omitempty"`
	TrustedCertificates *[]string      `json:"trustedCertificate,omitempty" yaml:"trustedCertificate,omitempty"`
}

type documentSet struct {
	Profiles []Document `yaml:"profiles"`
}

// NewDocument converts a profile to its exported form
func NewDocument(p *Profile) Document {
	c := p.Clone()
	d := Document{
		ID:                c.ID,
		SSID:              c.SSID,
		UserDefinedName:   c.UserDefinedName,
		DomainName:        c.DomainName,
		OuterIdentity:     c.OuterIdentity,
		SecurityType:      c.SecurityType,
		TTLSInnerAuthType: c.TTLSInnerAuthType,
	}
	if c.AcceptEAPTypes != nil {
		d.AcceptEAPTypes = &c.AcceptEAPTypes
	}
	if c.TrustedServerNames != nil {
		d.TrustedServerNames = &c.TrustedServerNames
	}
	if c.TrustedCertificates != nil {
		certs := make([]string, 0, len(c.TrustedCertificates))
		for _, der := range c.TrustedCertificates {
			certs = append(certs, string(EncodeCertificate(der)))
		}
		d.TrustedCertificates = &certs
	}
	return d
}

// Profile converts the document back to a profile
func (d Document) Profile() (*Profile, error) {
	p := &Profile{
		ID:                d.ID,
		SSID:              d.SSID,
		UserDefinedName:   d.UserDefinedName,
		DomainName:        d.DomainName,
		OuterIdentity:     d.OuterIdentity,
		SecurityType:      d.SecurityType,
		TTLSInnerAuthType: d.TTLSInnerAuthType,
	}
	if d.AcceptEAPTypes != nil {
		p.AcceptEAPTypes = append([]Type{}, *d.AcceptEAPTypes...)
	}
	if d.TrustedServerNames != nil {
		p.TrustedServerNames = append([]string{}, *d.TrustedServerNames...)
	}
	if d.TrustedCertificates != nil {
		p.TrustedCertificates = [][]byte{}
		for i, pemText := range *d.TrustedCertificates {
			certs, err := DecodeCertificates([]byte(pemText))
			if err != nil {
				return nil, errors.Wrapf(err, "trusted certificate %d", i)
			}
			p.TrustedCertificates = append(p.TrustedCertificates, certs...)
		}
	}
	return p.Clone(), nil
}

// MarshalProfiles encodes profiles as a YAML document
func MarshalProfiles(profiles []*Profile) ([]byte, error) {
	set := documentSet{Profiles: make([]Document, 0, len(profiles))}
	for _, p := range profiles {
		set.Profiles = append(set.Profiles, NewDocument(p))
	}
	out, err := yaml.Marshal(set)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode profiles")
	}
	return out, nil
}

// UnmarshalProfiles decodes a YAML document written by MarshalProfiles. An
// unknown EAP type identifier fails the whole document.
func UnmarshalProfiles(data []byte) ([]*Profile, error) {
	var set documentSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, errors.Wrap(err, "failed to decode profiles")
	}
	profiles := make([]*Profile, 0, len(set.Profiles))
	for i, d := range set.Profiles {
		p, err := d.Profile()
		if err != nil {
			return nil, errors.Wrapf(err, "profile %d", i)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
