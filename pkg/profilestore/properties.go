package profilestore

import (
	"github.com/pkg/errors"

	"github.com/blast007/wifi-eap-profiles/pkg/eap"
)

// ToProperties converts a profile to its native record properties
func ToProperties(p *eap.Profile) Properties {
	props := Properties{}

	setString(props, PropertySSID, p.SSID)
	setString(props, PropertyUserDefinedName, p.UserDefinedName)
	setString(props, PropertyDomainName, p.DomainName)
	setString(props, PropertyOuterIdentity, p.OuterIdentity)

	if p.AcceptEAPTypes != nil {
		codes := make([]int, 0, len(p.AcceptEAPTypes))
		for _, t := range p.AcceptEAPTypes {
			codes = append(codes, int(t))
		}
		props[PropertyAcceptEAPTypes] = codes
	}
	// Values without an identifier are rejected by Profile.Validate
	if p.SecurityType != nil {
		if name, ok := p.SecurityType.Identifier(); ok {
			props[PropertySecurityType] = name
		}
	}
	if p.TTLSInnerAuthType != nil {
		if name, ok := p.TTLSInnerAuthType.Identifier(); ok {
			props[PropertyTTLSInnerAuthentication] = name
		}
	}
	if p.TrustedServerNames != nil {
		props[PropertyTLSTrustedServerNames] = append([]string{}, p.TrustedServerNames...)
	}
	if p.TrustedCertificates != nil {
		certs := make([][]byte, 0, len(p.TrustedCertificates))
		for _, der := range p.TrustedCertificates {
			certs = append(certs, append([]byte{}, der...))
		}
		props[PropertyTLSTrustedCertificates] = certs
	}

	return props
}

// FromRecord converts a native record to a profile. Unlisted EAP type codes
// are kept as is; unrecognised security and inner authentication values
// decode to their Unknown sentinels.
func FromRecord(rec Record) (*eap.Profile, error) {
	id := rec.ID
	p := &eap.Profile{ID: &id}

	var err error
	if p.SSID, err = getString(rec.Properties, PropertySSID); err != nil {
		return nil, err
	}
	if p.UserDefinedName, err = getString(rec.Properties, PropertyUserDefinedName); err != nil {
		return nil, err
	}
	if p.DomainName, err = getString(rec.Properties, PropertyDomainName); err != nil {
		return nil, err
	}
	if p.OuterIdentity, err = getString(rec.Properties, PropertyOuterIdentity); err != nil {
		return nil, err
	}

	if v, ok := rec.Properties[PropertyAcceptEAPTypes]; ok {
		codes, ok := v.([]int)
		if !ok {
			return nil, propertyTypeError(PropertyAcceptEAPTypes, v)
		}
		p.AcceptEAPTypes = make([]eap.Type, 0, len(codes))
		for _, code := range codes {
			p.AcceptEAPTypes = append(p.AcceptEAPTypes, eap.Type(code))
		}
	}

	security, err := getString(rec.Properties, PropertySecurityType)
	if err != nil {
		return nil, err
	}
	if security != nil {
		st := eap.ParseSecurityType(*security)
		p.SecurityType = &st
	}

	inner, err := getString(rec.Properties, PropertyTTLSInnerAuthentication)
	if err != nil {
		return nil, err
	}
	if inner != nil {
		it := eap.ParseInnerAuthType(*inner)
		p.TTLSInnerAuthType = &it
	}

	if v, ok := rec.Properties[PropertyTLSTrustedServerNames]; ok {
		names, ok := v.([]string)
		if !ok {
			return nil, propertyTypeError(PropertyTLSTrustedServerNames, v)
		}
		p.TrustedServerNames = append([]string{}, names...)
	}
	if v, ok := rec.Properties[PropertyTLSTrustedCertificates]; ok {
		certs, ok := v.([][]byte)
		if !ok {
			return nil, propertyTypeError(PropertyTLSTrustedCertificates, v)
		}
		p.TrustedCertificates = make([][]byte, 0, len(certs))
		for _, der := range certs {
			p.TrustedCertificates = append(p.TrustedCertificates, append([]byte{}, der...))
		}
	}

	return p, nil
}

func setString(props Properties, key string, value *string) {
	if value != nil {
		props[key] = *value
	}
}

func getString(props Properties, key string) (*string, error) {
	v, ok := props[key]
	if !ok {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, propertyTypeError(key, v)
	}
	return &s, nil
}

func propertyTypeError(key string, v interface{}) error {
	return errors.Errorf("property %s has unexpected type %T", key, v)
}
