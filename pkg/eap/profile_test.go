package eap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	p := NewProfile(
		WithSSID("CorpNet"),
		WithUserDefinedName("Corporate"),
		WithOuterIdentity("anonymous@corp.example"),
		WithAcceptEAPTypes(TypePEAP, TypeTTLS),
		WithSecurityType(SecurityWPA2),
		WithTTLSInnerAuthType(InnerAuthMSCHAPv2),
		WithTrustedServerNames("radius.corp.example"),
	)

	assert.Nil(t, p.ID)
	assert.Equal(t, "CorpNet", *p.SSID)
	assert.Equal(t, "Corporate", *p.UserDefinedName)
	assert.Nil(t, p.DomainName)
	assert.Equal(t, "anonymous@corp.example", *p.OuterIdentity)
	assert.Equal(t, []Type{TypePEAP, TypeTTLS}, p.AcceptEAPTypes)
	assert.Equal(t, SecurityWPA2, *p.SecurityType)
	assert.Equal(t, InnerAuthMSCHAPv2, *p.TTLSInnerAuthType)
	assert.Equal(t, []string{"radius.corp.example"}, p.TrustedServerNames)
	assert.Nil(t, p.TrustedCertificates)
}

func TestWithAcceptEAPTypesCopiesInput(t *testing.T) {
	types := []Type{TypeTLS, TypePEAP}
	p := NewProfile(WithSSID("x"), WithAcceptEAPTypes(types...))

	types[0] = TypeMD5Challenge
	assert.Equal(t, []Type{TypeTLS, TypePEAP}, p.AcceptEAPTypes)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		valid   bool
	}{
		{
			name:    "ssid only",
			profile: NewProfile(WithSSID("Guest")),
			valid:   true,
		},
		{
			name:    "domain only",
			profile: NewProfile(WithDomainName("corp.example")),
			valid:   true,
		},
		{
			name:    "neither ssid nor domain",
			profile: NewProfile(WithUserDefinedName("Nameless")),
		},
		{
			name:    "empty ssid",
			profile: NewProfile(WithSSID("")),
		},
		{
			name:    "empty accepted types",
			profile: NewProfile(WithSSID("Guest"), WithAcceptEAPTypes()),
			valid:   true,
		},
		{
			name:    "unlisted type code",
			profile: NewProfile(WithSSID("Guest"), WithAcceptEAPTypes(TypePEAP, Type(7))),
		},
		{
			name:    "duplicate type",
			profile: NewProfile(WithSSID("Guest"), WithAcceptEAPTypes(TypePEAP, TypeTTLS, TypePEAP)),
		},
		{
			name:    "empty certificate",
			profile: NewProfile(WithSSID("Guest"), WithTrustedCertificates([]byte{})),
		},
		{
			name:    "unknown security type",
			profile: NewProfile(WithSSID("Guest"), WithSecurityType(SecurityUnknown), WithTTLSInnerAuthType(InnerAuthUnknown)),
			valid:   true,
		},
		{
			name:    "security type without identifier",
			profile: NewProfile(WithSSID("Guest"), WithSecurityType(SecurityType(9))),
		},
		{
			name:    "inner auth without identifier",
			profile: NewProfile(WithSSID("Guest"), WithTTLSInnerAuthType(InnerAuthType(7))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name     string
		profile  *Profile
		warnings int
	}{
		{
			name: "consistent",
			profile: NewProfile(WithSSID("a"),
				WithAcceptEAPTypes(TypeTTLS),
				WithTTLSInnerAuthType(InnerAuthPAP),
				WithTrustedServerNames("radius.example")),
		},
		{
			name: "server names without certificate validation",
			profile: NewProfile(WithSSID("a"),
				WithAcceptEAPTypes(TypeMD5Challenge),
				WithTrustedServerNames("radius.example")),
			warnings: 1,
		},
		{
			name: "inner auth without ttls",
			profile: NewProfile(WithSSID("a"),
				WithAcceptEAPTypes(TypePEAP),
				WithTTLSInnerAuthType(InnerAuthCHAP)),
			warnings: 1,
		},
		{
			name: "unknown inner auth is not a warning",
			profile: NewProfile(WithSSID("a"),
				WithAcceptEAPTypes(TypePEAP),
				WithTTLSInnerAuthType(InnerAuthUnknown)),
		},
		{
			name: "both",
			profile: NewProfile(WithSSID("a"),
				WithTrustedCertificates([]byte{1}),
				WithTTLSInnerAuthType(InnerAuthMSCHAP)),
			warnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.profile.Warnings(), tt.warnings)
		})
	}
}

func TestSameTarget(t *testing.T) {
	withID := func(id, ssid string) *Profile {
		p := NewProfile(WithSSID(ssid))
		p.ID = String(id)
		return p
	}

	assert.True(t, withID("1", "a").SameTarget(withID("1", "b")))
	assert.False(t, withID("1", "a").SameTarget(withID("2", "a")))

	assert.True(t, NewProfile(WithSSID("a")).SameTarget(NewProfile(WithSSID("a"))))
	assert.False(t, NewProfile(WithSSID("a")).SameTarget(NewProfile(WithSSID("b"))))
	assert.False(t, NewProfile(WithDomainName("d")).SameTarget(NewProfile(WithDomainName("d"))))

	// ID and SSID never match each other
	assert.False(t, withID("1", "a").SameTarget(NewProfile(WithSSID("a"))))
	assert.False(t, NewProfile(WithSSID("a")).SameTarget(withID("1", "a")))

	assert.False(t, NewProfile(WithSSID("a")).SameTarget(nil))
}

func TestClone(t *testing.T) {
	p := NewProfile(
		WithSSID("a"),
		WithAcceptEAPTypes(TypeTLS),
		WithSecurityType(SecurityWPA),
		WithTrustedServerNames("x"),
		WithTrustedCertificates([]byte{1, 2, 3}),
	)
	p.ID = String("id")

	c := p.Clone()
	require.Equal(t, p, c)

	*c.SSID = "b"
	c.AcceptEAPTypes[0] = TypePEAP
	*c.SecurityType = SecurityWEP
	c.TrustedServerNames[0] = "y"
	c.TrustedCertificates[0][0] = 9

	assert.Equal(t, "a", *p.SSID)
	assert.Equal(t, TypeTLS, p.AcceptEAPTypes[0])
	assert.Equal(t, SecurityWPA, *p.SecurityType)
	assert.Equal(t, "x", p.TrustedServerNames[0])
	assert.Equal(t, byte(1), p.TrustedCertificates[0][0])
}

func TestCloneKeepsEmptyDistinctFromAbsent(t *testing.T) {
	p := NewProfile(WithSSID("a"), WithAcceptEAPTypes(), WithTrustedServerNames())

	c := p.Clone()
	assert.NotNil(t, c.AcceptEAPTypes)
	assert.Empty(t, c.AcceptEAPTypes)
	assert.NotNil(t, c.TrustedServerNames)
	assert.Nil(t, c.TrustedCertificates)
}

func TestEmptyListOptions(t *testing.T) {
	p := NewProfile(WithSSID("a"), WithAcceptEAPTypes(), WithTrustedServerNames(), WithTrustedCertificates())

	assert.NotNil(t, p.AcceptEAPTypes)
	assert.Empty(t, p.AcceptEAPTypes)
	assert.NotNil(t, p.TrustedServerNames)
	assert.Empty(t, p.TrustedServerNames)
	assert.NotNil(t, p.TrustedCertificates)
	assert.Empty(t, p.TrustedCertificates)

	c := p.Clone()
	assert.NotNil(t, c.TrustedCertificates)
	assert.Empty(t, c.TrustedCertificates)
}

func TestWithTrustedCertificatesCopiesInput(t *testing.T) {
	der := []byte{1, 2, 3}
	p := NewProfile(WithSSID("a"), WithTrustedCertificates(der))

	der[0] = 9
	assert.Equal(t, [][]byte{{1, 2, 3}}, p.TrustedCertificates)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Corporate", NewProfile(WithSSID("CorpNet"), WithUserDefinedName("Corporate")).DisplayName())
	assert.Equal(t, "CorpNet", NewProfile(WithSSID("CorpNet")).DisplayName())
	assert.Equal(t, "corp.example", NewProfile(WithDomainName("corp.example")).DisplayName())
	assert.Equal(t, "<unnamed>", NewProfile().DisplayName())
	assert.Equal(t, "Profile(CorpNet, types=[PEAP,TTLS])",
		NewProfile(WithSSID("CorpNet"), WithAcceptEAPTypes(TypePEAP, TypeTTLS)).String())
}
