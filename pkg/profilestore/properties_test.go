package profilestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blast007/wifi-eap-profiles/pkg/eap"
)

func TestToProperties(t *testing.T) {
	p := eap.NewProfile(
		eap.WithSSID("CorpNet"),
		eap.WithAcceptEAPTypes(eap.TypePEAP, eap.TypeTTLS),
		eap.WithSecurityType(eap.SecurityWPA2),
		eap.WithTTLSInnerAuthType(eap.InnerAuthPAP),
		eap.WithTrustedServerNames("radius.corp.example"),
	)

	assert.Equal(t, Properties{
		PropertySSID:                    "CorpNet",
		PropertyAcceptEAPTypes:          []int{25, 21},
		PropertySecurityType:            "WPA2",
		PropertyTTLSInnerAuthentication: "PAP",
		PropertyTLSTrustedServerNames:   []string{"radius.corp.example"},
	}, ToProperties(p))
}

func TestToPropertiesOmitsUnset(t *testing.T) {
	props := ToProperties(eap.NewProfile(eap.WithDomainName("corp.example")))
	assert.Equal(t, Properties{PropertyDomainName: "corp.example"}, props)
}

func TestFromRecordKeepsUnlistedCodes(t *testing.T) {
	p, err := FromRecord(Record{ID: "1", Properties: Properties{
		PropertySSID:           "Lab",
		PropertyAcceptEAPTypes: []int{13, 98},
	}})
	require.NoError(t, err)
	assert.Equal(t, "1", *p.ID)
	assert.Equal(t, []eap.Type{eap.TypeTLS, eap.Type(98)}, p.AcceptEAPTypes)
}

func TestFromRecordLenientEnums(t *testing.T) {
	p, err := FromRecord(Record{ID: "1", Properties: Properties{
		PropertySSID:                    "Lab",
		PropertySecurityType:            "WPA3",
		PropertyTTLSInnerAuthentication: "GTC",
	}})
	require.NoError(t, err)
	assert.Equal(t, eap.SecurityUnknown, *p.SecurityType)
	assert.Equal(t, eap.InnerAuthUnknown, *p.TTLSInnerAuthType)
}

func TestFromRecordTypeMismatch(t *testing.T) {
	tests := map[string]Properties{
		"ssid":           {PropertySSID: 5},
		"eap types":      {PropertyAcceptEAPTypes: []string{"TLS"}},
		"security":       {PropertySecurityType: 3},
		"server names":   {PropertyTLSTrustedServerNames: "radius"},
		"certificates":   {PropertyTLSTrustedCertificates: []byte{1}},
		"inner auth":     {PropertyTTLSInnerAuthentication: []string{"PAP"}},
		"outer identity": {PropertyOuterIdentity: true},
	}

	for name, props := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromRecord(Record{ID: "1", Properties: props})
			assert.Error(t, err)
		})
	}
}
