package eap

import "github.com/pkg/errors"

// DefaultCredentialKind is the kind given to credentials saved without one
const DefaultCredentialKind = "802.1x Password"

const credentialServicePrefix = "com.apple.network.eap.user.item.wlan.ssid."

// Credential is the username and password the supplicant presents for an SSID
type Credential struct {
	SSID     string
	Username string
	Password string
	Kind     string
	Comment  *string
	Service  string
}

// CredentialService returns the service name credentials for ssid are filed under
func CredentialService(ssid string) string {
	return credentialServicePrefix + ssid
}

// NewCredential returns a credential for ssid with the default kind and service
func NewCredential(ssid, username, password string) Credential {
	return Credential{
		SSID:     ssid,
		Username: username,
		Password: password,
		Kind:     DefaultCredentialKind,
		Service:  CredentialService(ssid),
	}
}

// Validate checks that the credential identifies an SSID and an account
func (c Credential) Validate() error {
	if c.SSID == "" {
		return errors.New("credential ssid is required")
	}
	if c.Username == "" {
		return errors.New("credential username is required")
	}
	return nil
}
