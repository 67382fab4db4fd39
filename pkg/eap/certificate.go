package eap

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"strings"

	"github.com/pkg/errors"
)

const pemCertificateType = "CERTIFICATE"

// DecodeCertificates extracts the DER bytes of every certificate in PEM data
func DecodeCertificates(pemData []byte) ([][]byte, error) {
	var certs [][]byte
	rest := pemData
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != pemCertificateType {
			continue
		}
		if _, err := x509.ParseCertificate(block.Bytes); err != nil {
			return nil, errors.Wrapf(err, "certificate %d", len(certs))
		}
		certs = append(certs, block.Bytes)
	}
	if len(certs) == 0 {
		return nil, errors.New("no certificate found in pem data")
	}
	return certs, nil
}

// EncodeCertificate returns the PEM encoding of a DER certificate
func EncodeCertificate(der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: pemCertificateType, Bytes: der})
}

// CertificateLabel returns the subject common name of the certificate, or
// the base64 encoded subject sequence when it has no common name.
func CertificateLabel(der []byte) (string, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse certificate")
	}
	if cert.Subject.CommonName != "" {
		return cert.Subject.CommonName, nil
	}
	return base64.StdEncoding.EncodeToString(cert.RawSubject), nil
}

// Fingerprint returns the SHA-256 digest of the certificate as colon
// separated upper case hex pairs
func Fingerprint(der []byte) string {
	sum := sha256.Sum256(der)
	digits := strings.ToUpper(hex.EncodeToString(sum[:]))

	pairs := make([]string, 0, len(sum))
	for i := 0; i < len(digits); i += 2 {
		pairs = append(pairs, digits[i:i+2])
	}
	return strings.Join(pairs, ":")
}
