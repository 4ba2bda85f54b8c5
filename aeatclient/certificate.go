package aeatclient

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/pkcs12"
)

// ErrNoCertificate is returned when a PKCS#12 file holds no certificate
var ErrNoCertificate = errors.New("no certificate found in file")

// A Certificate is a client certificate and its private key, PEM encoded.
type Certificate struct {
	CertPEM   []byte
	KeyPEM    []byte
	Subject   string
	NotBefore time.Time
	NotAfter  time.Time
}

// LoadPKCS12 extracts the certificates and the private key of a PKCS#12
// file. Validity dates and subject are taken from the first certificate.
func LoadPKCS12(data []byte, password string) (Certificate, error) {
	var res Certificate
	blocks, err := pkcs12.ToPEM(data, password)
	if err != nil {
		return res, errors.Wrap(err, "unable to decode PKCS#12 file")
	}
	var leaf *x509.Certificate
	for _, block := range blocks {
		switch block.Type {
		case "CERTIFICATE":
			if leaf == nil {
				leaf, err = x509.ParseCertificate(block.Bytes)
				if err != nil {
					return res, errors.Wrap(err, "unable to parse certificate")
				}
			}
			res.CertPEM = append(res.CertPEM, pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: block.Bytes})...)
		case "PRIVATE KEY":
			res.KeyPEM = append(res.KeyPEM, pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: block.Bytes})...)
		}
	}
	if leaf == nil {
		return res, ErrNoCertificate
	}
	res.Subject = leaf.Subject.String()
	res.NotBefore = leaf.NotBefore
	res.NotAfter = leaf.NotAfter
	return res, nil
}

// KeyPair returns a TLS certificate from PEM encoded certificate and key
func KeyPair(certPEM, keyPEM []byte) (tls.Certificate, error) {
	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, errors.Wrap(err, "invalid certificate or private key")
	}
	return cert, nil
}
