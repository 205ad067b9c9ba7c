package webkit

import "strings"

// CertificateFlags mirrors GTlsCertificateFlags.
type CertificateFlags uint32

// Values from gioenums.h.
const (
	CertUnknownCA    CertificateFlags = 1 << 0
	CertBadIdentity  CertificateFlags = 1 << 1
	CertNotActivated CertificateFlags = 1 << 2
	CertExpired      CertificateFlags = 1 << 3
	CertRevoked      CertificateFlags = 1 << 4
	CertInsecure     CertificateFlags = 1 << 5
	CertGenericError CertificateFlags = 1 << 6
)

var certificateMessages = []struct {
	flag    CertificateFlags
	name    string
	message string
}{
	{CertUnknownCA, "unknown-ca", "The certificate authority is not trusted"},
	{CertBadIdentity, "bad-identity", "The certificate does not match the site identity"},
	{CertNotActivated, "not-activated", "The certificate is not yet valid"},
	{CertExpired, "expired", "The certificate has expired"},
	{CertRevoked, "revoked", "The certificate has been revoked"},
	{CertInsecure, "insecure", "The certificate uses an insecure algorithm"},
	{CertGenericError, "generic-error", "The certificate could not be validated"},
}

// Overridable reports whether the user may accept a certificate with these
// errors. Revoked certificates and insecure algorithms are never accepted.
func (f CertificateFlags) Overridable() bool {
	return f&(CertRevoked|CertInsecure) == 0
}

// Describe returns one human-readable line per error.
func (f CertificateFlags) Describe() string {
	var lines []string
	for _, m := range certificateMessages {
		if f&m.flag != 0 {
			lines = append(lines, m.message)
		}
	}
	if len(lines) == 0 {
		return "Unknown certificate error"
	}
	return strings.Join(lines, "\n")
}

func (f CertificateFlags) String() string {
	var names []string
	for _, m := range certificateMessages {
		if f&m.flag != 0 {
			names = append(names, m.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
