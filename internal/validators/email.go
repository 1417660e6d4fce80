package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailDomainValid reports whether the address parses and its domain is
// actually reachable in DNS. Catches typo'd domains at registration time;
// a deliverability check is out of scope.
func IsEmailDomainValid(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return false
	}

	_, host, ok := strings.Cut(addr.Address, "@")
	if !ok || host == "" {
		return false
	}

	return domainResolves(strings.ToLower(host))
}

func domainResolves(host string) bool {
	if mx, err := net.LookupMX(host); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(host)
	return err == nil && len(ips) > 0
}
