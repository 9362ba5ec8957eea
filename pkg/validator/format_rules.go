package validator

import (
	"net/netip"
	"strings"

	"github.com/goccy/go-json"
)

const (
	emailMinLength       = 3
	emailMaxLength       = 254
	emailLocalMaxLength  = 64
	emailDomainMaxLength = 253
)

func ruleEmail(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && isEmail(s))
}

// isEmail checks the structure of an address: lengths, a single @ and a dot
// inside the domain. It does not implement the full address grammar.
func isEmail(s string) bool {
	if len(s) < emailMinLength || len(s) > emailMaxLength {
		return false
	}
	if strings.ContainsAny(s, "\r\n\x00") {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return false
	}
	if len(local) < 1 || len(local) > emailLocalMaxLength {
		return false
	}
	if len(domain) < 1 || len(domain) > emailDomainMaxLength {
		return false
	}
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

func ruleURL(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && isHTTPURL(s))
}

// isHTTPURL requires an http or https scheme and a non-empty host, and
// rejects control characters anywhere in the string.
func isHTTPURL(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c <= 0x1f || c == 0x7f {
			return false
		}
	}

	rest, ok := strings.CutPrefix(s, "http://")
	if !ok {
		if rest, ok = strings.CutPrefix(s, "https://"); !ok {
			return false
		}
	}
	host := rest
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		host = rest[:i]
	}
	return host != ""
}

// ruleIP accepts IPv4 dotted quads and IPv6 addresses without a zone.
func ruleIP(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	if !ok || strings.IndexByte(s, 0) >= 0 {
		return fc.fail(r.Kind)
	}
	addr, err := netip.ParseAddr(s)
	return fc.check(r.Kind, err == nil && addr.Zone() == "")
}

func ruleJSON(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && json.Valid([]byte(s)))
}
