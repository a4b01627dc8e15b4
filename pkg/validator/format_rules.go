package validator

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// E.164 with optional leading "+"
	phoneRegex        = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Email passes for a bare address such as "user@example.com". Display names
// ("Jane <jane@example.com>") and single-label domains are rejected.
func Email[E ~string]() Validator[E] {
	return New("is an email address", Placeholder+" is not an email address", func(value E) bool {
		s := string(value)
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return false
		}
		local, domain, ok := strings.Cut(addr.Address, "@")
		if !ok || local == "" {
			return false
		}
		labels := strings.Split(domain, ".")
		if len(labels) < 2 {
			return false
		}
		return !slices.Contains(labels, "")
	})
}

// URL passes for an absolute URL with a host. When schemes are given the
// URL scheme must be one of them.
func URL[E ~string](schemes ...string) Validator[E] {
	desc := "is a URL"
	if len(schemes) > 0 {
		desc = fmt.Sprintf("is a URL with scheme in %s", listString(schemes))
	}
	return Is(desc, func(value E) bool {
		u, err := url.ParseRequestURI(string(value))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		return len(schemes) == 0 || slices.Contains(schemes, u.Scheme)
	})
}

// IP passes for an IPv4 or IPv6 address.
func IP[E ~string]() Validator[E] {
	return Is("an IP address", func(value E) bool {
		return net.ParseIP(string(value)) != nil
	})
}

// IPv4 passes for a dotted-quad IPv4 address.
func IPv4[E ~string]() Validator[E] {
	return Is("an IPv4 address", func(value E) bool {
		ip := net.ParseIP(string(value))
		return ip != nil && ip.To4() != nil && !strings.Contains(string(value), ":")
	})
}

// IPv6 passes for an IPv6 address, including IPv4-mapped forms.
func IPv6[E ~string]() Validator[E] {
	return Is("an IPv6 address", func(value E) bool {
		return net.ParseIP(string(value)) != nil && strings.Contains(string(value), ":")
	})
}

// MAC passes for a hardware address accepted by net.ParseMAC.
func MAC[E ~string]() Validator[E] {
	return Is("a MAC address", func(value E) bool {
		_, err := net.ParseMAC(string(value))
		return err == nil
	})
}

// Phone passes for an international number in E.164 form.
func Phone[E ~string]() Validator[E] {
	return Is("a phone number", func(value E) bool {
		return phoneRegex.MatchString(string(value))
	})
}

// Alphanumeric passes for a non-empty string of ASCII letters and digits.
func Alphanumeric[E ~string]() Validator[E] {
	return Is("alphanumeric", func(value E) bool {
		return alphanumericRegex.MatchString(string(value))
	})
}
