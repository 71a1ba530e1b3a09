package schema

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	priceRe = regexp.MustCompile(`^(Free|\$\d+(\.\d{2})?)$`)

	phoneStrip = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// IsEmail reports whether v looks like an email address.
func IsEmail(v string) bool { return emailRe.MatchString(v) }

// IsPhone reports whether v is a plausible phone number. Spaces, dashes and
// parentheses are ignored.
func IsPhone(v string) bool { return phoneRe.MatchString(phoneStrip.Replace(v)) }

// IsPrice reports whether v is "Free" or a dollar amount like "$25.00".
func IsPrice(v string) bool { return priceRe.MatchString(v) }

// IsURL reports whether v parses as an absolute URL.
func IsURL(v string) bool {
	u, err := url.Parse(v)
	return err == nil && u.Scheme != "" && u.Host != ""
}
