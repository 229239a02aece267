package schema

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"time"
)

// formatCheckers is the name -> checker map, restricted to the seven
// formats Draft-4 names: date-time, email, hostname, ipv4, ipv6, uri,
// regex. Later-draft formats (duration, uuid, json-pointer,
// relative-json-pointer, idn-email, etc.) are not included.
var formatCheckers = map[string]func(string) bool{
	"date-time": isDateTime,
	"email":     isEmail,
	"hostname":  isHostname,
	"ipv4":      isIPv4,
	"ipv6":      isIPv6,
	"uri":       isURI,
	"regex":     isRegex,
}

func isDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

var hostnameRe = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

func isHostname(s string) bool {
	return len(s) <= 255 && hostnameRe.MatchString(s)
}

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

func isIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() == nil && ip.To16() != nil
}

func isURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

func isRegex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}
