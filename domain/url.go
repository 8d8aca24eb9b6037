package domain

import (
	"net"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/authcorp/typevault/errors"
	"github.com/authcorp/typevault/validation"
	"github.com/authcorp/typevault/value"
)

var hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

var urlRules = value.Rules[string]{
	Validate: validateURL,
}

func validateURL(s string) *errors.ValidationError {
	if strings.IndexFunc(s, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) || r > unicode.MaxASCII }) >= 0 {
		return errors.Invalid("URL contains characters that must be escaped")
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return errors.Invalid("invalid URL: " + err.Error())
	}
	if parsed.Scheme == "" {
		return errors.Invalid("URL must have a scheme")
	}
	if parsed.Opaque != "" || parsed.Host == "" {
		return errors.Invalid("URL must have a host")
	}
	if err := urlHost(parsed.Hostname()); err != nil {
		return errors.Invalid("invalid URL host: " + parsed.Hostname())
	}
	return nil
}

// urlHost accepts an IP literal or a DNS hostname.
var urlHost = validation.Or(
	validation.Custom(func(h string) bool { return net.ParseIP(h) != nil }, "not an IP address"),
	validation.MatchesRegex(hostnameRegex, "not a hostname"),
)

// Url is an absolute URL with a scheme and a host. Userinfo, port, path, query
// and fragment are optional.
type Url struct {
	StringValue
}

// NewUrl creates a Url.
func NewUrl(raw string, opts ...value.Option) (*Url, error) {
	return NewUrlPtr(&raw, opts...)
}

// NewUrlPtr creates a Url; a nil raw means null.
func NewUrlPtr(raw *string, opts ...value.Option) (*Url, error) {
	u := &Url{}
	return construct(u, &u.Value, raw, urlRules, opts)
}

// NullableUrl creates a nullable Url, null when raw is omitted.
func NullableUrl(raw ...string) (*Url, error) {
	return NewUrlPtr(value.First(raw), value.Nullable())
}

// ImmutableUrl creates a Url that rejects every later write.
func ImmutableUrl(raw string) (*Url, error) {
	return NewUrlPtr(&raw, value.Immutable())
}

func (u *Url) parsed() *url.URL {
	s, ok := u.Get()
	if !ok {
		return nil
	}
	p, err := url.Parse(s)
	if err != nil {
		return nil
	}
	return p
}

// Scheme returns the URL scheme.
func (u *Url) Scheme() string {
	if p := u.parsed(); p != nil {
		return p.Scheme
	}
	return ""
}

// Host returns the URL host, including the port when present.
func (u *Url) Host() string {
	if p := u.parsed(); p != nil {
		return p.Host
	}
	return ""
}

// Path returns the URL path.
func (u *Url) Path() string {
	if p := u.parsed(); p != nil {
		return p.Path
	}
	return ""
}
