package config

import (
	"net"
	"net/url"
	"strconv"
)

// DSN returns a PostgreSQL connection string.
// If ConnectionString is set, it is used directly. Otherwise, builds a URL
// from the discrete fields.
func (d *DatabaseConfig) DSN() string {
	if d.ConnectionString != "" {
		return d.ConnectionString
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Database,
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else {
		u.User = url.User(d.User)
	}

	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// RedactedDSN returns the DSN with any password replaced, safe for logs.
func (d *DatabaseConfig) RedactedDSN() string {
	u, err := url.Parse(d.DSN())
	if err != nil {
		return "(unparseable dsn)"
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
