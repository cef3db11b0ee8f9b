package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders are lowercased header names whose values never reach a
// log line. The request middleware consults it before logging headers.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
}

var (
	bearerToken = regexp.MustCompile(`(?i)bearer\s+[\w\-.~+/]+=*`)
	rawJWT      = regexp.MustCompile(`[\w\-]{10,}\.[\w\-]{10,}\.[\w\-]{10,}`)
	inlineKey   = regexp.MustCompile(`(?i)api[_\-]?key\s*[:=]\s*\S+`)
)

// masker redacts attributes named like credentials and string values that
// look like one, wherever they appear in a record.
func masker() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerToken),
		masq.WithRegex(rawJWT),
		masq.WithRegex(inlineKey),
	}
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
