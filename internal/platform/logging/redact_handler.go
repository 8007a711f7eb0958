package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, in lowercase, the HTTP headers that carry
// credentials. The request logging middleware redacts them by name and the
// masq filter below masks attributes with the same keys.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// sensitiveKeys are attribute keys whose values are always masked. They
// cover config dumps and connection settings for Postgres, Redis and Kafka.
var sensitiveKeys = []string{
	"password",
	"secret",
	"token",
	"dsn",
	"database_url",
	"redis_password",
	"sasl_password",
}

// sensitivePrefixes mask key variants such as "secret_key" or "api_key_v2".
var sensitivePrefixes = []string{"secret_", "api_key"}

// secretValuePatterns catch secrets inside otherwise harmless values, most
// often a driver error that echoes the DSN it failed to dial.
var secretValuePatterns = []*regexp.Regexp{
	// Bearer tokens.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline api_key=... or apikey: ...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// URLs with userinfo, e.g. postgres://admin:s3cret@db:5432/devflix.
	regexp.MustCompile(`(?i)[a-z][a-z0-9+.\-]*://[^:/@\s]*:[^@/\s]+@`),
}

// newRedactAttr builds the masq ReplaceAttr used by every handler New
// creates.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveKeys)+len(sensitivePrefixes)+len(secretValuePatterns))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, key := range sensitiveKeys {
		opts = append(opts, masq.WithFieldName(key))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range secretValuePatterns {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
