package mongostore

import (
	"fmt"
	"strings"
)

// StructuredConnString is a legacy key=value; connection string, the
// non-URL form some configurations record (Server=host:port;Database=name).
// Unknown keys are preserved but ignored by resolution.
type StructuredConnString struct {
	Server   string
	Database string
	Username string
	Password string
}

// ParseStructured parses a legacy structured connection string.
// Keys are case-insensitive; segments without '=' are rejected.
func ParseStructured(cs string) (*StructuredConnString, error) {
	parsed := &StructuredConnString{}

	for _, segment := range strings.Split(cs, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			return nil, fmt.Errorf("invalid connection string segment %q", segment)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch strings.ToLower(key) {
		case "server", "host":
			parsed.Server = value
		case "database":
			parsed.Database = value
		case "username", "user":
			parsed.Username = value
		case "password":
			parsed.Password = value
		}
	}

	if parsed.Server == "" {
		parsed.Server = "localhost:27017"
	}
	return parsed, nil
}

// URI renders the structured string as a mongodb:// URI the driver accepts.
// The database is intentionally not embedded; resolution selects it
// explicitly after connecting.
func (s *StructuredConnString) URI() string {
	var b strings.Builder
	b.WriteString("mongodb://")
	if s.Username != "" {
		b.WriteString(s.Username)
		if s.Password != "" {
			b.WriteString(":")
			b.WriteString(s.Password)
		}
		b.WriteString("@")
	}
	b.WriteString(s.Server)
	return b.String()
}
