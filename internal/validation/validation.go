// Package validation holds the per-field request checks applied at the
// controller boundary, before any service call. Each check records a
// field-specific message into a Violations map.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// DatetimeLayout is the wire format for every datetime field.
const DatetimeLayout = "2006-01-02 15:04:05"

// Field patterns shared by the controllers.
var (
	// Letters (including accented) and hyphens, 1 to 30 characters.
	NamePattern = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\-]{1,30}$`)
	// Optional international prefix, then at least six digits with common separators.
	PhonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{5,29}$`)
	EmailPattern = regexp.MustCompile(`^([A-Za-z0-9]+[._\-])*[A-Za-z0-9]+@[A-Za-z0-9\-]+(\.[A-Za-z]{2,})+$`)
	// Free text: letters, digits, whitespace and light punctuation, up to 500 chars.
	DescriptionPattern = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\s\d\-,.'#!?]{1,500}$`)
	DatetimePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
)

func missing(field string) string {
	return fmt.Sprintf("Invalid or missing parameter '%s'.", field)
}

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = missing(field)
	}
}

// Match validates value against pattern; empty values are rejected too, so a
// single call covers "required + well-formed".
func Match(field, value string, pattern *regexp.Regexp, v Violations) {
	if !pattern.MatchString(value) {
		v[field] = missing(field)
	}
}

// Password enforces the strength rule: at least 8 characters with a lower-case
// letter, an upper-case letter, a digit and a punctuation character. Spelled
// out because RE2 has no lookaheads.
func Password(field, value string, v Violations) {
	var lower, upper, digit, special bool
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("!@#$%^&*()-_=+{};:,<.>/?", r):
			special = true
		}
	}
	if len(value) < 8 || !lower || !upper || !digit || !special {
		v[field] = missing(field)
	}
}

// Datetime validates the YYYY-MM-DD HH:MM:SS wire format, including that the
// value is a real calendar datetime.
func Datetime(field, value string, v Violations) {
	if !DatetimePattern.MatchString(value) {
		v[field] = missing(field)
		return
	}
	if _, err := time.Parse(DatetimeLayout, value); err != nil {
		v[field] = missing(field)
	}
}

// RequiredID validates a required numeric reference sent in a JSON body as a
// pointer field; nil or non-positive values are violations.
func RequiredID(field string, id *uint, v Violations) {
	if id == nil || *id == 0 {
		v[field] = missing(field)
	}
}

// RequiredInt validates a required integer field sent as a pointer.
func RequiredInt(field string, n *int, v Violations) {
	if n == nil {
		v[field] = missing(field)
	}
}
