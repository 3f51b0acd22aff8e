package validation

import (
	"testing"
)

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	if v["name"] == "" {
		t.Errorf("expected violation for blank value")
	}
	v = Violations{}
	Required("name", "Dupont", v)
	if !v.Empty() {
		t.Errorf("unexpected violations: %#v", v)
	}
}

func TestNamePattern(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"Dupont", true},
		{"Jean-Pierre", true},
		{"Léa", true},
		{"", false},
		{"Jean Pierre", false},
		{"x123", false},
	}
	for _, tt := range tests {
		if got := NamePattern.MatchString(tt.value); got != tt.ok {
			t.Errorf("NamePattern(%q) = %v, want %v", tt.value, got, tt.ok)
		}
	}
}

func TestEmailPattern(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.org", true},
		{"user@example", false},
		{"@example.com", false},
		{"user@@example.com", false},
	}
	for _, tt := range tests {
		if got := EmailPattern.MatchString(tt.value); got != tt.ok {
			t.Errorf("EmailPattern(%q) = %v, want %v", tt.value, got, tt.ok)
		}
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"strong", "Str0ng!pass", true},
		{"too short", "S0!a", false},
		{"no upper", "str0ng!pass", false},
		{"no digit", "Strong!pass", false},
		{"no special", "Str0ngpass", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Violations{}
			Password("password", tt.value, v)
			if v.Empty() != tt.ok {
				t.Errorf("Password(%q) violations = %#v, want ok=%v", tt.value, v, tt.ok)
			}
		})
	}
}

func TestDatetime(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2026-03-01 14:30:00", true},
		{"2026-03-01T14:30:00", false},
		{"2026-03-01", false},
		{"2026-02-30 14:30:00", false}, // not a real date
	}
	for _, tt := range tests {
		v := Violations{}
		Datetime("datetime", tt.value, v)
		if v.Empty() != tt.ok {
			t.Errorf("Datetime(%q) violations = %#v, want ok=%v", tt.value, v, tt.ok)
		}
	}
}

func TestRequiredID(t *testing.T) {
	v := Violations{}
	RequiredID("shop_id", nil, v)
	if v["shop_id"] == "" {
		t.Errorf("expected violation for nil id")
	}
	zero := uint(0)
	v = Violations{}
	RequiredID("shop_id", &zero, v)
	if v["shop_id"] == "" {
		t.Errorf("expected violation for zero id")
	}
	one := uint(1)
	v = Violations{}
	RequiredID("shop_id", &one, v)
	if !v.Empty() {
		t.Errorf("unexpected violations: %#v", v)
	}
}

func TestViolationMessageFormat(t *testing.T) {
	v := Violations{}
	Required("subject", "", v)
	if v["subject"] != "Invalid or missing parameter 'subject'." {
		t.Errorf("unexpected message %q", v["subject"])
	}
}
