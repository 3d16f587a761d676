// Package inputval validates form input structs via `validate` tags before
// a draft is submitted to the backend. This is a fast-fail convenience for
// the admin UI; the backend remains the authority on validation.
//
// Supported rules (comma-separated in the tag):
//
//	required        non-blank string
//	max=N           at most N characters
//	email           syntactically plausible email address
//	httpurl         absolute http(s) URL
//	oneof=a b c     value must equal one of the listed words
//	range=lo-hi     integer field within [lo, hi]
//
// The `label` tag supplies the human-readable field name used in messages.
package inputval

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Result collects validation failures in field declaration order.
type Result struct {
	Errors []FieldError
}

// FieldError is one validation failure with a user-facing message.
type FieldError struct {
	Field   string
	Message string
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first failure message, or "".
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every failure message with "; ".
func (r *Result) All() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every tagged field of the struct in declaration order.
func Validate(input any) *Result {
	res := &Result{}
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return res
	}
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}
		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		value := v.Field(i)

		for _, rule := range strings.Split(tag, ",") {
			if msg := applyRule(rule, label, value); msg != "" {
				res.Errors = append(res.Errors, FieldError{Field: field.Name, Message: msg})
				break // one message per field is enough for the form banner
			}
		}
	}
	return res
}

func applyRule(rule, label string, value reflect.Value) string {
	name, arg, _ := strings.Cut(rule, "=")
	switch name {
	case "required":
		if value.Kind() == reflect.String && strings.TrimSpace(value.String()) == "" {
			return label + " is required."
		}
	case "max":
		n, err := strconv.Atoi(arg)
		if err == nil && value.Kind() == reflect.String && len(value.String()) > n {
			return fmt.Sprintf("%s must be at most %d characters.", label, n)
		}
	case "email":
		if s := value.String(); s != "" && !IsValidEmail(s) {
			return "A valid email address is required."
		}
	case "httpurl":
		if s := value.String(); s != "" && !IsValidHTTPURL(s) {
			return label + " must be a valid absolute URL (e.g., https://example.com)."
		}
	case "oneof":
		if value.Kind() != reflect.String {
			return ""
		}
		s := value.String()
		if s == "" {
			return ""
		}
		for _, opt := range strings.Fields(arg) {
			if s == opt {
				return ""
			}
		}
		return label + " is invalid."
	case "range":
		lo, hi, ok := strings.Cut(arg, "-")
		if !ok {
			return ""
		}
		low, err1 := strconv.Atoi(lo)
		high, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil {
			return ""
		}
		switch value.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := int(value.Int())
			if n < low || n > high {
				return fmt.Sprintf("%s must be between %d and %d.", label, low, high)
			}
		}
	}
	return ""
}

// IsValidEmail reports whether s looks like a deliverable address. It is a
// pragmatic check (single-label domains pass, useful in dev), not full
// RFC 5322.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " <>") {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if strings.Contains(local, "@") {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") || strings.Contains(domain, "..") {
		return false
	}
	return true
}

// IsValidHTTPURL reports whether s is an absolute http or https URL with a
// host.
func IsValidHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
