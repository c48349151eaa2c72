package rules

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Email fails for anything that is not a plausible web-form email address:
// it must parse per RFC 5322 and have a dotted, non-degenerate domain.
func Email(opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			s, ok := asString(value)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}

			addr, err := mail.ParseAddress(s)
			if err != nil {
				return false
			}

			local, domain, found := strings.Cut(addr.Address, "@")
			if !found || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		}),
		Message:        "must be a valid email address",
		TranslationKey: "validation.email",
	}, opts)
}

// URL fails for strings that are not absolute http(s) URLs with a host.
func URL(opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			s, ok := asString(value)
			if !ok {
				return false
			}
			u, err := url.ParseRequestURI(s)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		}),
		Message:        "must be a valid URL",
		TranslationKey: "validation.url",
	}, opts)
}

// Pattern fails for strings not matching the given regular expression. An
// invalid expression panics at construction; use Matches with a precompiled
// expression when the pattern is not a literal.
func Pattern(pattern string, opts ...Option) form.Rule {
	return Matches(regexp.MustCompile(pattern), opts...)
}

// Matches fails for strings not matching re and for non-string values.
func Matches(re *regexp.Regexp, opts ...Option) form.Rule {
	return apply(form.Rule{
		Check: predicate(func(value any) bool {
			s, ok := asString(value)
			return ok && re.MatchString(s)
		}),
		Message:           fmt.Sprintf("must match pattern %s", re.String()),
		TranslationKey:    "validation.pattern",
		TranslationValues: map[string]any{"pattern": re.String()},
	}, opts)
}
