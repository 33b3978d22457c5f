package validator

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formrules/pkg/messages"
)

var (
	zipPattern = regexp.MustCompile(`^\d{1,3}-\d{1,4}$`)

	emailParts   = regexp.MustCompile(`^(.+)@(.+)$`)
	domainAtoms  = regexp.MustCompile(`^` + emailAtom + `(\.` + emailAtom + `)*$`)
	domainAtom   = regexp.MustCompile(emailAtom)
	errBadFlags  = errors.New("unsupported regexp flag")
	errNotRegexp = errors.New("pattern is neither a string nor a compiled regexp")
)

// emailAtom is one or more characters that are neither white space nor one
// of ()<>@,;:\".[]
const emailAtom = `[^\s\v\p{Z}\x{FEFF}()<>@,;:\\".\[\]]+`

func zip(c *Check) []Violation {
	if !zipPattern.MatchString(c.Value().String()) {
		return c.Fail(messages.Zip)
	}
	return nil
}

// EmailError checks an address and returns the catalog key of the first
// failure, or "" for a valid address. The domain is everything after the last
// '@' and must consist of at least two dot-separated atoms, the last one 2 to
// 4 characters long.
func EmailError(addr string) messages.Key {
	m := emailParts.FindStringSubmatch(addr)
	if m == nil {
		return messages.MailNoAt
	}

	domain := m[2]
	if !domainAtoms.MatchString(domain) {
		return messages.MailNoDomain
	}

	atoms := domainAtom.FindAllString(domain, -1)
	if len(atoms) < 2 {
		return messages.MailNoDomain
	}
	if n := utf8.RuneCountInString(atoms[len(atoms)-1]); n < 2 || n > 4 {
		return messages.MailInvalidLocale
	}
	return ""
}

func email(c *Check) []Violation {
	addr := c.Value().String()
	if addr == "" {
		return nil
	}
	if key := EmailError(addr); key != "" {
		return c.Fail(key)
	}
	return nil
}

// pattern matches the value against params[0]: a *regexp.Regexp with an
// optional message in params[1], or a pattern string with optional flags in
// params[1] and message in params[2]. A pattern that cannot be used is
// reported as REGEXP_INVALID_PARAM.
func pattern(c *Check) []Violation {
	re, msg, err := c.compilePattern()
	if err != nil {
		return c.Fail(messages.RegexpInvalidParam)
	}
	if re.MatchString(c.Value().String()) {
		return nil
	}
	if truthy(msg) {
		return []Violation{{Key: messages.RegexpInvalidValue, Message: toText(msg)}}
	}
	return c.Fail(messages.RegexpInvalidValue)
}

func (c *Check) compilePattern() (*regexp.Regexp, any, error) {
	p0, _ := c.Param(0)
	switch p := p0.(type) {
	case *regexp.Regexp:
		if p == nil {
			return nil, nil, errNotRegexp
		}
		msg, _ := c.Param(1)
		return p, msg, nil
	case string:
		var flags string
		if f, ok := c.Param(1); ok && truthy(f) {
			flags = toText(f)
		}
		prefix, err := regexpFlags(flags)
		if err != nil {
			return nil, nil, err
		}
		re, err := regexp.Compile(prefix + p)
		if err != nil {
			return nil, nil, err
		}
		msg, _ := c.Param(2)
		return re, msg, nil
	default:
		return nil, nil, errNotRegexp
	}
}

// regexpFlags maps JavaScript-style flags to an RE2 flag group. g, y, u and d
// change nothing for a single match test; other letters and repeats are
// rejected.
func regexpFlags(flags string) (string, error) {
	var b strings.Builder
	seen := make(map[rune]bool, len(flags))
	for _, f := range flags {
		if seen[f] {
			return "", errBadFlags
		}
		seen[f] = true
		switch f {
		case 'i', 'm', 's':
			b.WriteRune(f)
		case 'g', 'y', 'u', 'd':
		default:
			return "", errBadFlags
		}
	}
	if b.Len() == 0 {
		return "", nil
	}
	return "(?" + b.String() + ")", nil
}
