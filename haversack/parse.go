package haversack

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	containSep = " bags contain "
	emptyBag   = "no other bags"
)

// ParseRule parses a single rule line. Trailing "bag", "bags" and the final
// period are ignored; bag names are the two words after each count.
func ParseRule(line string) (Rule, error) {
	line = strings.TrimSpace(line)
	idx := strings.Index(line, containSep)
	if idx < 0 {
		return Rule{}, fmt.Errorf("%w: missing %q in %q", ErrMalformedRule, strings.TrimSpace(containSep), line)
	}
	r := Rule{Container: strings.TrimSpace(line[:idx])}
	if r.Container == "" {
		return Rule{}, fmt.Errorf("%w: empty container name in %q", ErrMalformedRule, line)
	}

	rest := strings.TrimSuffix(strings.TrimSpace(line[idx+len(containSep):]), ".")
	if rest == emptyBag {
		return r, nil
	}
	for _, clause := range strings.Split(rest, ",") {
		c, err := parseContent(clause)
		if err != nil {
			return Rule{}, fmt.Errorf("%w in %q", err, line)
		}
		r.Contents = append(r.Contents, c)
	}

	return r, nil
}

// parseContent parses "5 striped magenta bags".
func parseContent(clause string) (Content, error) {
	parts := strings.Fields(clause)
	if len(parts) != 4 || (parts[3] != "bag" && parts[3] != "bags") {
		return Content{}, fmt.Errorf("%w: clause %q", ErrMalformedRule, strings.TrimSpace(clause))
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil || n <= 0 {
		return Content{}, fmt.Errorf("%w: bad count %q", ErrMalformedRule, parts[0])
	}

	return Content{Count: n, Name: parts[1] + " " + parts[2]}, nil
}
