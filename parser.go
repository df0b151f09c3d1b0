// FILE: lixenwraith/settings/parser.go
package settings

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// parser applies a token stream to a value map using the registry.
// It is lenient: unknown options are collected, not rejected.
type parser struct {
	reg    *Registry
	shorts []string
	log    zerolog.Logger
}

func newParser(reg *Registry, log zerolog.Logger) *parser {
	return &parser{
		reg:    reg,
		shorts: reg.shortAliases(),
		log:    log,
	}
}

// parse applies tokens in order; later assignments overwrite earlier ones.
// It returns the canonical names of unrecognized options.
func (p *parser) parse(tokens []string, values map[string]any) ([]string, error) {
	var unknown []string

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "" || tok == "--" {
			continue
		}
		if !isOptionLike(tok) {
			p.log.Debug().Str("token", tok).Msg("Ignoring positional token")
			continue
		}

		for tok != "" {
			opt, rest, hasRest := p.match(tok)
			if opt == nil {
				name := unknownName(tok)
				unknown = append(unknown, name)
				p.log.Debug().Str("option", name).Msg("Unrecognized option")
				// An unknown option's value is dropped with it.
				if !hasRest && tok == tokens[i] && i+1 < len(tokens) && !isOptionLike(tokens[i+1]) {
					i++
				}
				break
			}

			next, err := p.apply(opt, tok, rest, hasRest, tokens, &i, values)
			if err != nil {
				return unknown, err
			}
			tok = next
		}
	}

	return unknown, nil
}

// match finds the option for an option-like token. rest holds an inline value
// ("--name=value") or the characters after a short alias ("-tvalue", "-vv").
func (p *parser) match(tok string) (opt *Option, rest string, hasRest bool) {
	if strings.HasPrefix(tok, "--") {
		name, value, inline := strings.Cut(tok[2:], "=")
		return p.reg.long[canonicalKey(name)], value, inline
	}

	if o, ok := p.reg.short[tok]; ok {
		return o, "", false
	}

	// Longest alias first so "-ab" beats "-a" for "-abc".
	for _, alias := range p.shorts {
		if strings.HasPrefix(tok, alias) {
			return p.reg.short[alias], tok[len(alias):], true
		}
	}

	_, value, inline := strings.Cut(tok, "=")
	return nil, value, inline
}

// apply stores one occurrence of opt. It returns a follow-up token when a
// bundled short flag ("-vv") still has aliases left to process.
func (p *parser) apply(opt *Option, tok, rest string, hasRest bool, tokens []string, i *int, values map[string]any) (string, error) {
	key := opt.Key()
	long := strings.HasPrefix(tok, "--")

	switch opt.Kind {
	case KindFlag:
		if hasRest && (long || strings.HasPrefix(rest, "=")) {
			values[key] = inlineBool(strings.TrimPrefix(rest, "="))
			return "", nil
		}
		values[key] = true
		return bundled(long, hasRest, rest), nil

	case KindCount:
		if hasRest && (long || strings.HasPrefix(rest, "=")) {
			values[key] = inlineCount(values[key], strings.TrimPrefix(rest, "="))
			return "", nil
		}
		values[key] = countValue(values[key]) + 1
		return bundled(long, hasRest, rest), nil

	default:
		if hasRest {
			if !long {
				rest = strings.TrimPrefix(rest, "=")
			}
			values[key] = rest
			return "", nil
		}
		if *i+1 < len(tokens) && !isOptionLike(tokens[*i+1]) {
			*i++
			values[key] = tokens[*i]
			return "", nil
		}
		// A bare option keeps what a lower source set; the default only fills a gap.
		if opt.Default != nil {
			if _, set := values[key]; !set {
				values[key] = opt.Default
			}
			return "", nil
		}
		return "", &MissingValueError{Option: key, Token: tok}
	}
}

// bundled returns the next short flag of a bundle, or "" when there is none.
func bundled(long, hasRest bool, rest string) string {
	if long || !hasRest || rest == "" {
		return ""
	}
	return "-" + rest
}

// inlineBool reads "--flag=value". Unparseable text counts as presence.
func inlineBool(s string) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return true
}

// inlineCount reads "--count=value": a number sets the count, false clears it
// and anything else counts as one more occurrence.
func inlineCount(current any, s string) int {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil && !b {
		return 0
	}
	return countValue(current) + 1
}

func countValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	case bool:
		if n {
			return 1
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return 0
}

func unknownName(tok string) string {
	name, _, _ := strings.Cut(tok, "=")
	return canonicalKey(name)
}
