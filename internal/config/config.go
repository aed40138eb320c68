// Package config builds the global configuration map from repeated
// "-D KEY=VALUE" CLI flags (spec §6), validating keys and auto-inserting
// BLOGC_VERSION the way the reference compiler's global config is always
// seeded with the compiler's own identity.
//
// This mirrors the teacher's config package in shape (a small typed loader
// with a Load/validate split) but there is no file to walk up a directory
// tree looking for — the "source" here is just the flags the CLI parsed.
package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/gopherblog/blogc/internal/container"
	"github.com/gopherblog/blogc/internal/version"
)

// validKey reports whether key matches [A-Z_]+, the CLI's looser key
// grammar (spec §6); the
// source-preamble grammar [A-Z][A-Z0-9_]* from §4.3 is enforced separately
// by internal/source and is intentionally not reused here.
func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if !((c >= 'A' && c <= 'Z') || c == '_') {
			return false
		}
	}
	return true
}

// Load parses a list of "-D KEY=VALUE" flag values into a global config
// map, seeded with BLOGC_VERSION. Every malformed entry is collected into
// one aggregated error via hashicorp/go-multierror rather than stopping at
// the first bad flag, so a user fixing "-D" typos sees them all at once.
func Load(defines []string) (*container.Map, error) {
	m := container.NewMap(nil)
	m.Set("BLOGC_VERSION", version.Version)

	var errs error
	for _, d := range defines {
		key, value, ok := strings.Cut(d, "=")
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("malformed -D flag %q: expected KEY=VALUE", d))
			continue
		}
		if !validKey(key) {
			errs = multierror.Append(errs, fmt.Errorf("invalid -D key %q: must match [A-Z_]+", key))
			continue
		}
		m.Set(key, value)
	}

	if errs != nil {
		return nil, errs
	}
	return m, nil
}
