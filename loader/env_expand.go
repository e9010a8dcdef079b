package loader

import (
	"os"
	"regexp"
	"sort"
	"strings"
)

// envRef matches ${VAR}. Bare $VAR is left alone so prices like "$5" survive.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} references in every string value of a decoded
// document. Map keys are left alone.
func expandEnv(node any, missing map[string]struct{}) any {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			v[key] = expandEnv(child, missing)
		}
		return v
	case []any:
		for i, child := range v {
			v[i] = expandEnv(child, missing)
		}
		return v
	case string:
		if !strings.Contains(v, "${") {
			return v
		}
		return expandEnvWithTracking(v, missing)
	default:
		return v
	}
}

func expandEnvWithTracking(value string, missing map[string]struct{}) string {
	return envRef.ReplaceAllStringFunc(value, func(ref string) string {
		key := ref[2 : len(ref)-1]
		if val, ok := os.LookupEnv(key); ok {
			return val
		}
		missing[key] = struct{}{}
		return ""
	})
}

func missingList(missing map[string]struct{}) []string {
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
