package config

import (
	"flag"
	"strings"
)

// filterArgs keeps only the allowed flags (and their values) from args, so
// each parsing stage can use its own FlagSet without tripping over flags it
// does not know.
//
// Both "-c conf.json" and "-c=conf.json" forms are recognised.
func filterArgs(args []string, allowed ...string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := known[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := known[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// configFileFromArgs returns the value of -c / -config, or "".
func configFileFromArgs(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(filterArgs(args, "-c", "-config", "--config"))

	return path
}
