package scaffold

import "regexp"

// controllerImportPattern matches the controller import lines the emitter
// writes into Server/index.ts. The captured group is the feature name, which
// also names the Features/<name>/ directory.
var controllerImportPattern = regexp.MustCompile(
	`(?m)^import \{ \w+Controller \} from '\.\./Features/([^/']+)/delivery/controllers/`)

// RegisteredFeatures extracts the features wired into an entry point, in
// file order. Unrecognized content yields an empty list, which makes adding
// a feature to a hand-edited entry point a full rewrite rather than a merge.
func RegisteredFeatures(entryPoint []byte) []string {
	matches := controllerImportPattern.FindAllSubmatch(entryPoint, -1)
	features := make([]string, 0, len(matches))
	for _, m := range matches {
		features = append(features, string(m[1]))
	}
	return features
}

// mergeFeatures appends added names not already present, preserving the
// existing registration order. Re-adding a feature is therefore idempotent
// at the wiring level.
func mergeFeatures(existing, added []string) []string {
	merged := make([]string, 0, len(existing)+len(added))
	seen := make(map[string]bool, len(existing)+len(added))
	for _, name := range existing {
		if seen[name] {
			continue
		}
		seen[name] = true
		merged = append(merged, name)
	}
	for _, name := range added {
		if seen[name] {
			continue
		}
		seen[name] = true
		merged = append(merged, name)
	}
	return merged
}
