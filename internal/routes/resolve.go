package routes

import "strings"

// ResolvePathname resolves to against the directory of from using URL
// relative-reference merge semantics restricted to path components: an
// absolute to replaces from entirely, "." segments are dropped, ".." pops the
// previous component, and excess ".." segments never climb above the root. An
// empty from resolves against an empty context.
func ResolvePathname(to, from string) string {
	var toParts []string
	if to != "" {
		toParts = strings.Split(to, "/")
	}
	var fromParts []string
	if from != "" {
		fromParts = strings.Split(from, "/")
	}

	isToAbs := strings.HasPrefix(to, "/")
	isFromAbs := strings.HasPrefix(from, "/")
	mustEndAbs := isToAbs || isFromAbs

	if isToAbs {
		fromParts = toParts
	} else if len(toParts) > 0 {
		if len(fromParts) > 0 {
			fromParts = fromParts[:len(fromParts)-1]
		}
		fromParts = append(fromParts, toParts...)
	}

	if len(fromParts) == 0 {
		return "/"
	}

	last := fromParts[len(fromParts)-1]
	hasTrailingSlash := last == "." || last == ".." || last == ""

	up := 0
	for i := len(fromParts) - 1; i >= 0; i-- {
		switch fromParts[i] {
		case ".":
			fromParts = append(fromParts[:i], fromParts[i+1:]...)
		case "..":
			fromParts = append(fromParts[:i], fromParts[i+1:]...)
			up++
		default:
			if up > 0 {
				// An unresolved ".." consumes this component. The empty root
				// component is consumed too, which clamps traversal at "/".
				fromParts = append(fromParts[:i], fromParts[i+1:]...)
				up--
			}
		}
	}

	if !mustEndAbs {
		for ; up > 0; up-- {
			fromParts = append([]string{".."}, fromParts...)
		}
	}

	if mustEndAbs && (len(fromParts) == 0 || fromParts[0] != "") {
		fromParts = append([]string{""}, fromParts...)
	}

	result := strings.Join(fromParts, "/")
	if hasTrailingSlash && !strings.HasSuffix(result, "/") {
		result += "/"
	}
	return result
}
