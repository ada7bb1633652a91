package routes

import "strings"

// sourceExtensions lists the file extensions that map onto site routes.
var sourceExtensions = []string{".md", ".mdx", ".js", ".jsx", ".ts", ".tsx"}

// FileToPath maps a source file's relative path to its site route. Index
// files collapse into their directory route with a trailing slash; any other
// file keeps its directory components and drops the extension.
func FileToPath(file string) string {
	dir := ""
	name := file
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		dir = file[:idx+1]
		name = file[idx+1:]
	}
	if isIndexFile(name) {
		return "/" + dir
	}
	return "/" + trimSourceExtension(file)
}

// EditURL joins a source file path onto the base edit URL for the site. The
// second return is false when no base URL is configured. Windows separators
// normalize to "/" before joining; non-ASCII characters pass through
// unescaped, percent-encoding is the caller's concern.
func EditURL(filePath, baseURL string) (string, bool) {
	if baseURL == "" {
		return "", false
	}
	return NormalizeURL(baseURL, strings.ReplaceAll(filePath, `\`, "/")), true
}

func isIndexFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range sourceExtensions {
		if lower == "index"+ext {
			return true
		}
	}
	return false
}

func trimSourceExtension(file string) string {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(file, ext) {
			return strings.TrimSuffix(file, ext)
		}
	}
	return file
}
