package highlight

import (
	"path/filepath"
	"strings"
)

// extLanguages maps file extensions to Chroma lexer names.
var extLanguages = map[string]string{
	".go":         "go",
	".py":         "python",
	".js":         "javascript",
	".ts":         "typescript",
	".jsx":        "jsx",
	".tsx":        "tsx",
	".java":       "java",
	".c":          "c",
	".cpp":        "cpp",
	".cc":         "cpp",
	".h":          "c",
	".hpp":        "cpp",
	".cs":         "csharp",
	".rb":         "ruby",
	".php":        "php",
	".rs":         "rust",
	".swift":      "swift",
	".kt":         "kotlin",
	".scala":      "scala",
	".sh":         "bash",
	".bash":       "bash",
	".zsh":        "zsh",
	".fish":       "fish",
	".lua":        "lua",
	".sql":        "sql",
	".html":       "html",
	".htm":        "html",
	".xml":        "xml",
	".css":        "css",
	".json":       "json",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".ini":        "ini",
	".md":         "markdown",
	".markdown":   "markdown",
	".vim":        "vim",
	".pl":         "perl",
	".dockerfile": "docker",
	".proto":      "protobuf",
}

// nameLanguages covers files identified by base name rather than extension.
var nameLanguages = map[string]string{
	"dockerfile": "docker",
	"makefile":   "make",
	"gemfile":    "ruby",
	"rakefile":   "ruby",
}

// DetectLanguage returns the language tag for path, or PlainText when the
// path is empty or its extension is unknown.
func DetectLanguage(path string) string {
	if path == "" {
		return PlainText
	}
	if lang, ok := extLanguages[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	if lang, ok := nameLanguages[strings.ToLower(filepath.Base(path))]; ok {
		return lang
	}
	return PlainText
}
