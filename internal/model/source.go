// Package model defines the data structures shared by the scan, plan and
// stub stages.
package model

// Path represents a file system path.
type Path string

// Language identifies the block-start pattern set used for a file.
type Language string

const (
	// LanguagePython covers .py files.
	LanguagePython Language = "python"
	// LanguageScript covers the JavaScript/TypeScript family (.js, .jsx, .ts, .tsx).
	LanguageScript Language = "script"
	// LanguageUnknown is returned for unsupported extensions.
	LanguageUnknown Language = ""
)

// SourceFile is a file read by one scan pass.
type SourceFile struct {
	// FullPath is the absolute path on disk.
	FullPath Path
	// ShortPath is the root-relative, slash-separated path used in reports.
	ShortPath Path
	Language  Language
	// Lines keeps original line endings so block digests see the exact bytes.
	Lines []string
}
