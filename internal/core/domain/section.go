package domain

// Section is one delimited block of the report: a header framed by
// delimiter rules, followed by either literal lines or the raw bytes of a
// file on disk. Sections carry no file content themselves; the renderer
// reads File when it writes the report.
type Section struct {
	// Header is the text inside the delimiter block.
	Header string

	// Lines holds the literal body lines, one per output line. Only the
	// summary section uses this.
	Lines []string

	// File is the absolute path of the file whose bytes form the body.
	// Empty for the summary section.
	File string
}
