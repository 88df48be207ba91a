package csslink

import "strings"

// HeadCloseTag is the anchor the marker is inserted before.
const HeadCloseTag = "</head>"

// DefaultCSS is the stylesheet name used when none is given.
const DefaultCSS = "javadoc-readable.css"

// Status classifies what happened, or would happen, to a single file.
type Status int

const (
	StatusModified Status = iota
	StatusWouldModify
	StatusAlreadyPresent
	StatusNoHeadTag
	StatusError
)

// String returns a short lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusWouldModify:
		return "would-modify"
	case StatusAlreadyPresent:
		return "already-present"
	case StatusNoHeadTag:
		return "no-head-tag"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// IsSkip reports whether the status counts as skipped.
func (s Status) IsSkip() bool {
	return s == StatusAlreadyPresent || s == StatusNoHeadTag
}

// Marker returns the <link> tag referencing css.
// The name is used verbatim: it is neither escaped nor checked on disk.
func Marker(css string) string {
	return `<link rel="stylesheet" type="text/css" href="` + css + `">`
}

// Inject inserts marker before the first </head> in content.
// It returns the content unchanged with StatusAlreadyPresent when marker is
// already present, or StatusNoHeadTag when there is no </head>. Otherwise it
// returns the new content with StatusModified.
func Inject(content, marker string) (string, Status) {
	if strings.Contains(content, marker) {
		return content, StatusAlreadyPresent
	}
	if !strings.Contains(content, HeadCloseTag) {
		return content, StatusNoHeadTag
	}
	return strings.Replace(content, HeadCloseTag, marker+"\n"+HeadCloseTag, 1), StatusModified
}
