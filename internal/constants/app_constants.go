package constants

// Service identity, reported in health responses and traces.
const (
	ServiceName    = "ats-checker"
	ServiceVersion = "1.0.0"
)

// Declared upload file types. The extractor dispatches on these; anything
// else is rejected by the transport layer before analysis runs.
const (
	FileTypePDF  = "pdf"
	FileTypeDOCX = "docx"
	FileTypeDOC  = "doc"
	FileTypeTXT  = "txt"
)

// SupportedFileTypes is the upload extension whitelist (without the dot).
var SupportedFileTypes = map[string]bool{
	FileTypePDF:  true,
	FileTypeDOCX: true,
	FileTypeDOC:  true,
	FileTypeTXT:  true,
}

// DefaultMaxUploadBytes caps upload size at 10 MB. The size cap is the only
// backpressure mechanism and is enforced before the analyzer ever runs.
const DefaultMaxUploadBytes int64 = 10 << 20
