package constants

import "strings"

// Job formats stored in verification_job.format.
const (
	FormatPDF   = "PDF"
	FormatImage = "IMAGE"
	FormatText  = "TXT"
)

// FileTypes holds the allowed file types for the format field in VerificationJob.
var FileTypes = []string{FormatPDF, FormatImage, FormatText}

// AllowedExtensions holds the default allowed file extensions for document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
	"txt":  {},
}

// MaxVisionMBDefault caps the size of a file attached to a vision request.
const MaxVisionMBDefault = 8

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its job format.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return FormatPDF
	case "jpg", "jpeg", "png", "tif", "tiff":
		return FormatImage
	default:
		return FormatText
	}
}
