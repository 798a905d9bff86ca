package inference

import "context"

// RecognizeRequest asks the hosted endpoint to read one region of a document.
type RecognizeRequest struct {
	FilePath string
	Region   string // constants.Region value; empty means the whole page
	Language string // reading hint, e.g. "en"

	ContentHashHex string // hex sha-256 of the file, for request correlation
}

// OCRResult is the normalized shape we want from the endpoint.
type OCRResult struct {
	Text       string  `json:"text"`
	Region     string  `json:"region,omitempty"`
	Language   string  `json:"language,omitempty"`
	Confidence float32 `json:"confidence,omitempty"` // optional (0..1)
	ModelNote  string  `json:"model_note,omitempty"`
}

// TextRecognizer is the interface the analysis pipeline depends on.
type TextRecognizer interface {
	RecognizeText(ctx context.Context, req RecognizeRequest) (OCRResult, []byte /*rawJSON*/, error)
}
