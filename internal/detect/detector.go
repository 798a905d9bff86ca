// Package detect locates stamps and signatures on document images.
//
// The current implementation is a simulated detector: it produces
// deterministic, content-addressed pseudo-results so that downstream
// scoring and review logic can be exercised end to end without a
// vision model. Swap in a real Detector implementation to upgrade.
package detect

import "context"

// Target names what the detector should look for.
type Target string

const (
	TargetStamp     Target = "stamp"
	TargetSignature Target = "signature"
)

// DetectRequest asks for a single target on a single image.
type DetectRequest struct {
	ImagePath string
	Target    Target
}

// Detection is the outcome for one target.
type Detection struct {
	Present    bool
	Confidence float32
	Notes      []string
}

// Detector finds a target on a document image.
type Detector interface {
	Detect(ctx context.Context, req DetectRequest) (Detection, error)
}
