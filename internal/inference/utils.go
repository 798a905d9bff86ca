package inference

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkspect/docverify/constants"
)

// ShouldAttachImage reports whether the request's file can ride along as a
// vision attachment: it must be an image format and under the size gate.
func ShouldAttachImage(req RecognizeRequest) (attach bool, dataURL, mimeType string) {
	attach = req.FilePath != "" &&
		constants.MapExtToFormat(filepath.Ext(req.FilePath)) == constants.FormatImage

	if !attach {
		return false, "", ""
	}

	// size gate
	if st, err := os.Stat(req.FilePath); err == nil {
		if st.Size() > int64(constants.MaxVisionMBDefault)*1024*1024 {
			return false, "", ""
		}
	}

	u, mt, err := readAsDataURL(req.FilePath)
	if err != nil {
		return false, "", ""
	}
	return true, u, mt
}

func readAsDataURL(path string) (string, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		// fallbacks
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		case "tif", "tiff":
			mt = "image/tiff"
		default:
			mt = "application/octet-stream"
		}
	}
	data := base64.StdEncoding.EncodeToString(b)
	return "data:" + mt + ";base64," + data, mt, nil
}
