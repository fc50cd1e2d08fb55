package impl

import (
	"encoding/base64"
	"path"
	"strings"

	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/util"

	"github.com/gabriel-vasile/mimetype"
)

// validateImage sniffs the payload and enforces the size cap. The declared
// content type is ignored. It returns the detected MIME type.
func validateImage(file *entity.ImageFile, maxBytes int64) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", domainerrors.ErrNoFileSelected
	}

	detected := mimetype.Detect(file.Data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", domainerrors.ErrNotAnImage.WithDetails("detected " + detected.String())
	}

	if size := file.ByteSize(); size > maxBytes {
		return "", domainerrors.ErrImageTooLarge.WithDetails(util.FormatBytes(size) + " exceeds " + util.FormatBytes(maxBytes))
	}

	return detected.String(), nil
}

// dataURL renders the payload as an inline data URL for previews.
func dataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// objectFileName keeps only the base name of an uploaded file.
func objectFileName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "upload"
	}

	return base
}
