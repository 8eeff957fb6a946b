package protocol

import (
	"encoding/base64"
	"strings"

	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

// Part is one unit of multimodal prompt content. The union is closed: only
// TextPart and InlineDataPart implement it.
type Part interface {
	isPart()
}

// TextPart carries plain text.
type TextPart struct {
	Text string
}

func (TextPart) isPart() {}

// InlineDataPart carries inline binary content, typically an image.
type InlineDataPart struct {
	MIMEType string
	Data     []byte
}

func (InlineDataPart) isPart() {}

// DataURI re-encodes the part as a data:<mime>;base64,<payload> URI. The
// round trip through ParseDataURI is lossless.
func (p InlineDataPart) DataURI() string {
	return dataURIScheme + p.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

const dataURIScheme = "data:"

// ParseDataURI decodes a data:<mime>;base64,<payload> URI into an
// InlineDataPart. Any malformed prefix or payload yields an InlineDataError.
func ParseDataURI(uri string) (InlineDataPart, error) {
	if !strings.HasPrefix(uri, dataURIScheme) {
		return InlineDataPart{}, apierrors.NewInlineDataError("missing data: scheme")
	}

	meta, payload, found := strings.Cut(uri[len(dataURIScheme):], ",")
	if !found {
		return InlineDataPart{}, apierrors.NewInlineDataError("missing payload separator")
	}

	mime, encoding, found := strings.Cut(meta, ";")
	if !found || encoding != "base64" {
		return InlineDataPart{}, apierrors.NewInlineDataError("only base64 encoding is supported")
	}
	if mime == "" {
		return InlineDataPart{}, apierrors.NewInlineDataError("missing media type")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return InlineDataPart{}, apierrors.NewInlineDataError("payload is not valid base64")
	}

	return InlineDataPart{MIMEType: mime, Data: data}, nil
}
