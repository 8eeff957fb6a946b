package protocol

// CatalogAckText is the fixed acknowledgement returned for every catalog
// announcement. The wording is part of the wire contract.
const CatalogAckText = "Dynamic Catalog Received"

// errorPrefix prefixes every error detail on the wire.
const errorPrefix = "Invalid message - "

// ModelResponse is the single success envelope returned to the client:
// {"role":"model","parts":[{"text":...}]}.
type ModelResponse struct {
	Role  string         `json:"role"`
	Parts []ResponsePart `json:"parts"`
}

// ResponsePart is one text part of a ModelResponse.
type ResponsePart struct {
	Text string `json:"text"`
}

// NewModelResponse wraps generated text in the response envelope. The text is
// passed through verbatim; this layer never re-parses model output.
func NewModelResponse(text string) ModelResponse {
	return ModelResponse{
		Role:  "model",
		Parts: []ResponsePart{{Text: text}},
	}
}

// ErrorResponse is the uniform failure envelope, always paired with HTTP 400.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse prefixes a failure detail with the fixed envelope wording.
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Error: errorPrefix + detail}
}
