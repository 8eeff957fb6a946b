package protocol

import (
	"bytes"
	"encoding/json"

	"github.com/bytedance/sonic"

	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

// Kind discriminates the client message variants.
type Kind int

const (
	// KindUnknown carries none of the recognized fields.
	KindUnknown Kind = iota
	// KindCatalog announces the client's capability catalog.
	KindCatalog
	// KindUserAction reports a client-side event. Accepted, not acted on.
	KindUserAction
	// KindGeneration requests UI generation.
	KindGeneration
)

func (k Kind) String() string {
	switch k {
	case KindCatalog:
		return "catalog"
	case KindUserAction:
		return "user_action"
	case KindGeneration:
		return "generation"
	default:
		return "unknown"
	}
}

// Message is a classified client payload. Exactly the field matching Kind is
// populated.
type Message struct {
	Kind Kind

	// Catalog holds the raw dynamicCatalog JSON for KindCatalog.
	Catalog []byte

	// UserAction holds the raw userAction JSON for KindUserAction.
	UserAction []byte

	// Generation holds the decoded request for KindGeneration.
	Generation *GenerationRequest
}

// GenerationRequest is the payload of a generation message.
type GenerationRequest struct {
	Instructions string
	ImageData    string
}

// envelope mirrors the recognized top-level fields of a client message.
type envelope struct {
	ClientUICapabilities json.RawMessage `json:"clientUiCapabilities"`
	UserAction           json.RawMessage `json:"userAction"`
	Request              json.RawMessage `json:"request"`
}

type capabilities struct {
	DynamicCatalog json.RawMessage `json:"dynamicCatalog"`
}

type generationEnvelope struct {
	Instructions json.RawMessage `json:"instructions"`
	ImageData    json.RawMessage `json:"imageData"`
}

// Classify parses a raw request body and classifies it into a Message.
//
// Classification precedence: catalog announcement, then user action, then
// generation request. A clientUiCapabilities value without a dynamicCatalog
// field is not an announcement and falls through to the later checks.
//
// Errors are typed: ParseError for a non-JSON body, TypeMismatchError for a
// request that is not an object or carries wrongly typed fields,
// InvalidRequestError for a generation request without instructions.
func Classify(raw []byte) (Message, error) {
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return Message{}, apierrors.NewParseError(err.Error())
	}

	if present(env.ClientUICapabilities) {
		var caps capabilities
		// A non-object capabilities value cannot carry a catalog; fall
		// through instead of failing.
		if err := sonic.Unmarshal(env.ClientUICapabilities, &caps); err == nil && present(caps.DynamicCatalog) {
			return Message{Kind: KindCatalog, Catalog: caps.DynamicCatalog}, nil
		}
	}

	if present(env.UserAction) {
		return Message{Kind: KindUserAction, UserAction: env.UserAction}, nil
	}

	if present(env.Request) {
		gen, err := decodeGeneration(env.Request)
		if err != nil {
			return Message{Kind: KindGeneration}, err
		}
		return Message{Kind: KindGeneration, Generation: gen}, nil
	}

	return Message{Kind: KindUnknown}, nil
}

func decodeGeneration(raw json.RawMessage) (*GenerationRequest, error) {
	if !isObject(raw) {
		return nil, apierrors.NewTypeMismatchError("request", "an object")
	}

	var env generationEnvelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return nil, apierrors.NewTypeMismatchError("request", "an object")
	}

	var gen GenerationRequest

	if present(env.Instructions) {
		if err := sonic.Unmarshal(env.Instructions, &gen.Instructions); err != nil {
			return nil, apierrors.NewTypeMismatchError("request.instructions", "a string")
		}
	}
	if gen.Instructions == "" {
		return nil, apierrors.NewInvalidRequestError("request.instructions is required")
	}

	if present(env.ImageData) {
		if err := sonic.Unmarshal(env.ImageData, &gen.ImageData); err != nil {
			return nil, apierrors.NewTypeMismatchError("request.imageData", "a string")
		}
	}

	return &gen, nil
}

// present reports whether a raw field was supplied with a non-null value.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// isObject reports whether raw JSON is object-shaped.
func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
