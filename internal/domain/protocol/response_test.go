package protocol

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelResponseShape(t *testing.T) {
	out, err := sonic.Marshal(NewModelResponse("hello"))
	require.NoError(t, err)
	assert.Equal(t, `{"role":"model","parts":[{"text":"hello"}]}`, string(out))
}

func TestCatalogAck(t *testing.T) {
	out, err := sonic.Marshal(NewModelResponse(CatalogAckText))
	require.NoError(t, err)
	assert.Equal(t, `{"role":"model","parts":[{"text":"Dynamic Catalog Received"}]}`, string(out))
}

func TestErrorResponseShape(t *testing.T) {
	out, err := sonic.Marshal(NewErrorResponse("No payload or catalog"))
	require.NoError(t, err)
	assert.Equal(t, `{"error":"Invalid message - No payload or catalog"}`, string(out))
}
