package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	paths, ok := parsed["paths"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, paths, "/cpf/{cpf}")
	assert.Contains(t, paths, "/cpf/validate")
	assert.Contains(t, paths, "/health")
	assert.Equal(t, "/v1", parsed["basePath"])
}
