package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{"api_key", "abc", "store_id", "s1", "jwt_token", "t"})
	assert.Equal(t, []interface{}{"api_key", "[REDACTED]", "store_id", "s1", "jwt_token", "[REDACTED]"}, out)
}

func TestSanitizeKVsKeepsDanglingKey(t *testing.T) {
	out := sanitizeKVs([]interface{}{"op", "getStore", "orphan"})
	assert.Equal(t, []interface{}{"op", "getStore", "orphan"}, out)
}
