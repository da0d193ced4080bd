package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivanandz/luminila-ERP-sub002/internal/handler"
)

func gstinRequest(t *testing.T, value, query string) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.NewGSTINHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/gstin/"+value+query, nil)
	c.Params = gin.Params{{Key: "value", Value: value}}
	h.Check(c)
	return w
}

func TestGSTINHandler_Check_Valid(t *testing.T) {
	w := gstinRequest(t, "27AAPFU0939F1ZV", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["valid"])
}

func TestGSTINHandler_Check_InvalidIsNotAnError(t *testing.T) {
	w := gstinRequest(t, "27AAPFU0939F", "")

	// Malformed GSTIN is a valid=false result, not an HTTP error.
	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["valid"])
	assert.NotEmpty(t, data["message"])
}

func TestGSTINHandler_Check_StrictChecksum(t *testing.T) {
	// Structurally sound but fails the mod-36 checksum in strict mode.
	w := gstinRequest(t, "29ABCDE1234F1Z5", "?strict=true")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, false, data["valid"])
}

func TestGSTINHandler_States(t *testing.T) {
	h := handler.NewGSTINHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/states", nil)

	h.States(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 37)
}
