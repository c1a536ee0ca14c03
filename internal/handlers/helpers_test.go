// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createRequest はJSONボディと開発用認証ヘッダー付きのリクエストを組み立てます。
// userID が nil の場合は X-User-ID ヘッダーを付与しません。
func createRequest(t *testing.T, method, path string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// createMultipartRequest はファイルアップロード用のmultipartリクエストを組み立てます。
func createMultipartRequest(t *testing.T, path, fieldName, filename string, content []byte, userID *uuid.UUID) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}
