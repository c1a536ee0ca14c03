// internal/handlers/sheet_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_5_sheet_keep/internal/handlers"
	"go_5_sheet_keep/internal/middleware"
	"go_5_sheet_keep/internal/model"
	"go_5_sheet_keep/internal/service/mocks"
)

func newSheetTestRouter(t *testing.T) (*mocks.MockSheetService, *mocks.MockImportService, chi.Router) {
	t.Helper()
	mockSheetService := mocks.NewMockSheetService(t)
	mockImportService := mocks.NewMockImportService(t)
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sheetHandler := handlers.NewSheetHandler(mockSheetService, mockImportService, 10, testLogger)

	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/sheets", sheetHandler.GetSheets)
	router.Post("/api/sheets", sheetHandler.PostSheet)
	router.Post("/api/sheets/bulk-upload", sheetHandler.BulkUpload)
	router.Get("/api/sheets/{sheet_id}", sheetHandler.GetSheet)
	router.Delete("/api/sheets/{sheet_id}", sheetHandler.DeleteSheet)
	return mockSheetService, mockImportService, router
}

func TestSheetHandler_PostSheet(t *testing.T) {
	userID := uuid.New()

	validReqBody := model.PostSheetRequest{
		Title:       "AtCoder 精選100",
		Description: "典型問題を集めたシート",
	}
	expectedSheet := &model.Sheet{
		SheetID:     uuid.New(),
		UserID:      userID,
		Title:       validReqBody.Title,
		Description: validReqBody.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.MockSheetService)
		expectedStatus int
	}{
		{
			name:   "Success - Valid request",
			userID: &userID,
			body:   validReqBody,
			setupMock: func(m *mocks.MockSheetService) {
				m.On("CreateSheet", mock.Anything, userID, &validReqBody).
					Return(expectedSheet, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Missing user ID",
			userID:         nil,
			body:           validReqBody,
			setupMock:      func(m *mocks.MockSheetService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Fail - Missing title",
			userID:         &userID,
			body:           model.PostSheetRequest{Description: "no title"},
			setupMock:      func(m *mocks.MockSheetService) { /* バリデーションで弾かれる */ },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSheetService, _, router := newSheetTestRouter(t)
			tc.setupMock(mockSheetService)

			req := createRequest(t, http.MethodPost, "/api/sheets", tc.body, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var respSheet model.Sheet
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respSheet))
				assert.Equal(t, expectedSheet.Title, respSheet.Title)
				assert.NotEqual(t, uuid.Nil, respSheet.SheetID)
			} else {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error.Message)
			}
		})
	}
}

func TestSheetHandler_GetSheets(t *testing.T) {
	userID := uuid.New()

	t.Run("Success - Returns sheets", func(t *testing.T) {
		mockSheetService, _, router := newSheetTestRouter(t)
		sheets := []*model.Sheet{
			{SheetID: uuid.New(), UserID: userID, Title: "Sheet A"},
			{SheetID: uuid.New(), UserID: userID, Title: "Sheet B"},
		}
		mockSheetService.On("ListSheets", mock.Anything, userID).Return(sheets, nil).Once()

		req := createRequest(t, http.MethodGet, "/api/sheets", nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var respSheets []*model.Sheet
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respSheets))
		assert.Len(t, respSheets, 2)
	})

	t.Run("Success - Empty list is JSON array, not null", func(t *testing.T) {
		mockSheetService, _, router := newSheetTestRouter(t)
		mockSheetService.On("ListSheets", mock.Anything, userID).Return(nil, nil).Once()

		req := createRequest(t, http.MethodGet, "/api/sheets", nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestSheetHandler_GetSheet(t *testing.T) {
	userID := uuid.New()
	sheetID := uuid.New()

	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.MockSheetService)
		expectedStatus int
	}{
		{
			name: "Success - Found",
			path: fmt.Sprintf("/api/sheets/%s", sheetID),
			setupMock: func(m *mocks.MockSheetService) {
				m.On("GetSheet", mock.Anything, userID, sheetID).
					Return(&model.Sheet{SheetID: sheetID, UserID: userID, Title: "Found"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Fail - Not found",
			path: fmt.Sprintf("/api/sheets/%s", sheetID),
			setupMock: func(m *mocks.MockSheetService) {
				m.On("GetSheet", mock.Anything, userID, sheetID).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Fail - Invalid UUID in path",
			path:           "/api/sheets/not-a-uuid",
			setupMock:      func(m *mocks.MockSheetService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSheetService, _, router := newSheetTestRouter(t)
			tc.setupMock(mockSheetService)

			req := createRequest(t, http.MethodGet, tc.path, nil, &userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestSheetHandler_DeleteSheet(t *testing.T) {
	userID := uuid.New()
	sheetID := uuid.New()

	t.Run("Success - Returns 204 with empty body", func(t *testing.T) {
		mockSheetService, _, router := newSheetTestRouter(t)
		mockSheetService.On("DeleteSheet", mock.Anything, userID, sheetID).Return(nil).Once()

		req := createRequest(t, http.MethodDelete, fmt.Sprintf("/api/sheets/%s", sheetID), nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("Fail - Not found", func(t *testing.T) {
		mockSheetService, _, router := newSheetTestRouter(t)
		mockSheetService.On("DeleteSheet", mock.Anything, userID, sheetID).Return(model.ErrNotFound).Once()

		req := createRequest(t, http.MethodDelete, fmt.Sprintf("/api/sheets/%s", sheetID), nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSheetHandler_BulkUpload(t *testing.T) {
	userID := uuid.New()
	csvContent := []byte("Problem Link,Title\nhttps://codeforces.com/problemset/problem/1/A,Theatre Square\n")

	t.Run("Success - Returns import summary", func(t *testing.T) {
		_, mockImportService, router := newSheetTestRouter(t)
		mockImportService.On("ImportSheet", mock.Anything, userID, "problems.csv", csvContent).
			Return(&model.BulkImportResponse{
				SheetName:     "Imported Sheet 2025/06/15",
				TotalProblems: 1,
				Problems:      []model.Problem{{ProblemID: uuid.New(), Title: "Theatre Square"}},
			}, nil).Once()

		req := createMultipartRequest(t, "/api/sheets/bulk-upload", "file", "problems.csv", csvContent, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp model.BulkImportResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.TotalProblems)
		assert.Equal(t, "Imported Sheet 2025/06/15", resp.SheetName)
	})

	t.Run("Fail - No valid problems", func(t *testing.T) {
		_, mockImportService, router := newSheetTestRouter(t)
		mockImportService.On("ImportSheet", mock.Anything, userID, "problems.csv", csvContent).
			Return(nil, model.NewAppError("NO_VALID_PROBLEMS", "ファイル内に有効な問題が見つかりませんでした。", "", model.ErrInvalidInput)).Once()

		req := createMultipartRequest(t, "/api/sheets/bulk-upload", "file", "problems.csv", csvContent, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "NO_VALID_PROBLEMS", errResp.Error.Code)
	})

	t.Run("Fail - Missing file field", func(t *testing.T) {
		_, _, router := newSheetTestRouter(t)

		req := createMultipartRequest(t, "/api/sheets/bulk-upload", "wrong_field", "problems.csv", csvContent, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "FILE_REQUIRED", errResp.Error.Code)
	})
}
