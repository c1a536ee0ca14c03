// internal/handlers/problem_handler_test.go
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

func newProblemTestRouter(t *testing.T) (*mocks.MockProblemService, chi.Router) {
	t.Helper()
	mockProblemService := mocks.NewMockProblemService(t)
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	problemHandler := handlers.NewProblemHandler(mockProblemService, testLogger)

	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/sheets/{sheet_id}/problems", problemHandler.GetProblems)
	router.Post("/api/sheets/{sheet_id}/problems", problemHandler.PostProblem)
	router.Put("/api/problems/{problem_id}", problemHandler.PutProblem)
	router.Delete("/api/problems/{problem_id}", problemHandler.DeleteProblem)
	return mockProblemService, router
}

func TestProblemHandler_PostProblem(t *testing.T) {
	userID := uuid.New()
	sheetID := uuid.New()

	validReqBody := model.PostProblemRequest{
		Title:    "Theatre Square",
		Link:     "https://codeforces.com/problemset/problem/1/A",
		Platform: "Codeforces",
	}
	expectedProblem := &model.Problem{
		ProblemID: uuid.New(),
		SheetID:   sheetID,
		Title:     validReqBody.Title,
		Link:      validReqBody.Link,
		Platform:  validReqBody.Platform,
		Status:    model.StatusNotStarted,
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		path           string
		body           interface{}
		setupMock      func(m *mocks.MockProblemService)
		expectedStatus int
	}{
		{
			name:   "Success - Valid request",
			userID: &userID,
			path:   fmt.Sprintf("/api/sheets/%s/problems", sheetID),
			body:   validReqBody,
			setupMock: func(m *mocks.MockProblemService) {
				m.On("CreateProblem", mock.Anything, userID, sheetID, &validReqBody).
					Return(expectedProblem, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Missing required fields",
			userID:         &userID,
			path:           fmt.Sprintf("/api/sheets/%s/problems", sheetID),
			body:           model.PostProblemRequest{Title: "No Link"},
			setupMock:      func(m *mocks.MockProblemService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Fail - Sheet not found",
			userID: &userID,
			path:   fmt.Sprintf("/api/sheets/%s/problems", sheetID),
			body:   validReqBody,
			setupMock: func(m *mocks.MockProblemService) {
				m.On("CreateProblem", mock.Anything, userID, sheetID, &validReqBody).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Fail - Invalid sheet ID in path",
			userID:         &userID,
			path:           "/api/sheets/not-a-uuid/problems",
			body:           validReqBody,
			setupMock:      func(m *mocks.MockProblemService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockProblemService, router := newProblemTestRouter(t)
			tc.setupMock(mockProblemService)

			req := createRequest(t, http.MethodPost, tc.path, tc.body, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var respProblem model.Problem
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respProblem))
				assert.Equal(t, expectedProblem.Title, respProblem.Title)
				assert.Equal(t, model.StatusNotStarted, respProblem.Status)
			}
		})
	}
}

func TestProblemHandler_GetProblems(t *testing.T) {
	userID := uuid.New()
	sheetID := uuid.New()

	t.Run("Success - Returns problems in order", func(t *testing.T) {
		mockProblemService, router := newProblemTestRouter(t)
		problems := []*model.Problem{
			{ProblemID: uuid.New(), SheetID: sheetID, Title: "First"},
			{ProblemID: uuid.New(), SheetID: sheetID, Title: "Second"},
		}
		mockProblemService.On("ListProblems", mock.Anything, userID, sheetID).Return(problems, nil).Once()

		req := createRequest(t, http.MethodGet, fmt.Sprintf("/api/sheets/%s/problems", sheetID), nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var respProblems []*model.Problem
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respProblems))
		require.Len(t, respProblems, 2)
		assert.Equal(t, "First", respProblems[0].Title)
		assert.Equal(t, "Second", respProblems[1].Title)
	})

	t.Run("Fail - Sheet not found", func(t *testing.T) {
		mockProblemService, router := newProblemTestRouter(t)
		mockProblemService.On("ListProblems", mock.Anything, userID, sheetID).
			Return(nil, model.ErrNotFound).Once()

		req := createRequest(t, http.MethodGet, fmt.Sprintf("/api/sheets/%s/problems", sheetID), nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestProblemHandler_PutProblem(t *testing.T) {
	userID := uuid.New()
	problemID := uuid.New()
	solvedStatus := string(model.StatusSolved)

	t.Run("Success - Status transition to Solved", func(t *testing.T) {
		mockProblemService, router := newProblemTestRouter(t)
		reqBody := model.PutProblemRequest{Status: &solvedStatus}
		now := time.Now()
		mockProblemService.On("UpdateProblem", mock.Anything, userID, problemID, &reqBody).
			Return(&model.Problem{ProblemID: problemID, Status: model.StatusSolved, SolvedAt: &now}, nil).Once()

		req := createRequest(t, http.MethodPut, fmt.Sprintf("/api/problems/%s", problemID), reqBody, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var respProblem model.Problem
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respProblem))
		assert.Equal(t, model.StatusSolved, respProblem.Status)
		assert.NotNil(t, respProblem.SolvedAt)
	})

	t.Run("Fail - Invalid status value", func(t *testing.T) {
		mockProblemService, router := newProblemTestRouter(t)
		badStatus := "Done"
		reqBody := model.PutProblemRequest{Status: &badStatus}
		mockProblemService.On("UpdateProblem", mock.Anything, userID, problemID, &reqBody).
			Return(nil, model.NewAppError("VALIDATION_ERROR", "ステータスの値が正しくありません。", "status", model.ErrInvalidInput)).Once()

		req := createRequest(t, http.MethodPut, fmt.Sprintf("/api/problems/%s", problemID), reqBody, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
		assert.Equal(t, "status", errResp.Error.Field)
	})

	t.Run("Fail - Problem not found", func(t *testing.T) {
		mockProblemService, router := newProblemTestRouter(t)
		title := "Renamed"
		reqBody := model.PutProblemRequest{Title: &title}
		mockProblemService.On("UpdateProblem", mock.Anything, userID, problemID, &reqBody).
			Return(nil, model.ErrNotFound).Once()

		req := createRequest(t, http.MethodPut, fmt.Sprintf("/api/problems/%s", problemID), reqBody, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestProblemHandler_DeleteProblem(t *testing.T) {
	userID := uuid.New()
	problemID := uuid.New()

	t.Run("Success - Returns 204", func(t *testing.T) {
		mockProblemService, router := newProblemTestRouter(t)
		mockProblemService.On("DeleteProblem", mock.Anything, userID, problemID).Return(nil).Once()

		req := createRequest(t, http.MethodDelete, fmt.Sprintf("/api/problems/%s", problemID), nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Fail - Not found", func(t *testing.T) {
		mockProblemService, router := newProblemTestRouter(t)
		mockProblemService.On("DeleteProblem", mock.Anything, userID, problemID).
			Return(model.ErrNotFound).Once()

		req := createRequest(t, http.MethodDelete, fmt.Sprintf("/api/problems/%s", problemID), nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
