package apierr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdmorgan/noughts/internal/api/apierr"
	"github.com/jdmorgan/noughts/internal/model"
)

func writeAndDecode(t *testing.T, err error) (int, apierr.ErrorResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	apierr.WriteError(rec, err)

	var body apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"match not found", model.ErrMatchNotFound, http.StatusNotFound, apierr.CodeMatchNotFound},
		{"unknown player", model.ErrUnknownPlayer, http.StatusNotFound, apierr.CodeUnknownPlayer},
		{"invalid move", model.ErrInvalidMove, http.StatusBadRequest, apierr.CodeInvalidMove},
		{"cell occupied", model.ErrCellOccupied, http.StatusConflict, apierr.CodeCellOccupied},
		{"not your turn", model.ErrNotYourTurn, http.StatusForbidden, apierr.CodeNotYourTurn},
		{"match finished", model.ErrMatchFinished, http.StatusConflict, apierr.CodeMatchFinished},
		{"unrecognized error", errors.New("boom"), http.StatusInternalServerError, apierr.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := writeAndDecode(t, tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestWriteErrorWrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), model.ErrCellOccupied)
	status, body := writeAndDecode(t, wrapped)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, apierr.CodeCellOccupied, body.Error.Code)
}

func TestInvalidRequestError(t *testing.T) {
	status, body := writeAndDecode(t, apierr.NewInvalidRequestError("player_id is required"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apierr.CodeInvalidRequest, body.Error.Code)
	assert.Equal(t, "player_id is required", body.Error.Message)
}
