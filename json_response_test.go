package formrules_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	t.Run("data", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		err := formrules.WriteJSON(w, http.StatusCreated, formrules.JSONResponse{
			Data: map[string]string{"id": "1"},
			Meta: map[string]any{"version": "v1"},
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":{"id":"1"},"meta":{"version":"v1"}}`, w.Body.String())
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()
		fe := formrules.NewFieldErrors(validator.ValidationErrors{
			{Field: "email", Message: "必須項目です."},
		})
		w := httptest.NewRecorder()
		require.NoError(t, formrules.WriteJSON(w, http.StatusUnprocessableEntity,
			formrules.ValidationErrorResponse("入力に誤りがあります.", fe)))

		var body formrules.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, formrules.CodeValidationError, body.Error.Code)
		assert.Equal(t, "入力に誤りがあります.", body.Error.Message)
		assert.Equal(t, map[string][]string{"email": {"必須項目です."}}, body.Error.Details)
		assert.Nil(t, body.Data)
	})

	t.Run("empty details are omitted", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, formrules.WriteJSON(w, http.StatusUnprocessableEntity,
			formrules.ValidationErrorResponse("x", nil)))
		assert.JSONEq(t, `{"error":{"code":"validation_error","message":"x"}}`, w.Body.String())
	})
}
