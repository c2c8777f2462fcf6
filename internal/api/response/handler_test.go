package response

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/internal/api/apierror"
	"nutritrack/internal/logging"
)

type echoPayload struct {
	FoodID   string  `json:"food_id"`
	Servings float64 `json:"servings"`
}

func testHandler() *Handler {
	return NewHandler(logging.NewNop())
}

func result(status int, body string) Result {
	return Result{
		Method: http.MethodGet,
		URL:    "https://dev-api.nutritrack.app/api/v1/food/logs",
		Status: status,
		Body:   []byte(body),
	}
}

func TestValidate_StatusTaxonomy(t *testing.T) {
	h := testHandler()

	t.Run("2xx passes", func(t *testing.T) {
		for _, s := range []int{200, 201, 204, 299} {
			assert.NoError(t, h.Validate(result(s, "")), "status %d", s)
		}
	})

	t.Run("401 unauthorized", func(t *testing.T) {
		assert.True(t, apierror.IsUnauthorized(h.Validate(result(401, ""))))
	})

	t.Run("403 forbidden", func(t *testing.T) {
		assert.True(t, apierror.IsForbidden(h.Validate(result(403, ""))))
	})

	t.Run("404 not found", func(t *testing.T) {
		assert.True(t, apierror.IsNotFound(h.Validate(result(404, ""))))
	})

	t.Run("other 4xx is a validation error naming the status", func(t *testing.T) {
		for _, s := range []int{400, 409, 422, 499} {
			err := h.Validate(result(s, ""))
			require.True(t, apierror.IsValidation(err), "status %d", s)

			var ve apierror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Message, strconv.Itoa(s))
		}
	})

	t.Run("5xx carries the exact status code", func(t *testing.T) {
		for _, s := range []int{500, 502, 503, 599} {
			err := h.Validate(result(s, ""))
			var se apierror.ServerError
			require.ErrorAs(t, err, &se, "status %d", s)
			assert.Equal(t, s, se.StatusCode)
		}
	})

	t.Run("1xx and 3xx are unknown", func(t *testing.T) {
		for _, s := range []int{100, 302} {
			assert.True(t, apierror.IsUnknown(h.Validate(result(s, ""))), "status %d", s)
		}
	})
}

func TestHandle_ShortCircuitOrder(t *testing.T) {
	h := testHandler()

	t.Run("transport error wins over everything", func(t *testing.T) {
		in := result(500, `{"x":1}`)
		in.Err = errors.New("connection refused")

		_, err := Decode[echoPayload](h, in)
		require.True(t, apierror.IsNetwork(err))
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("no response metadata at all", func(t *testing.T) {
		_, err := Decode[echoPayload](h, Result{Method: http.MethodGet})
		assert.True(t, apierror.IsInvalidResponse(err))
	})

	t.Run("status failure skips decoding, whatever the body", func(t *testing.T) {
		// A well-formed envelope in a 401 body must not change the outcome.
		_, err := DecodeWrapped[echoPayload](h, result(401, `{"success":true,"data":{"food_id":"f"}}`))
		assert.True(t, apierror.IsUnauthorized(err))
	})
}

func TestDecode(t *testing.T) {
	h := testHandler()

	t.Run("decodes snake_case body", func(t *testing.T) {
		out, err := Decode[echoPayload](h, result(200, `{"food_id":"f-1","servings":1.5}`))
		require.NoError(t, err)
		assert.Equal(t, echoPayload{FoodID: "f-1", Servings: 1.5}, out)
	})

	t.Run("empty body on 200 is invalid response, not a decode error", func(t *testing.T) {
		_, err := Decode[echoPayload](h, result(200, ""))
		assert.True(t, apierror.IsInvalidResponse(err))
		assert.False(t, apierror.IsDecoding(err))
	})

	t.Run("malformed body is a decoding error", func(t *testing.T) {
		_, err := Decode[echoPayload](h, result(200, `{"food_id":`))
		assert.True(t, apierror.IsDecoding(err))
	})
}

func TestDecodeWrapped(t *testing.T) {
	h := testHandler()

	t.Run("unwraps data on success", func(t *testing.T) {
		out, err := DecodeWrapped[echoPayload](h,
			result(200, `{"success":true,"data":{"food_id":"f-2","servings":2}}`))
		require.NoError(t, err)
		assert.Equal(t, echoPayload{FoodID: "f-2", Servings: 2}, out)
	})

	t.Run("failure uses error field first", func(t *testing.T) {
		_, err := DecodeWrapped[echoPayload](h,
			result(200, `{"success":false,"error":"bad","message":"bad2"}`))
		var ve apierror.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "bad", ve.Message)
	})

	t.Run("failure falls back to message field", func(t *testing.T) {
		_, err := DecodeWrapped[echoPayload](h,
			result(200, `{"success":false,"message":"bad2"}`))
		var ve apierror.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "bad2", ve.Message)
	})

	t.Run("success without data is invalid response", func(t *testing.T) {
		_, err := DecodeWrapped[echoPayload](h, result(200, `{"success":true}`))
		assert.True(t, apierror.IsInvalidResponse(err))
	})
}
