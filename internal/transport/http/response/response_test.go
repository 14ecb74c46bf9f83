package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/varis/taskboard/internal/domain"
)

func writeErr(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorBody) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	WriteError(rec, req, err)

	var body ErrorBody
	if derr := json.Unmarshal(rec.Body.Bytes(), &body); derr != nil {
		t.Fatalf("decode: %v", derr)
	}
	return rec, body
}

func TestWriteError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrMissingField("title"), http.StatusUnprocessableEntity},
		{domain.ErrEmailAlreadyExists(), http.StatusUnprocessableEntity},
		{domain.ErrInvalidCredentials(), http.StatusBadRequest},
		{domain.ErrOldPasswordMismatch(), http.StatusBadRequest},
		{domain.ErrTokenMissing(), http.StatusUnauthorized},
		{domain.ErrTokenExpired(), http.StatusUnauthorized},
		{domain.ErrAdminsReadOnly("create"), http.StatusForbidden},
		{domain.ErrNotTaskOwner("delete"), http.StatusForbidden},
		{domain.ErrTaskNotFound(), http.StatusNotFound},
		{domain.ErrDBUnavailable(errors.New("down")), http.StatusInternalServerError},
		{domain.ErrInternal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec, body := writeErr(t, tc.err)
		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		if body.Success {
			t.Fatalf("%v: success must be false", tc.err)
		}
		if body.Message == "" {
			t.Fatalf("%v: message must not be empty", tc.err)
		}
	}
}

func TestWriteError_NonDomainError_Is500WithoutLeak(t *testing.T) {
	t.Parallel()

	rec, body := writeErr(t, errors.New("pq: secret dsn exploded"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(body.Message, "dsn") {
		t.Fatalf("internal detail leaked: %q", body.Message)
	}
}

func TestOK_WritesEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	OK(rec, struct {
		Meta
		Value string `json:"value"`
	}{Meta: OKMeta("done"), Value: "x"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["success"] != true || got["message"] != "done" || got["value"] != "x" {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestDecodeJSON_RejectsTrailingData(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}{"b":2}`))
	var dst map[string]any
	err := DecodeJSON(req, &dst)
	if !domain.Is(err, "invalid_json") {
		t.Fatalf("expected invalid_json, got %v", err)
	}
}

func TestDecodeJSON_OK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
	var dst map[string]any
	if err := DecodeJSON(req, &dst); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
