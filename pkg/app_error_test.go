package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("disk")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: disk" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected http body: %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Missing", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: Missing" || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %v", simple)
	}
}
