package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/curio/pkg/validator"
)

type sampleStruct struct {
	ItemID  string `validate:"required,uuid"`
	Content string `validate:"required,min=1,max=10"`
	Email   string `validate:"omitempty,email"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		ItemID:  "550e8400-e29b-41d4-a716-446655440000",
		Content: "hello",
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ItemID"] != "This field is required" {
		t.Errorf("unexpected ItemID message: %q", m["ItemID"])
	}
	if m["Content"] != "This field is required" {
		t.Errorf("unexpected Content message: %q", m["Content"])
	}
}

func TestFormatValidationErrors_uuid(t *testing.T) {
	s := sampleStruct{ItemID: "not-a-uuid", Content: "ok"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ItemID"] != "Must be a valid UUID" {
		t.Errorf("unexpected ItemID message: %q", m["ItemID"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{ItemID: "550e8400-e29b-41d4-a716-446655440000", Content: "12345678901"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Content"] != "Maximum length is 10" {
		t.Errorf("unexpected Content message: %q", m["Content"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type commentReq struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"content":"nice!"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[commentReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Content != "nice!" {
		t.Errorf("unexpected Content: %q", req.Content)
	}
}

func TestValidateRequest_malformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[commentReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestValidateRequest_invalidBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":""}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[commentReq](w, r)
	if ok {
		t.Fatal("expected ok=false for failing validation")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}
