package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/skinshop-backend/pkg/errors"
)

type sampleBody struct {
	Email    string `json:"email" validate:"required,email"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co","quantity":2}`))
	var body sampleBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", body.Quantity)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co","extra":true}`))
	var body sampleBody
	err := DecodeJSONBody(req, &body)
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldErrors(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"nope","quantity":-1}`))
	var body sampleBody
	err := DecodeJSONBody(req, &body)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("unexpected details %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email detail %q", details["email"])
	}
	if details["quantity"] != "must be greater than or equal to 0" {
		t.Fatalf("unexpected quantity detail %q", details["quantity"])
	}
}

type namedBody struct {
	Name   string `json:"name" validate:"required,max=5"`
	Rarity string `json:"rarity" validate:"omitempty,oneof=common rare"`
}

func detailsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, _ := typed.Details().(map[string]string)
	return details
}

func TestDecodeJSONBodyMessages(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Galaxy Guardian","rarity":"shiny"}`))
	var body namedBody
	details := detailsOf(t, DecodeJSONBody(req, &body))
	if details["name"] != "must be at most 5 characters" {
		t.Fatalf("unexpected name detail %q", details["name"])
	}
	if details["rarity"] != "must be one of common, rare" {
		t.Fatalf("unexpected rarity detail %q", details["rarity"])
	}
}

func TestDecodeJSONBodyNamesUnknownAndMistypedFields(t *testing.T) {
	var body namedBody
	details := detailsOf(t, DecodeJSONBody(httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Zed","colour":"red"}`)), &body))
	if details["colour"] != "is not a known field" {
		t.Fatalf("unexpected details %v", details)
	}

	details = detailsOf(t, DecodeJSONBody(httptest.NewRequest("POST", "/", strings.NewReader(`{"name":42}`)), &body))
	if details["name"] != "must be of type string" {
		t.Fatalf("unexpected details %v", details)
	}
}

func TestDecodeJSONBodyRejectsMalformedBodies(t *testing.T) {
	cases := map[string]struct {
		body    string
		message string
	}{
		"empty":    {body: "", message: "request body is required"},
		"trailing": {body: `{"name":"a"} {"name":"b"}`, message: "request body must hold a single JSON object"},
		"syntax":   {body: `{"name":`, message: "malformed JSON"},
		"too large": {
			body:    `{"name":"` + strings.Repeat("x", MaxBodyBytes) + `"}`,
			message: "request body too large",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var body namedBody
			err := DecodeJSONBody(httptest.NewRequest("POST", "/", strings.NewReader(tc.body)), &body)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if typed.Message() != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, typed.Message())
			}
		})
	}
}

func TestParseQueryBool(t *testing.T) {
	req := httptest.NewRequest("GET", "/?unread=true&bad=maybe", nil)
	if v, err := ParseQueryBool(req, "unread", false); err != nil || !v {
		t.Fatalf("expected true, got %v %v", v, err)
	}
	if v, err := ParseQueryBool(req, "missing", true); err != nil || !v {
		t.Fatalf("expected default, got %v %v", v, err)
	}
	if _, err := ParseQueryBool(req, "bad", false); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryEnum(t *testing.T) {
	req := httptest.NewRequest("GET", "/?rarity=EPIC&sort=cheapest", nil)
	allowed := []string{"all", "epic"}
	if v, err := ParseQueryEnum(req, "rarity", "all", allowed); err != nil || v != "epic" {
		t.Fatalf("expected epic, got %q %v", v, err)
	}
	if v, err := ParseQueryEnum(req, "other", "all", allowed); err != nil || v != "all" {
		t.Fatalf("expected default, got %q %v", v, err)
	}
	if _, err := ParseQueryEnum(req, "sort", "", allowed); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=500&n=x", nil)
	if _, err := ParseQueryInt(req, "limit", 20, 1, 100); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected range error, got %v", err)
	}
	if _, err := ParseQueryInt(req, "n", 20, 1, 100); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected numeric error, got %v", err)
	}
	if v, err := ParseQueryInt(req, "missing", 20, 1, 100); err != nil || v != 20 {
		t.Fatalf("expected default, got %d %v", v, err)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  ", 0); got != "hello" {
		t.Fatalf("unexpected %q", got)
	}
	if got := SanitizeString("héllo", 2); got != "h" {
		t.Fatalf("expected cut before multi-byte rune, got %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestTruncateStringKeepsWhitespace(t *testing.T) {
	if got := TruncateString("  ", 100); got != "  " {
		t.Fatalf("expected whitespace to survive, got %q", got)
	}
	if got := TruncateString(" héllo", 3); got != " h" {
		t.Fatalf("expected cut before multi-byte rune, got %q", got)
	}
}
