// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package validation

import (
	"testing"
)

type testPayload struct {
	Email  string `validate:"required,email"`
	Role   string `validate:"omitempty,role"`
	Amount int    `validate:"omitempty,min=1,max=100"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		payload   testPayload
		wantValid bool
		wantField string
	}{
		{"valid", testPayload{Email: "a@example.com", Role: "premium_user", Amount: 10}, true, ""},
		{"valid without optionals", testPayload{Email: "a@example.com"}, true, ""},
		{"missing email", testPayload{Role: "user"}, false, "Email"},
		{"bad email", testPayload{Email: "not-an-email"}, false, "Email"},
		{"unknown role", testPayload{Email: "a@example.com", Role: "owner"}, false, "Role"},
		{"amount too large", testPayload{Email: "a@example.com", Amount: 500}, false, "Amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.payload)
			if tt.wantValid {
				if err != nil {
					t.Fatalf("ValidateStruct() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := err.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("failed field = %q, want %q", got, tt.wantField)
			}
			if apiErr := err.ToAPIError(); apiErr.Code != "VALIDATION_ERROR" {
				t.Errorf("ToAPIError().Code = %q, want VALIDATION_ERROR", apiErr.Code)
			}
		})
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	err := ValidateStruct(&testPayload{Role: "owner", Amount: 500})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(err.Errors()) != 3 {
		t.Fatalf("error count = %d, want 3", len(err.Errors()))
	}
	apiErr := err.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("multi-error details missing fields list")
	}
}
