package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseIDFromPath(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expectID int64
		wantErr  bool
	}{
		{
			name:     "Plain integer parses",
			value:    "42",
			expectID: 42,
			wantErr:  false,
		},
		{
			name:    "Empty gives error",
			value:   "",
			wantErr: true,
		},
		{
			name:    "Non-numeric does not parse",
			value:   "abc",
			wantErr: true,
		},
		{
			name:    "Float does not parse",
			value:   "4.2",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.SetPathValue("expense_id", tt.value)
			id, err := parseIDFromPath("expense_id", req)
			if id != tt.expectID {
				t.Errorf("parseIDFromPath() id = %v, want %v", id, tt.expectID)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("parseIDFromPath() err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNullConversions(t *testing.T) {
	if got := nullStringFrom(nil); got.Valid {
		t.Error("nullStringFrom(nil) should be invalid")
	}
	s := "lunch"
	if got := nullStringFrom(&s); !got.Valid || got.String != s {
		t.Errorf("nullStringFrom(%q) = %+v", s, got)
	}

	if got := nullFloatFrom(nil); got.Valid {
		t.Error("nullFloatFrom(nil) should be invalid")
	}
	f := -3.5
	if got := nullFloatFrom(&f); !got.Valid || got.Float64 != f {
		t.Errorf("nullFloatFrom(%v) = %+v", f, got)
	}
}
