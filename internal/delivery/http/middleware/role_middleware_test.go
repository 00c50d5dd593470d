package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if role == "" {
		return req
	}
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func serveWithRole(t *testing.T, mw func(http.Handler) http.Handler, role string) (int, bool) {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, requestWithRole(role))
	return rec.Code, reached
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole("admin", "doctor")

	code, reached := serveWithRole(t, mw, "admin")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, reached)

	code, reached = serveWithRole(t, mw, "doctor")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, reached)

	code, reached = serveWithRole(t, mw, "receptionist")
	assert.Equal(t, http.StatusForbidden, code)
	assert.False(t, reached)
}

func TestRequireRoleWithoutContext(t *testing.T) {
	code, reached := serveWithRole(t, RequireRole("admin"), "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, reached)
}

func TestRoleConvenienceWrappers(t *testing.T) {
	cases := []struct {
		name    string
		mw      func(http.Handler) http.Handler
		role    string
		allowed bool
	}{
		{"admin can manage", RequireAdmin, "admin", true},
		{"doctor cannot manage", RequireAdmin, "doctor", false},
		{"receptionist at front desk", RequireReception, "receptionist", true},
		{"doctor not at front desk", RequireReception, "doctor", false},
		{"doctor examines", RequireDoctor, "doctor", true},
		{"receptionist does not examine", RequireDoctor, "receptionist", false},
		{"admin examines too", RequireDoctor, "admin", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, reached := serveWithRole(t, tc.mw, tc.role)
			if tc.allowed {
				assert.Equal(t, http.StatusOK, code)
				assert.True(t, reached)
			} else {
				assert.Equal(t, http.StatusForbidden, code)
				assert.False(t, reached)
			}
		})
	}
}
