package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

func TestLimitMiddleware(t *testing.T) {
	h := NewIPRateLimiter(0.001, 2).LimitMiddleware(ok)
	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/tools/buoyancy/defaults", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}
	// Same host on different ports shares a bucket.
	if do("10.0.0.1:1000") != http.StatusOK || do("10.0.0.1:1001") != http.StatusOK {
		t.Fatalf("burst requests should pass")
	}
	if code := do("10.0.0.1:1002"); code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", code)
	}
	if code := do("10.0.0.2:1000"); code != http.StatusOK {
		t.Fatalf("other client status = %d", code)
	}
}

func TestGate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h := Gate{Hash: string(hash)}.Middleware(ok)

	cases := []struct {
		name string
		pass string
		set  bool
		want int
	}{
		{"no credentials", "", false, http.StatusUnauthorized},
		{"wrong password", "nope", true, http.StatusUnauthorized},
		{"right password", "letmein", true, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.set {
				req.SetBasicAuth("anyone", tc.pass)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestGateDisabled(t *testing.T) {
	rr := httptest.NewRecorder()
	Gate{}.Middleware(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")) != nil {
		t.Fatalf("hash does not match")
	}
}
