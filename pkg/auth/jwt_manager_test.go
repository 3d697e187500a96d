package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestGenerateVerify(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := m.Generate(userID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	ident, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ident.UserID != userID {
		t.Fatalf("UserID = %s, want %s", ident.UserID, userID)
	}

	left := time.Until(ident.ExpiresAt)
	if left < 55*time.Minute || left > time.Hour {
		t.Fatalf("ExpiresAt %v from now, want ~1h", left)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).Generate(uuid.New())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewJWTManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.Generate(uuid.New())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

// subject обязан быть UUID: всё, что дальше по коду, полагается на
// типизированный user id
func TestVerifyRejectsNonUUIDSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewJWTManager("test-secret", time.Hour).Verify(token); err == nil {
		t.Fatal("token with non-UUID subject accepted")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"lowercase scheme", "bearer abc", "abc", true},
		{"missing header", "", "", false},
		{"wrong scheme", "Basic abc", "", false},
		{"no token", "Bearer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := ExtractTokenFromHeader(r)
			if tt.ok != (err == nil) {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("token = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlacklistKey(t *testing.T) {
	if got := BlacklistKey("abc"); got != "blacklist:abc" {
		t.Fatalf("BlacklistKey = %q", got)
	}
}
