package jwt

import (
	"github.com/golang-jwt/jwt/v5"
	"testing"
	"time"
)

func TestNewRejectsEmptyKey(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("New(\"\") should fail")
	}
}

func TestSignAndParseSession(t *testing.T) {
	j, err := New("secret")
	if err != nil {
		t.Fatal(err)
	}

	want := &Session{
		ID:      "0b7f3c1e-5d7a-4a3e-9a0f-3f1f5b1c9d2e",
		UserID:  42,
		Expires: time.Now().Add(time.Hour).Unix(),
	}
	token, err := j.SignSession(want)
	if err != nil {
		t.Fatal(err)
	}

	got, err := j.ParseSession(token)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Errorf("ParseSession = %+v, want %+v", got, want)
	}
}

var parseFailureTests = []struct {
	name  string
	token func(t *testing.T) string
}{
	{"empty", func(t *testing.T) string { return "" }},
	{"garbage", func(t *testing.T) string { return "not.a.token" }},
	{"expired", func(t *testing.T) string {
		return sign(t, "secret", jwt.SigningMethodHS256, jwt.MapClaims{
			"sid": "a", "uid": 1, "exp": time.Now().Add(-time.Minute).Unix(),
		})
	}},
	{"other key", func(t *testing.T) string {
		return sign(t, "another", jwt.SigningMethodHS256, jwt.MapClaims{
			"sid": "a", "uid": 1, "exp": time.Now().Add(time.Minute).Unix(),
		})
	}},
	{"other method", func(t *testing.T) string {
		return sign(t, "secret", jwt.SigningMethodHS512, jwt.MapClaims{
			"sid": "a", "uid": 1, "exp": time.Now().Add(time.Minute).Unix(),
		})
	}},
	{"missing session id", func(t *testing.T) string {
		return sign(t, "secret", jwt.SigningMethodHS256, jwt.MapClaims{
			"uid": 1, "exp": time.Now().Add(time.Minute).Unix(),
		})
	}},
	{"missing user id", func(t *testing.T) string {
		return sign(t, "secret", jwt.SigningMethodHS256, jwt.MapClaims{
			"sid": "a", "exp": time.Now().Add(time.Minute).Unix(),
		})
	}},
}

func TestParseSessionFailures(t *testing.T) {
	j, _ := New("secret")
	for _, test := range parseFailureTests {
		if s, err := j.ParseSession(test.token(t)); err == nil {
			t.Errorf("%s: ParseSession = %+v, want error", test.name, s)
		}
	}
}

func sign(t *testing.T, key string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatal(err)
	}
	return token
}
