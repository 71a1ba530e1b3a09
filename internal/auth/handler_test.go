package auth

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/go-cmp/cmp"
)

func TestRefreshIssuesNewToken(t *testing.T) {
	j := NewJWT("secret", time.Minute)
	h := &Handler{JWT: j}
	u := &User{Sub: "u-1", Email: "alice@example.com", Name: "Alice", Groups: []string{"default"}}
	tok, err := j.Generate(u)
	if err != nil {
		t.Fatal(err)
	}

	// The route sits ahead of the auth middleware, so the handler must
	// work from the Authorization header alone.
	out, err := h.refresh(context.Background(), &refreshInput{Authorization: "Bearer " + tok})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	claims, err := j.Validate(out.Body.AccessToken)
	if err != nil {
		t.Fatalf("refreshed token invalid: %v", err)
	}
	want := Identity{Sub: "u-1", Email: "alice@example.com", Name: "Alice", Groups: []string{"default"}}
	if diff := cmp.Diff(want, claims.Identity()); diff != "" {
		t.Errorf("identity (-want +got):\n%s", diff)
	}
}

func TestRefreshRejectsBadTokens(t *testing.T) {
	h := &Handler{JWT: NewJWT("secret", time.Minute)}
	foreign, err := NewJWT("other", time.Minute).Generate(&User{Sub: "u-1"})
	if err != nil {
		t.Fatal(err)
	}
	for name, hdr := range map[string]string{
		"missing header": "",
		"no bearer":      "Basic abc",
		"wrong secret":   "Bearer " + foreign,
	} {
		_, err := h.refresh(context.Background(), &refreshInput{Authorization: hdr})
		se, ok := err.(huma.StatusError)
		if !ok || se.GetStatus() != 401 {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}
