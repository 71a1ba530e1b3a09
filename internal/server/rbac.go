package server

import (
	"context"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/faciam-dev/gcms/internal/auth"
)

// newEnforcer builds the in-memory policy set. Admins may do anything under
// /v1, editors may write pages, and everyone authenticated may read.
func newEnforcer() (*casbin.Enforcer, error) {
	m := model.NewModel()
	m.AddDef("r", "r", "sub, obj, act")
	m.AddDef("p", "p", "sub, obj, act")
	m.AddDef("g", "g", "_, _")
	m.AddDef("e", "e", "some(where (p.eft == allow))")
	m.AddDef("m", "m", "g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && r.act == p.act")
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	for _, act := range []string{"GET", "POST", "PUT", "DELETE"} {
		e.AddPolicy("admin", "/v1/*", act)
	}
	for _, act := range []string{"POST", "PUT", "DELETE"} {
		e.AddPolicy("editor", "/v1/pages", act)
		e.AddPolicy("editor", "/v1/pages/*", act)
	}
	e.AddPolicy(auth.VisitorGroup, "/v1/pages", "GET")
	e.AddPolicy(auth.VisitorGroup, "/v1/pages/*", "GET")
	e.AddPolicy(auth.VisitorGroup, "/v1/section-types", "GET")
	e.AddPolicy(auth.VisitorGroup, "/v1/section-types/*", "GET")
	e.AddPolicy(auth.VisitorGroup, "/v1/section-types/*/validate", "POST")
	return e, nil
}

// rolesOf resolves the caller's roles. Every authenticated user is at least
// a visitor; the rest come from the stored group list.
func rolesOf(ctx context.Context, repo *auth.UserRepo, user string) ([]string, error) {
	roles := []string{auth.VisitorGroup}
	if user == "" || repo == nil || repo.DB == nil {
		return roles, nil
	}
	u, err := repo.GetByUsername(ctx, user)
	if err != nil || u == nil {
		return roles, nil
	}
	return append(roles, u.Groups...), nil
}
