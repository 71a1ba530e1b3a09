package middleware

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"

	"github.com/faciam-dev/gcms/internal/tenant"
)

// ExtractTable obtains the application table ID from the X-Table-ID header
// or the JWT claim "tid". A missing table ID results in 400.
func ExtractTable(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		r, w := humachi.Unwrap(ctx)
		tid := r.Header.Get("X-Table-ID")
		if tid == "" {
			if claims, ok := r.Context().Value(ClaimsKey()).(interface{ GetTenantID() string }); ok {
				tid = claims.GetTenantID()
			}
		}
		if tid == "" {
			huma.WriteErr(api, ctx, 400, "missing application table: set X-Table-ID header or tid claim")
			return
		}
		r = r.WithContext(tenant.WithTable(r.Context(), tid))
		next(humachi.NewContext(ctx.Operation(), r, w))
	}
}
