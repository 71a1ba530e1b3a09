package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	apischema "github.com/faciam-dev/gcms/internal/api/schema"
	"github.com/faciam-dev/gcms/internal/events"
	"github.com/faciam-dev/gcms/internal/metrics"
	"github.com/faciam-dev/gcms/internal/tenant"
	"github.com/faciam-dev/gcms/pkg/schema"
)

// SectionTypeHandler exposes the registered section catalog.
type SectionTypeHandler struct {
	Schemas *schema.Store
}

type listSectionTypesOutput struct {
	Body []apischema.SectionTypeInfo
}

type getSectionTypeInput struct {
	Type string `path:"type"`
}

type getSectionTypeOutput struct {
	Body schema.SectionSchema
}

type validateSectionInput struct {
	Type string `path:"type"`
	Body map[string]any
}

type validateSectionOutput struct {
	Body schema.Result
}

// RegisterSectionTypes registers the section-type endpoints.
func RegisterSectionTypes(api huma.API, h *SectionTypeHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "listSectionTypes",
		Method:      http.MethodGet,
		Path:        "/v1/section-types",
		Summary:     "List registered section types",
		Tags:        []string{"SectionType"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "getSectionType",
		Method:      http.MethodGet,
		Path:        "/v1/section-types/{type}",
		Summary:     "Get a section schema",
		Tags:        []string{"SectionType"},
		Errors:      []int{http.StatusNotFound},
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "validateSection",
		Method:      http.MethodPost,
		Path:        "/v1/section-types/{type}/validate",
		Summary:     "Validate section data against its schema",
		Tags:        []string{"SectionType"},
		Errors:      []int{http.StatusNotFound},
	}, h.validate)
}

func (h *SectionTypeHandler) list(ctx context.Context, _ *struct{}) (*listSectionTypesOutput, error) {
	reg := h.Schemas.Get()
	out := &listSectionTypesOutput{}
	for _, key := range reg.Types() {
		s, _ := reg.Get(key)
		out.Body = append(out.Body, apischema.SectionTypeInfo{
			Key:         key,
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return out, nil
}

func (h *SectionTypeHandler) get(ctx context.Context, in *getSectionTypeInput) (*getSectionTypeOutput, error) {
	s, ok := h.Schemas.Get().Get(in.Type)
	if !ok {
		return nil, huma.Error404NotFound(fmt.Sprintf("unknown section type %q", in.Type))
	}
	return &getSectionTypeOutput{Body: s}, nil
}

// validate runs the section validator without touching any page. The result
// is always 200; validity is reported in the body.
func (h *SectionTypeHandler) validate(ctx context.Context, in *validateSectionInput) (*validateSectionOutput, error) {
	reg := h.Schemas.Get()
	if _, ok := reg.Get(in.Type); !ok {
		return nil, huma.Error404NotFound(fmt.Sprintf("unknown section type %q", in.Type))
	}
	res := schema.ValidateSection(reg, in.Type, in.Body)
	if !res.Valid {
		metrics.ValidationErrors.WithLabelValues(in.Type).Inc()
	}
	events.Emit(ctx, events.New(events.SectionValidated, events.ValidationEvent{
		Table: tenant.FromContext(ctx), Type: in.Type, Valid: res.Valid, Errors: res.Errors,
	}))
	return &validateSectionOutput{Body: res}, nil
}
