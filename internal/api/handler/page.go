package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/faciam-dev/gcms/internal/api/schema"
	"github.com/faciam-dev/gcms/internal/auth"
	"github.com/faciam-dev/gcms/internal/events"
	"github.com/faciam-dev/gcms/internal/metrics"
	"github.com/faciam-dev/gcms/internal/tenant"
	"github.com/faciam-dev/gcms/pkg/content"
	"github.com/faciam-dev/gcms/pkg/pagestore"
	schemapkg "github.com/faciam-dev/gcms/pkg/schema"
)

// PageHandler serves page CRUD and section lifecycle operations.
type PageHandler struct {
	Store   pagestore.Store
	Schemas *schemapkg.Store
}

type listPagesOutput struct {
	Body []content.Page
}

type getPageInput struct {
	Page string `path:"page"`
}

type getPageOutput struct {
	Body content.Page
}

type savePageInput struct {
	Body schema.PagePayload
}

type updatePageInput struct {
	Page string `path:"page"`
	Body schema.PagePayload
}

type savePageOutput struct {
	Body content.Page
}

type deletePageInput struct {
	Page string `path:"page"`
}

type addSectionInput struct {
	Page string `path:"page"`
	Body schema.AddSectionPayload
}

type removeSectionInput struct {
	Page  string `path:"page"`
	Index int    `path:"index"`
}

type sectionFormInput struct {
	Page  string `path:"page"`
	Index int    `path:"index"`
}

type sectionFormOutput struct {
	Body struct {
		Type         string              `json:"type"`
		Title        string              `json:"title"`
		Unrecognized bool                `json:"unrecognized,omitempty"`
		Fields       []content.FormField `json:"fields,omitempty"`
	}
}

// RegisterPages registers the page endpoints.
func RegisterPages(api huma.API, h *PageHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "listPages",
		Method:      http.MethodGet,
		Path:        "/v1/pages",
		Summary:     "List pages",
		Tags:        []string{"Page"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID:   "createPage",
		Method:        http.MethodPost,
		Path:          "/v1/pages",
		Summary:       "Create page",
		Tags:          []string{"Page"},
		Errors:        []int{http.StatusConflict, http.StatusUnprocessableEntity},
		DefaultStatus: http.StatusCreated,
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "getPage",
		Method:      http.MethodGet,
		Path:        "/v1/pages/{page}",
		Summary:     "Get page",
		Tags:        []string{"Page"},
		Errors:      []int{http.StatusNotFound},
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "updatePage",
		Method:      http.MethodPut,
		Path:        "/v1/pages/{page}",
		Summary:     "Overwrite page",
		Tags:        []string{"Page"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID:   "deletePage",
		Method:        http.MethodDelete,
		Path:          "/v1/pages/{page}",
		Summary:       "Delete page",
		Tags:          []string{"Page"},
		Errors:        []int{http.StatusNotFound},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
	huma.Register(api, huma.Operation{
		OperationID:   "addSection",
		Method:        http.MethodPost,
		Path:          "/v1/pages/{page}/sections",
		Summary:       "Append a section",
		Tags:          []string{"Page"},
		Errors:        []int{http.StatusNotFound, http.StatusUnprocessableEntity},
		DefaultStatus: http.StatusCreated,
	}, h.addSection)
	huma.Register(api, huma.Operation{
		OperationID:   "removeSection",
		Method:        http.MethodDelete,
		Path:          "/v1/pages/{page}/sections/{index}",
		Summary:       "Remove a section",
		Tags:          []string{"Page"},
		Errors:        []int{http.StatusNotFound, http.StatusUnprocessableEntity},
		DefaultStatus: http.StatusNoContent,
	}, h.removeSection)
	huma.Register(api, huma.Operation{
		OperationID: "sectionForm",
		Method:      http.MethodGet,
		Path:        "/v1/pages/{page}/sections/{index}/form",
		Summary:     "Render the edit form model for a section",
		Tags:        []string{"Page"},
		Errors:      []int{http.StatusNotFound},
	}, h.sectionForm)
}

// requireEdit rejects callers whose identity may not edit the current table.
func requireEdit(ctx context.Context) (string, error) {
	tid := tenant.FromContext(ctx)
	id := auth.IdentityFromContext(ctx)
	if !auth.HasPermission(id, tid) {
		return "", huma.Error403Forbidden(fmt.Sprintf("no edit permission for %q", tid))
	}
	return tid, nil
}

func (h *PageHandler) lifecycle() *content.Lifecycle {
	return &content.Lifecycle{Registry: h.Schemas.Get()}
}

func (h *PageHandler) list(ctx context.Context, _ *struct{}) (*listPagesOutput, error) {
	tid := tenant.FromContext(ctx)
	pages, err := h.Store.List(ctx, tid)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("list").Inc()
		return nil, err
	}
	return &listPagesOutput{Body: pages}, nil
}

func (h *PageHandler) get(ctx context.Context, in *getPageInput) (*getPageOutput, error) {
	tid := tenant.FromContext(ctx)
	p, err := h.Store.Get(ctx, tid, in.Page)
	if err != nil {
		if errors.Is(err, pagestore.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("page %q not found", in.Page))
		}
		metrics.StoreErrors.WithLabelValues("get").Inc()
		return nil, err
	}
	return &getPageOutput{Body: p}, nil
}

// create makes a new page. A request without sections gets a single default
// hero section so the page is never empty.
func (h *PageHandler) create(ctx context.Context, in *savePageInput) (*savePageOutput, error) {
	tid, err := requireEdit(ctx)
	if err != nil {
		return nil, err
	}
	if in.Body.Page == "" {
		return nil, huma.NewError(http.StatusUnprocessableEntity, "page name is required",
			&huma.ErrorDetail{Location: "body.page", Message: "required"})
	}
	if _, err := h.Store.Get(ctx, tid, in.Body.Page); err == nil {
		return nil, huma.Error409Conflict(fmt.Sprintf("page %q already exists", in.Body.Page))
	} else if !errors.Is(err, pagestore.ErrNotFound) {
		return nil, err
	}
	title := in.Body.Title
	if title == "" {
		title = in.Body.Page
	}
	p := content.Page{Page: in.Body.Page, Title: title, Sections: in.Body.Sections, Theme: in.Body.Theme}
	lc := h.lifecycle()
	if len(p.Sections) == 0 {
		if err := lc.AddSection(&p, "hero", title); err != nil {
			return nil, err
		}
		p.Sections[0]["text"] = "New page description"
	}
	return h.save(ctx, lc, tid, p)
}

// update overwrites the whole page record. Validation failures block the
// save and enumerate every violation.
func (h *PageHandler) update(ctx context.Context, in *updatePageInput) (*savePageOutput, error) {
	tid, err := requireEdit(ctx)
	if err != nil {
		return nil, err
	}
	if in.Body.Page != "" && in.Body.Page != in.Page {
		return nil, huma.NewError(http.StatusUnprocessableEntity, "page id is immutable",
			&huma.ErrorDetail{Location: "body.page", Message: "must match path"})
	}
	title := in.Body.Title
	if title == "" {
		title = in.Page
	}
	p := content.Page{Page: in.Page, Title: title, Sections: in.Body.Sections, Theme: in.Body.Theme}
	return h.save(ctx, h.lifecycle(), tid, p)
}

func (h *PageHandler) save(ctx context.Context, lc *content.Lifecycle, tid string, p content.Page) (*savePageOutput, error) {
	if res := h.validateKnown(lc, &p); !res.Valid {
		return nil, validationError(res)
	}
	start := time.Now()
	if err := lc.Save(ctx, h.Store, tid, &p); err != nil {
		metrics.StoreErrors.WithLabelValues("save").Inc()
		return nil, err
	}
	metrics.SaveLatency.Observe(time.Since(start).Seconds())
	events.Emit(ctx, events.New(events.PageSaved, events.PageEvent{
		Table: tid, Page: p.Page, Actor: auth.UserFromContext(ctx),
	}))
	return &savePageOutput{Body: p}, nil
}

// validateKnown validates sections whose type is still registered, counting
// failures per section type. Sections of unknown type are kept as-is rather
// than rejected, so a page carrying one can still be saved.
func (h *PageHandler) validateKnown(lc *content.Lifecycle, p *content.Page) schemapkg.Result {
	res := lc.ValidateKnown(p)
	if !res.Valid {
		for _, sec := range p.Sections {
			typ := sec.Type()
			if _, ok := lc.Registry.Get(typ); !ok {
				continue
			}
			if sr := schemapkg.ValidateSection(lc.Registry, typ, sec); !sr.Valid {
				metrics.ValidationErrors.WithLabelValues(typ).Inc()
			}
		}
	}
	return res
}

func validationError(res schemapkg.Result) error {
	details := make([]error, 0, len(res.Errors))
	for _, msg := range res.Errors {
		details = append(details, &huma.ErrorDetail{Location: "body.sections", Message: msg})
	}
	return huma.Error422UnprocessableEntity("page validation failed", details...)
}

func (h *PageHandler) delete(ctx context.Context, in *deletePageInput) (*struct{}, error) {
	tid, err := requireEdit(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.Store.Delete(ctx, tid, in.Page); err != nil {
		if errors.Is(err, pagestore.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("page %q not found", in.Page))
		}
		metrics.StoreErrors.WithLabelValues("delete").Inc()
		return nil, err
	}
	events.Emit(ctx, events.New(events.PageDeleted, events.PageEvent{
		Table: tid, Page: in.Page, Actor: auth.UserFromContext(ctx),
	}))
	return nil, nil
}

func (h *PageHandler) addSection(ctx context.Context, in *addSectionInput) (*savePageOutput, error) {
	tid, err := requireEdit(ctx)
	if err != nil {
		return nil, err
	}
	p, err := h.Store.Get(ctx, tid, in.Page)
	if err != nil {
		if errors.Is(err, pagestore.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("page %q not found", in.Page))
		}
		return nil, err
	}
	lc := h.lifecycle()
	if err := lc.AddSection(&p, in.Body.Type, in.Body.Title); err != nil {
		return nil, huma.NewError(http.StatusUnprocessableEntity, err.Error(),
			&huma.ErrorDetail{Location: "body.type", Message: err.Error()})
	}
	return h.save(ctx, lc, tid, p)
}

func (h *PageHandler) removeSection(ctx context.Context, in *removeSectionInput) (*struct{}, error) {
	tid, err := requireEdit(ctx)
	if err != nil {
		return nil, err
	}
	p, err := h.Store.Get(ctx, tid, in.Page)
	if err != nil {
		if errors.Is(err, pagestore.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("page %q not found", in.Page))
		}
		return nil, err
	}
	lc := h.lifecycle()
	if err := lc.RemoveSection(&p, in.Index); err != nil {
		return nil, huma.NewError(http.StatusUnprocessableEntity, err.Error(),
			&huma.ErrorDetail{Location: "path.index", Message: err.Error()})
	}
	if _, err := h.save(ctx, lc, tid, p); err != nil {
		return nil, err
	}
	return nil, nil
}

// sectionForm renders the editable form model for one section. A section
// whose type is no longer registered comes back flagged unrecognized with no
// fields: it can be removed but not edited.
func (h *PageHandler) sectionForm(ctx context.Context, in *sectionFormInput) (*sectionFormOutput, error) {
	tid := tenant.FromContext(ctx)
	p, err := h.Store.Get(ctx, tid, in.Page)
	if err != nil {
		if errors.Is(err, pagestore.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("page %q not found", in.Page))
		}
		return nil, err
	}
	lc := h.lifecycle()
	ed, ok, err := lc.EditorFor(&p, in.Index)
	if err != nil {
		return nil, huma.Error404NotFound(err.Error())
	}
	out := &sectionFormOutput{}
	sec := p.Sections[in.Index]
	out.Body.Type = sec.Type()
	out.Body.Title = sec.Title()
	if !ok {
		out.Body.Unrecognized = true
		return out, nil
	}
	out.Body.Fields = ed.Form()
	return out, nil
}
