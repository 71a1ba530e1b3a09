package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	apischema "github.com/faciam-dev/gcms/internal/api/schema"
	"github.com/faciam-dev/gcms/internal/auth"
	sm "github.com/faciam-dev/gcms/internal/server/middleware"
	"github.com/faciam-dev/gcms/internal/tenant"
	"github.com/faciam-dev/gcms/pkg/content"
	"github.com/faciam-dev/gcms/pkg/pagestore"
	"github.com/faciam-dev/gcms/pkg/schema"
)

func newPageHandler(t *testing.T) *PageHandler {
	t.Helper()
	s := schema.NewStore("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	return &PageHandler{Store: pagestore.NewMemory(), Schemas: s}
}

// editorCtx builds a request context for a user allowed to edit the table.
func editorCtx(table string, groups ...string) context.Context {
	ctx := tenant.WithTable(context.Background(), table)
	claims := &auth.Claims{Email: "alice@example.com", Name: "Alice", Groups: groups}
	claims.Subject = "u-1"
	ctx = context.WithValue(ctx, sm.UserKey(), "u-1")
	return context.WithValue(ctx, sm.ClaimsKey(), claims)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	se, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	return se.GetStatus()
}

func TestCreatePageDefaultHero(t *testing.T) {
	h := newPageHandler(t)
	ctx := editorCtx("default", "default")

	out, err := h.create(ctx, &savePageInput{Body: apischema.PagePayload{Page: "home", Title: "Home"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p := out.Body
	if len(p.Sections) != 1 || p.Sections[0].Type() != "hero" {
		t.Fatalf("sections = %+v", p.Sections)
	}
	if p.Sections[0].Title() != "Home" {
		t.Errorf("hero title = %q", p.Sections[0].Title())
	}
	if p.Sections[0]["text"] != "New page description" {
		t.Errorf("hero text = %q", p.Sections[0]["text"])
	}

	if _, err := h.create(ctx, &savePageInput{Body: apischema.PagePayload{Page: "home"}}); statusOf(t, err) != 409 {
		t.Errorf("duplicate create status = %d", statusOf(t, err))
	}
	if _, err := h.create(ctx, &savePageInput{Body: apischema.PagePayload{}}); statusOf(t, err) != 422 {
		t.Errorf("missing id status = %d", statusOf(t, err))
	}
}

func TestCreatePageRequiresGroup(t *testing.T) {
	h := newPageHandler(t)
	ctx := editorCtx("default", auth.VisitorGroup)
	_, err := h.create(ctx, &savePageInput{Body: apischema.PagePayload{Page: "home"}})
	if statusOf(t, err) != 403 {
		t.Errorf("status = %d", statusOf(t, err))
	}
}

func TestUpdatePageOverwrites(t *testing.T) {
	h := newPageHandler(t)
	ctx := editorCtx("default", "default")
	if _, err := h.create(ctx, &savePageInput{Body: apischema.PagePayload{Page: "home", Title: "Home"}}); err != nil {
		t.Fatal(err)
	}

	out, err := h.update(ctx, &updatePageInput{Page: "home", Body: apischema.PagePayload{
		Title: "Rewritten",
		Sections: []content.Section{
			{"type": "content", "title": "About", "text": "hello", "image": ""},
		},
	}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Body.Title != "Rewritten" || len(out.Body.Sections) != 1 || out.Body.Sections[0].Type() != "content" {
		t.Errorf("page = %+v", out.Body)
	}

	_, err = h.update(ctx, &updatePageInput{Page: "home", Body: apischema.PagePayload{Page: "renamed"}})
	if statusOf(t, err) != 422 {
		t.Errorf("rename status = %d", statusOf(t, err))
	}
}

func TestUpdatePageValidationBlocksSave(t *testing.T) {
	h := newPageHandler(t)
	ctx := editorCtx("default", "default")
	if _, err := h.create(ctx, &savePageInput{Body: apischema.PagePayload{Page: "home", Title: "Home"}}); err != nil {
		t.Fatal(err)
	}
	_, err := h.update(ctx, &updatePageInput{Page: "home", Body: apischema.PagePayload{
		Sections: []content.Section{
			{"type": "contact", "title": "", "email": "nope"},
		},
	}})
	if statusOf(t, err) != 422 {
		t.Fatalf("status = %d", statusOf(t, err))
	}
	// The failed save must not have replaced the stored page.
	got, gerr := h.get(ctx, &getPageInput{Page: "home"})
	if gerr != nil {
		t.Fatal(gerr)
	}
	if got.Body.Sections[0].Type() != "hero" {
		t.Errorf("stored page changed: %+v", got.Body.Sections)
	}
}

func TestUpdatePageKeepsUnknownSections(t *testing.T) {
	h := newPageHandler(t)
	ctx := editorCtx("default", "default")
	if _, err := h.update(ctx, &updatePageInput{Page: "home", Body: apischema.PagePayload{
		Sections: []content.Section{
			{"type": "retired-type", "title": "Old", "blob": "x"},
		},
	}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := h.get(ctx, &getPageInput{Page: "home"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Body.Sections[0].Type() != "retired-type" {
		t.Errorf("unknown section lost: %+v", got.Body.Sections)
	}
}

func TestSectionLifecycleEndpoints(t *testing.T) {
	h := newPageHandler(t)
	ctx := editorCtx("default", "default")
	if _, err := h.create(ctx, &savePageInput{Body: apischema.PagePayload{Page: "home", Title: "Home"}}); err != nil {
		t.Fatal(err)
	}

	out, err := h.addSection(ctx, &addSectionInput{Page: "home", Body: apischema.AddSectionPayload{Type: "gallery", Title: "Photos"}})
	if err != nil {
		t.Fatalf("addSection: %v", err)
	}
	if len(out.Body.Sections) != 2 || out.Body.Sections[1].Type() != "gallery" {
		t.Fatalf("sections = %+v", out.Body.Sections)
	}

	if _, err := h.addSection(ctx, &addSectionInput{Page: "home", Body: apischema.AddSectionPayload{Type: "bogus"}}); statusOf(t, err) != 422 {
		t.Errorf("bogus type status = %d", statusOf(t, err))
	}
	if _, err := h.addSection(ctx, &addSectionInput{Page: "nope", Body: apischema.AddSectionPayload{Type: "hero"}}); statusOf(t, err) != 404 {
		t.Errorf("missing page status = %d", statusOf(t, err))
	}

	form, err := h.sectionForm(ctx, &sectionFormInput{Page: "home", Index: 1})
	if err != nil {
		t.Fatalf("sectionForm: %v", err)
	}
	if form.Body.Type != "gallery" || len(form.Body.Fields) == 0 {
		t.Errorf("form = %+v", form.Body)
	}

	if _, err := h.removeSection(ctx, &removeSectionInput{Page: "home", Index: 0}); err != nil {
		t.Fatalf("removeSection: %v", err)
	}
	got, err := h.get(ctx, &getPageInput{Page: "home"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Body.Sections) != 1 || got.Body.Sections[0].Type() != "gallery" {
		t.Errorf("sections = %+v", got.Body.Sections)
	}
	if _, err := h.removeSection(ctx, &removeSectionInput{Page: "home", Index: 5}); statusOf(t, err) != 422 {
		t.Errorf("out of range status = %d", statusOf(t, err))
	}
}

func TestSectionFormUnrecognizedType(t *testing.T) {
	h := newPageHandler(t)
	ctx := editorCtx("default", "default")
	if _, err := h.update(ctx, &updatePageInput{Page: "home", Body: apischema.PagePayload{
		Sections: []content.Section{{"type": "retired-type", "title": "Old"}},
	}}); err != nil {
		t.Fatal(err)
	}
	form, err := h.sectionForm(ctx, &sectionFormInput{Page: "home", Index: 0})
	if err != nil {
		t.Fatalf("sectionForm: %v", err)
	}
	if !form.Body.Unrecognized || len(form.Body.Fields) != 0 {
		t.Errorf("form = %+v", form.Body)
	}
}

func TestDeletePage(t *testing.T) {
	h := newPageHandler(t)
	ctx := editorCtx("default", "default")
	if _, err := h.create(ctx, &savePageInput{Body: apischema.PagePayload{Page: "home"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := h.delete(ctx, &deletePageInput{Page: "home"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := h.delete(ctx, &deletePageInput{Page: "home"}); statusOf(t, err) != 404 {
		t.Errorf("second delete status = %d", statusOf(t, err))
	}
}

func TestListPagesScopedToTable(t *testing.T) {
	h := newPageHandler(t)
	if _, err := h.create(editorCtx("site-a", "site-a"), &savePageInput{Body: apischema.PagePayload{Page: "home"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := h.create(editorCtx("site-b", "site-b"), &savePageInput{Body: apischema.PagePayload{Page: "landing"}}); err != nil {
		t.Fatal(err)
	}
	out, err := h.list(tenant.WithTable(context.Background(), "site-a"), nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Body) != 1 || out.Body[0].Page != "home" {
		t.Errorf("pages = %+v", out.Body)
	}
}
