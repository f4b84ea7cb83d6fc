package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-tailor/internal/auth"
	"resume-tailor/internal/model"
	"resume-tailor/internal/usecase"
)

const testSecret = "test-secret"

type fakeUserStore struct {
	created *model.User
	byName  map[string]*model.User
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) (*model.User, error) {
	u.ID = primitive.NewObjectID()
	f.created = u
	return u, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	return f.byName[username], nil
}

type fakeResumeAPI struct {
	prof   *model.ResumeStructured
	export *usecase.Export
	err    error
}

func (f *fakeResumeAPI) Current(_ context.Context, _ string) (*model.ResumeStructured, error) {
	return f.prof, f.err
}

func (f *fakeResumeAPI) ImportFromPath(_ context.Context, _, _ string) (*model.ResumeStructured, error) {
	return f.prof, f.err
}

func (f *fakeResumeAPI) ImportFromBytes(_ context.Context, _ string, _ []byte) (*model.ResumeStructured, error) {
	return f.prof, f.err
}

func (f *fakeResumeAPI) Tailor(_ context.Context, _, title, jobTitle, _ string) (*model.TailoredResume, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.TailoredResume{Title: title, JobTitle: jobTitle}, nil
}

func (f *fakeResumeAPI) StructureJob(_ context.Context, _ string) (*model.JobStructured, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.JobStructured{Title: "Backend Engineer"}, nil
}

func (f *fakeResumeAPI) ExportPDF(_ context.Context, _ string, _ usecase.ExportRequest) (*usecase.Export, error) {
	return f.export, f.err
}

func (f *fakeResumeAPI) ExportTeX(_ context.Context, _ string, _ usecase.ExportRequest) (*usecase.Export, error) {
	return f.export, f.err
}

type fakeTailoredStore struct{ docs []model.TailoredResume }

func (f *fakeTailoredStore) List(_ context.Context, _ string) ([]model.TailoredResume, error) {
	return f.docs, nil
}

func (f *fakeTailoredStore) Get(_ context.Context, _, _ string) (*model.TailoredResume, error) {
	if len(f.docs) == 0 {
		return nil, nil
	}
	return &f.docs[0], nil
}

func (f *fakeTailoredStore) Delete(_ context.Context, _, _ string) (bool, error) {
	return len(f.docs) > 0, nil
}

type fakeBuiltStore struct{}

func (fakeBuiltStore) Create(_ context.Context, doc *model.BuiltResume) (*model.BuiltResume, error) {
	doc.ID = primitive.NewObjectID()
	return doc, nil
}

func (fakeBuiltStore) Update(_ context.Context, _, _, _ string, _ model.ResumeStructured, _ string) (*model.BuiltResume, error) {
	return nil, nil
}
func (fakeBuiltStore) List(_ context.Context, _ string) ([]model.BuiltResume, error) { return nil, nil }
func (fakeBuiltStore) Get(_ context.Context, _, _ string) (*model.BuiltResume, error) {
	return nil, nil
}
func (fakeBuiltStore) Delete(_ context.Context, _, _ string) (bool, error) { return false, nil }

type fakeTemplateStore struct{ def *model.ResumeTemplateDoc }

func (f *fakeTemplateStore) Create(_ context.Context, doc *model.ResumeTemplateDoc) (*model.ResumeTemplateDoc, error) {
	doc.ID = primitive.NewObjectID()
	return doc, nil
}

func (f *fakeTemplateStore) Update(_ context.Context, _ string, _ model.ResumeTemplate) (*model.ResumeTemplateDoc, error) {
	return nil, nil
}

func (f *fakeTemplateStore) Get(_ context.Context, _ string) (*model.ResumeTemplateDoc, error) {
	return nil, nil
}

func (f *fakeTemplateStore) GetDefault(_ context.Context) (*model.ResumeTemplateDoc, error) {
	return f.def, nil
}

func (f *fakeTemplateStore) List(_ context.Context) ([]model.ResumeTemplateDoc, error) {
	return nil, nil
}

func (f *fakeTemplateStore) Duplicate(_ context.Context, _, _ string) (*model.ResumeTemplateDoc, error) {
	return nil, nil
}

func (f *fakeTemplateStore) Delete(_ context.Context, _ string) (bool, error) { return false, nil }

type fakeArtifactStore struct{ docs []model.Artifact }

func (f *fakeArtifactStore) List(_ context.Context, _ string) ([]model.Artifact, error) {
	return f.docs, nil
}

type fakeCoverLetterAPI struct{}

func (fakeCoverLetterAPI) Tailor(_ context.Context, _, title, jobTitle, _, _ string) (*model.TailoredCoverLetter, error) {
	return &model.TailoredCoverLetter{Title: title, JobTitle: jobTitle, TailoredContent: "Dear Hiring Team,"}, nil
}

func (fakeCoverLetterAPI) List(_ context.Context, _ string) ([]model.TailoredCoverLetter, error) {
	return nil, nil
}

func (fakeCoverLetterAPI) Get(_ context.Context, _, _ string) (*model.TailoredCoverLetter, error) {
	return nil, usecase.ErrNotFound
}

func (fakeCoverLetterAPI) Delete(_ context.Context, _, _ string) error { return nil }

func newTestApp(api *fakeResumeAPI, users *fakeUserStore) *fiber.App {
	app := fiber.New()
	h := Handlers{
		Auth:        NewAuthHandler(users, testSecret, time.Hour),
		Resume:      NewResumeHandler(api, &fakeTailoredStore{}, fakeBuiltStore{}, &fakeArtifactStore{}),
		Templates:   NewTemplateHandler(&fakeTemplateStore{def: &model.ResumeTemplateDoc{Name: "default"}}),
		CoverLetter: NewCoverLetterHandler(fakeCoverLetterAPI{}),
	}
	RegisterRoutes(app, h, testSecret)
	return app
}

func bearer(t *testing.T) string {
	t.Helper()
	tok, err := auth.NewToken(testSecret, "user-1", time.Hour)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	return "Bearer " + tok
}

func TestRegisterCreatesUser(t *testing.T) {
	t.Parallel()

	users := &fakeUserStore{}
	app := newTestApp(&fakeResumeAPI{}, users)

	body := `{"fullname":"Jane Doe","username":"jane","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if users.created == nil || users.created.Password == "longenough" {
		t.Error("password stored in plain text or user not created")
	}

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if _, ok := out["password"]; ok {
		t.Error("password leaked in response")
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	t.Parallel()

	app := newTestApp(&fakeResumeAPI{}, &fakeUserStore{})
	body := `{"username":"jane","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	t.Parallel()

	hashed, _ := auth.HashPassword("correct-horse")
	users := &fakeUserStore{byName: map[string]*model.User{
		"jane": {ID: primitive.NewObjectID(), Username: "jane", Password: hashed},
	}}
	app := newTestApp(&fakeResumeAPI{}, users)

	login := func(password string) *http.Response {
		body, _ := json.Marshal(map[string]string{"username": "jane", "password": password})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Test: %v", err)
		}
		return resp
	}

	if resp := login("wrong"); resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d", resp.StatusCode)
	}
	resp := login("correct-horse")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	var out loginResponse
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if out.AccessToken == "" || out.TokenType != "bearer" {
		t.Errorf("unexpected login response: %+v", out)
	}
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	app := newTestApp(&fakeResumeAPI{}, &fakeUserStore{})
	req := httptest.NewRequest(http.MethodGet, "/resume/current", nil)

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestCurrentResume(t *testing.T) {
	t.Parallel()

	api := &fakeResumeAPI{prof: &model.ResumeStructured{Name: "Jane"}}
	app := newTestApp(api, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/resume/current", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var prof model.ResumeStructured
	_ = json.NewDecoder(resp.Body).Decode(&prof)
	if prof.Name != "Jane" {
		t.Errorf("name = %q", prof.Name)
	}
}

func TestCurrentResumeNoProfile(t *testing.T) {
	t.Parallel()

	api := &fakeResumeAPI{err: usecase.ErrNoProfile}
	app := newTestApp(api, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/resume/current", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestExportPDFHeaders(t *testing.T) {
	t.Parallel()

	api := &fakeResumeAPI{export: &usecase.Export{
		FileName:    "Jose-Alvarez-CV.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-fake"),
	}}
	app := newTestApp(api, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/resume/export/pdf?engine=vector", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	cd := resp.Header.Get(fiber.HeaderContentDisposition)
	if !strings.Contains(cd, `filename="Jose-Alvarez-CV.pdf"`) || !strings.Contains(cd, "filename*=UTF-8''") {
		t.Errorf("content disposition = %q", cd)
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Error("body is not the rendered PDF")
	}
}

func TestFormatRequiresPath(t *testing.T) {
	t.Parallel()

	app := newTestApp(&fakeResumeAPI{}, &fakeUserStore{})
	req := httptest.NewRequest(http.MethodGet, "/resume/format", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFormatPathTraversalRejected(t *testing.T) {
	t.Parallel()

	api := &fakeResumeAPI{err: usecase.ErrPathOutsideBase}
	app := newTestApp(api, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/resume/format?pdf_path=../../etc/passwd", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestTailorRequiresJobDescription(t *testing.T) {
	t.Parallel()

	app := newTestApp(&fakeResumeAPI{}, &fakeUserStore{})
	req := httptest.NewRequest(http.MethodPost, "/resume/tailor", strings.NewReader(`{"job_title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return out.Error
}

func TestTailorFailureNamesStage(t *testing.T) {
	t.Parallel()

	api := &fakeResumeAPI{err: fmt.Errorf("%w: status 500", usecase.ErrTailoring)}
	app := newTestApp(api, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodPost, "/resume/tailor", strings.NewReader(`{"job_description":"Go backend role"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
	if msg := decodeError(t, resp); msg != "tailoring failed" {
		t.Errorf("error = %q", msg)
	}
}

func TestStructuringFailureNamesStage(t *testing.T) {
	t.Parallel()

	api := &fakeResumeAPI{err: fmt.Errorf("%w: output rejected", usecase.ErrStructuring)}
	app := newTestApp(api, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/resume/format?pdf_path=cv.pdf", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
	if msg := decodeError(t, resp); msg != "resume structuring failed" {
		t.Errorf("error = %q", msg)
	}
}

func TestExportRenderFailureNamesStage(t *testing.T) {
	t.Parallel()

	api := &fakeResumeAPI{err: fmt.Errorf("%w: chrome exited", usecase.ErrRendering)}
	app := newTestApp(api, &fakeUserStore{})

	req := httptest.NewRequest(http.MethodGet, "/resume/export/pdf", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	if msg := decodeError(t, resp); msg != "rendering failed" {
		t.Errorf("error = %q", msg)
	}
}

func TestListArtifacts(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	h := Handlers{
		Auth: NewAuthHandler(&fakeUserStore{}, testSecret, time.Hour),
		Resume: NewResumeHandler(&fakeResumeAPI{}, &fakeTailoredStore{}, fakeBuiltStore{}, &fakeArtifactStore{
			docs: []model.Artifact{{Kind: "resume", Title: "Jane Doe", FileName: "Jane-Doe.pdf"}},
		}),
		Templates:   NewTemplateHandler(&fakeTemplateStore{def: &model.ResumeTemplateDoc{Name: "default"}}),
		CoverLetter: NewCoverLetterHandler(fakeCoverLetterAPI{}),
	}
	RegisterRoutes(app, h, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/resume/artifacts", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var docs []model.Artifact
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(docs) != 1 || docs[0].FileName != "Jane-Doe.pdf" {
		t.Errorf("artifacts = %+v", docs)
	}
}

func TestTemplateDefault(t *testing.T) {
	t.Parallel()

	app := newTestApp(&fakeResumeAPI{}, &fakeUserStore{})
	req := httptest.NewRequest(http.MethodGet, "/templates/default", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))

	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var doc model.ResumeTemplateDoc
	_ = json.NewDecoder(resp.Body).Decode(&doc)
	if doc.Name != "default" {
		t.Errorf("name = %q", doc.Name)
	}
}
