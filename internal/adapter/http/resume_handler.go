package http

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"

	"resume-tailor/internal/model"
	"resume-tailor/internal/usecase"
)

type ResumeAPI interface {
	Current(ctx context.Context, userID string) (*model.ResumeStructured, error)
	ImportFromPath(ctx context.Context, userID, rel string) (*model.ResumeStructured, error)
	ImportFromBytes(ctx context.Context, userID string, data []byte) (*model.ResumeStructured, error)
	Tailor(ctx context.Context, userID, title, jobTitle, jobDescription string) (*model.TailoredResume, error)
	StructureJob(ctx context.Context, jobDescription string) (*model.JobStructured, error)
	ExportPDF(ctx context.Context, userID string, req usecase.ExportRequest) (*usecase.Export, error)
	ExportTeX(ctx context.Context, userID string, req usecase.ExportRequest) (*usecase.Export, error)
}

type TailoredResumeStore interface {
	List(ctx context.Context, userID string) ([]model.TailoredResume, error)
	Get(ctx context.Context, userID, id string) (*model.TailoredResume, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type BuiltResumeStore interface {
	Create(ctx context.Context, doc *model.BuiltResume) (*model.BuiltResume, error)
	Update(ctx context.Context, userID, id, title string, resume model.ResumeStructured, templateID string) (*model.BuiltResume, error)
	List(ctx context.Context, userID string) ([]model.BuiltResume, error)
	Get(ctx context.Context, userID, id string) (*model.BuiltResume, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type ArtifactStore interface {
	List(ctx context.Context, userID string) ([]model.Artifact, error)
}

type ResumeHandler struct {
	svc       ResumeAPI
	tailored  TailoredResumeStore
	built     BuiltResumeStore
	artifacts ArtifactStore
}

func NewResumeHandler(svc ResumeAPI, tailored TailoredResumeStore, built BuiltResumeStore, artifacts ArtifactStore) *ResumeHandler {
	return &ResumeHandler{svc: svc, tailored: tailored, built: built, artifacts: artifacts}
}

// Current handles GET /resume/current.
func (h *ResumeHandler) Current(c *fiber.Ctx) error {
	prof, err := h.svc.Current(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(prof)
}

// Format handles GET /resume/format?pdf_path=... It structures a PDF
// already present under the resume directory and stores the result as the
// current profile.
func (h *ResumeHandler) Format(c *fiber.Ctx) error {
	rel := c.Query("pdf_path")
	if rel == "" {
		return badRequest(c, "pdf_path query parameter is required")
	}
	prof, err := h.svc.ImportFromPath(c.Context(), currentUserID(c), rel)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(prof)
}

// Extract handles POST /resume/extract with a multipart "file" field.
func (h *ResumeHandler) Extract(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "multipart field 'file' is required")
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return fail(c, err)
	}

	prof, err := h.svc.ImportFromBytes(c.Context(), currentUserID(c), data)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(prof)
}

type tailorRequest struct {
	Title          string `json:"title"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
}

// Tailor handles POST /resume/tailor.
func (h *ResumeHandler) Tailor(c *fiber.Ctx) error {
	var req tailorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.JobDescription == "" {
		return badRequest(c, "job_description is required")
	}
	doc, err := h.svc.Tailor(c.Context(), currentUserID(c), req.Title, req.JobTitle, req.JobDescription)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

type structureJobRequest struct {
	JobDescription string `json:"job_description"`
}

// StructureJob handles POST /resume/job/structure.
func (h *ResumeHandler) StructureJob(c *fiber.Ctx) error {
	var req structureJobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.JobDescription == "" {
		return badRequest(c, "job_description is required")
	}
	job, err := h.svc.StructureJob(c.Context(), req.JobDescription)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(job)
}

// ListTailored handles GET /resume/tailored.
func (h *ResumeHandler) ListTailored(c *fiber.Ctx) error {
	docs, err := h.tailored.List(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	if docs == nil {
		docs = []model.TailoredResume{}
	}
	return c.JSON(docs)
}

// GetTailored handles GET /resume/tailored/:id.
func (h *ResumeHandler) GetTailored(c *fiber.Ctx) error {
	doc, err := h.tailored.Get(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if doc == nil {
		return fail(c, usecase.ErrNotFound)
	}
	return c.JSON(doc)
}

// DeleteTailored handles DELETE /resume/tailored/:id.
func (h *ResumeHandler) DeleteTailored(c *fiber.Ctx) error {
	ok, err := h.tailored.Delete(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if !ok {
		return fail(c, usecase.ErrNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListArtifacts handles GET /resume/artifacts. Exports are recorded as
// artifacts when they are generated; this lists the user's history.
func (h *ResumeHandler) ListArtifacts(c *fiber.Ctx) error {
	docs, err := h.artifacts.List(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	if docs == nil {
		docs = []model.Artifact{}
	}
	return c.JSON(docs)
}

func exportRequestFromQuery(c *fiber.Ctx) usecase.ExportRequest {
	return usecase.ExportRequest{
		Source:     c.Query("source"),
		ID:         c.Query("id"),
		TemplateID: c.Query("template_id"),
		Engine:     c.Query("engine"),
	}
}

// ExportPDF handles GET /resume/export/pdf.
func (h *ResumeHandler) ExportPDF(c *fiber.Ctx) error {
	exp, err := h.svc.ExportPDF(c.Context(), currentUserID(c), exportRequestFromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return sendFileBytes(c, exp)
}

// ExportCurrentPDF handles GET /resume/export/current/pdf, a shorthand for
// exporting the current profile with the default template.
func (h *ResumeHandler) ExportCurrentPDF(c *fiber.Ctx) error {
	req := usecase.ExportRequest{Source: "current", Engine: c.Query("engine")}
	exp, err := h.svc.ExportPDF(c.Context(), currentUserID(c), req)
	if err != nil {
		return fail(c, err)
	}
	return sendFileBytes(c, exp)
}

// ExportTeX handles GET /resume/export/tex.
func (h *ResumeHandler) ExportTeX(c *fiber.Ctx) error {
	exp, err := h.svc.ExportTeX(c.Context(), currentUserID(c), exportRequestFromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return sendFileBytes(c, exp)
}

type builtResumeRequest struct {
	Title      string                 `json:"title"`
	Resume     model.ResumeStructured `json:"resume"`
	TemplateID string                 `json:"template_id"`
}

// CreateBuilt handles POST /resume/built.
func (h *ResumeHandler) CreateBuilt(c *fiber.Ctx) error {
	var req builtResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Title == "" {
		return badRequest(c, "title is required")
	}
	doc, err := h.built.Create(c.Context(), &model.BuiltResume{
		Title:      req.Title,
		Resume:     req.Resume,
		TemplateID: req.TemplateID,
		UserID:     currentUserID(c),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// UpdateBuilt handles PUT /resume/built/:id.
func (h *ResumeHandler) UpdateBuilt(c *fiber.Ctx) error {
	var req builtResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	doc, err := h.built.Update(c.Context(), currentUserID(c), c.Params("id"), req.Title, req.Resume, req.TemplateID)
	if err != nil {
		return fail(c, err)
	}
	if doc == nil {
		return fail(c, usecase.ErrNotFound)
	}
	return c.JSON(doc)
}

// ListBuilt handles GET /resume/built.
func (h *ResumeHandler) ListBuilt(c *fiber.Ctx) error {
	docs, err := h.built.List(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	if docs == nil {
		docs = []model.BuiltResume{}
	}
	return c.JSON(docs)
}

// GetBuilt handles GET /resume/built/:id.
func (h *ResumeHandler) GetBuilt(c *fiber.Ctx) error {
	doc, err := h.built.Get(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if doc == nil {
		return fail(c, usecase.ErrNotFound)
	}
	return c.JSON(doc)
}

// DeleteBuilt handles DELETE /resume/built/:id.
func (h *ResumeHandler) DeleteBuilt(c *fiber.Ctx) error {
	ok, err := h.built.Delete(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if !ok {
		return fail(c, usecase.ErrNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
