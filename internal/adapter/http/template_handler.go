package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"resume-tailor/internal/model"
	"resume-tailor/internal/usecase"
)

type TemplateStore interface {
	Create(ctx context.Context, doc *model.ResumeTemplateDoc) (*model.ResumeTemplateDoc, error)
	Update(ctx context.Context, id string, tpl model.ResumeTemplate) (*model.ResumeTemplateDoc, error)
	Get(ctx context.Context, id string) (*model.ResumeTemplateDoc, error)
	GetDefault(ctx context.Context) (*model.ResumeTemplateDoc, error)
	List(ctx context.Context) ([]model.ResumeTemplateDoc, error)
	Duplicate(ctx context.Context, id, name string) (*model.ResumeTemplateDoc, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type TemplateHandler struct {
	templates TemplateStore
}

func NewTemplateHandler(templates TemplateStore) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// List handles GET /templates.
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	docs, err := h.templates.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	if docs == nil {
		docs = []model.ResumeTemplateDoc{}
	}
	return c.JSON(docs)
}

// GetDefault handles GET /templates/default.
func (h *TemplateHandler) GetDefault(c *fiber.Ctx) error {
	doc, err := h.templates.GetDefault(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(doc)
}

// Get handles GET /templates/:id.
func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	doc, err := h.templates.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if doc == nil {
		return fail(c, usecase.ErrNotFound)
	}
	return c.JSON(doc)
}

// Create handles POST /templates.
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var tpl model.ResumeTemplate
	if err := c.BodyParser(&tpl); err != nil {
		return badRequest(c, "invalid body")
	}
	if tpl.Name == "" {
		return badRequest(c, "name is required")
	}
	doc, err := h.templates.Create(c.Context(), &model.ResumeTemplateDoc{
		Name:      tpl.Name,
		Version:   tpl.Version,
		IsDefault: tpl.IsDefault,
		Theme:     tpl.Theme,
		Blocks:    tpl.Blocks,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// Update handles PUT /templates/:id.
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	var tpl model.ResumeTemplate
	if err := c.BodyParser(&tpl); err != nil {
		return badRequest(c, "invalid body")
	}
	doc, err := h.templates.Update(c.Context(), c.Params("id"), tpl)
	if err != nil {
		return fail(c, err)
	}
	if doc == nil {
		return fail(c, usecase.ErrNotFound)
	}
	return c.JSON(doc)
}

type duplicateRequest struct {
	Name string `json:"name"`
}

// Duplicate handles POST /templates/:id/duplicate.
func (h *TemplateHandler) Duplicate(c *fiber.Ctx) error {
	var req duplicateRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return badRequest(c, "invalid body")
	}
	doc, err := h.templates.Duplicate(c.Context(), c.Params("id"), req.Name)
	if err != nil {
		return fail(c, err)
	}
	if doc == nil {
		return fail(c, usecase.ErrNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// Delete handles DELETE /templates/:id.
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.templates.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if !ok {
		return fail(c, usecase.ErrNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
