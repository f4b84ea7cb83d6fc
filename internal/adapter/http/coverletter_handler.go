package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"resume-tailor/internal/model"
)

type CoverLetterAPI interface {
	Tailor(ctx context.Context, userID, title, jobTitle, jobDescription, extraInstructions string) (*model.TailoredCoverLetter, error)
	List(ctx context.Context, userID string) ([]model.TailoredCoverLetter, error)
	Get(ctx context.Context, userID, id string) (*model.TailoredCoverLetter, error)
	Delete(ctx context.Context, userID, id string) error
}

type CoverLetterHandler struct {
	svc CoverLetterAPI
}

func NewCoverLetterHandler(svc CoverLetterAPI) *CoverLetterHandler {
	return &CoverLetterHandler{svc: svc}
}

type coverLetterRequest struct {
	Title             string `json:"title"`
	JobTitle          string `json:"job_title"`
	JobDescription    string `json:"job_description"`
	ExtraInstructions string `json:"extra_instructions"`
}

// Tailor handles POST /cover-letter/tailor.
func (h *CoverLetterHandler) Tailor(c *fiber.Ctx) error {
	var req coverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.JobDescription == "" {
		return badRequest(c, "job_description is required")
	}
	doc, err := h.svc.Tailor(c.Context(), currentUserID(c), req.Title, req.JobTitle, req.JobDescription, req.ExtraInstructions)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// List handles GET /cover-letter.
func (h *CoverLetterHandler) List(c *fiber.Ctx) error {
	docs, err := h.svc.List(c.Context(), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	if docs == nil {
		docs = []model.TailoredCoverLetter{}
	}
	return c.JSON(docs)
}

// Get handles GET /cover-letter/:id.
func (h *CoverLetterHandler) Get(c *fiber.Ctx) error {
	doc, err := h.svc.Get(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(doc)
}

// Delete handles DELETE /cover-letter/:id.
func (h *CoverLetterHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), currentUserID(c), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
