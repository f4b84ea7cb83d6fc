// Package http adapts the application services to the Fiber HTTP surface.
package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"resume-tailor/internal/adapter/repository"
	"resume-tailor/internal/usecase"
)

type errorBody struct {
	Error string `json:"error"`
}

// fail maps service errors onto HTTP statuses. Unrecognized errors become
// opaque 500s; their details go to the server log only.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody{Error: "not found"})
	case errors.Is(err, usecase.ErrNoProfile):
		return c.Status(fiber.StatusNotFound).JSON(errorBody{Error: "no structured resume on file; import one first"})
	case errors.Is(err, usecase.ErrPathOutsideBase):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "invalid pdf_path"})
	case errors.Is(err, usecase.ErrUnknownEngine):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "unknown engine, use chrome or vector"})
	case errors.Is(err, usecase.ErrTextTooShort):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorBody{Error: err.Error()})
	case errors.Is(err, repository.ErrDuplicateUsername):
		return c.Status(fiber.StatusConflict).JSON(errorBody{Error: "username already taken"})
	case errors.Is(err, usecase.ErrStructuring):
		return c.Status(fiber.StatusBadGateway).JSON(errorBody{Error: "resume structuring failed"})
	case errors.Is(err, usecase.ErrTailoring):
		return c.Status(fiber.StatusBadGateway).JSON(errorBody{Error: "tailoring failed"})
	case errors.Is(err, usecase.ErrRendering):
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: "rendering failed"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: "internal error"})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: msg})
}

// contentDispositionAttachment builds an RFC 6266 header carrying both the
// plain ASCII filename and its RFC 5987 UTF-8 form.
func contentDispositionAttachment(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		filename, url.PathEscape(filename))
}

// sendFileBytes streams an export with download headers.
func sendFileBytes(c *fiber.Ctx, exp *usecase.Export) error {
	c.Set(fiber.HeaderContentType, exp.ContentType)
	c.Set(fiber.HeaderContentDisposition, contentDispositionAttachment(exp.FileName))
	return c.Send(exp.Data)
}
