package http

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers groups the route handlers wired in main.
type Handlers struct {
	Auth        *AuthHandler
	Resume      *ResumeHandler
	Templates   *TemplateHandler
	CoverLetter *CoverLetterHandler
}

// RegisterRoutes mounts the API. Everything except registration, login and
// the health check requires a bearer token.
func RegisterRoutes(app *fiber.App, h Handlers, jwtSecret string) {
	app.Post("/users", h.Auth.Register)
	app.Post("/auth/login", h.Auth.Login)

	authed := app.Group("", RequireAuth(jwtSecret))

	resume := authed.Group("/resume")
	resume.Get("/current", h.Resume.Current)
	resume.Get("/format", h.Resume.Format)
	resume.Post("/extract", h.Resume.Extract)
	resume.Post("/tailor", h.Resume.Tailor)
	resume.Post("/job/structure", h.Resume.StructureJob)

	resume.Get("/tailored", h.Resume.ListTailored)
	resume.Get("/tailored/:id", h.Resume.GetTailored)
	resume.Delete("/tailored/:id", h.Resume.DeleteTailored)

	resume.Post("/built", h.Resume.CreateBuilt)
	resume.Get("/built", h.Resume.ListBuilt)
	resume.Get("/built/:id", h.Resume.GetBuilt)
	resume.Put("/built/:id", h.Resume.UpdateBuilt)
	resume.Delete("/built/:id", h.Resume.DeleteBuilt)

	resume.Get("/export/pdf", h.Resume.ExportPDF)
	resume.Get("/export/current/pdf", h.Resume.ExportCurrentPDF)
	resume.Get("/export/tex", h.Resume.ExportTeX)
	resume.Get("/artifacts", h.Resume.ListArtifacts)

	templates := authed.Group("/templates")
	templates.Get("/", h.Templates.List)
	templates.Get("/default", h.Templates.GetDefault)
	templates.Post("/", h.Templates.Create)
	templates.Get("/:id", h.Templates.Get)
	templates.Put("/:id", h.Templates.Update)
	templates.Post("/:id/duplicate", h.Templates.Duplicate)
	templates.Delete("/:id", h.Templates.Delete)

	letters := authed.Group("/cover-letter")
	letters.Post("/tailor", h.CoverLetter.Tailor)
	letters.Get("/", h.CoverLetter.List)
	letters.Get("/:id", h.CoverLetter.Get)
	letters.Delete("/:id", h.CoverLetter.Delete)
}
