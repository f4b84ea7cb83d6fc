// Package usecase implements the application services behind the HTTP
// handlers: import and structuring of resume PDFs, job tailoring, and the
// three export back ends.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"resume-tailor/internal/model"
	"resume-tailor/pkg/render"
)

var (
	ErrNoProfile       = errors.New("no structured resume on file")
	ErrNotFound        = errors.New("not found")
	ErrPathOutsideBase = errors.New("path escapes the resume directory")
	ErrUnknownEngine   = errors.New("unknown export engine")
)

// Stage sentinels. Services wrap collaborator failures with these so the
// HTTP layer can say which stage failed without exposing internals.
var (
	ErrStructuring = errors.New("structuring failed")
	ErrTailoring   = errors.New("tailoring failed")
	ErrRendering   = errors.New("rendering failed")
)

// Export engines for PDF output.
const (
	EngineChrome = "chrome"
	EngineVector = "vector"
)

// Ports. Implementations live in the repository, ai and infrastructure
// packages; tests substitute fakes.

type UserStore interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	SaveProf(ctx context.Context, userID string, prof *model.ResumeStructured) error
}

type TemplateStore interface {
	Get(ctx context.Context, id string) (*model.ResumeTemplateDoc, error)
	GetDefault(ctx context.Context) (*model.ResumeTemplateDoc, error)
}

type TailoredStore interface {
	Create(ctx context.Context, doc *model.TailoredResume) (*model.TailoredResume, error)
	Get(ctx context.Context, userID, id string) (*model.TailoredResume, error)
}

type BuiltStore interface {
	Get(ctx context.Context, userID, id string) (*model.BuiltResume, error)
}

type ArtifactStore interface {
	Create(ctx context.Context, doc *model.Artifact) (*model.Artifact, error)
}

type ResumeLLM interface {
	StructureResume(ctx context.Context, rawText string) (*model.ResumeStructured, error)
	TailorResume(ctx context.Context, prof *model.ResumeStructured, jobDescription string) (*model.ResumeStructured, error)
	StructureJob(ctx context.Context, jobDescription string) (*model.JobStructured, error)
}

type HTMLPDFRenderer interface {
	RenderPDF(ctx context.Context, html string, theme model.TemplateTheme) ([]byte, error)
}

type ResumeService struct {
	users     UserStore
	templates TemplateStore
	tailored  TailoredStore
	built     BuiltStore
	artifacts ArtifactStore
	llm       ResumeLLM
	chrome    HTMLPDFRenderer

	baseResumeDir string
	artifactsDir  string
}

func NewResumeService(
	users UserStore,
	templates TemplateStore,
	tailored TailoredStore,
	built BuiltStore,
	artifacts ArtifactStore,
	llm ResumeLLM,
	chrome HTMLPDFRenderer,
	baseResumeDir, artifactsDir string,
) *ResumeService {
	return &ResumeService{
		users:         users,
		templates:     templates,
		tailored:      tailored,
		built:         built,
		artifacts:     artifacts,
		llm:           llm,
		chrome:        chrome,
		baseResumeDir: baseResumeDir,
		artifactsDir:  artifactsDir,
	}
}

// ResolvePDFPath resolves a user-supplied relative path strictly inside the
// configured resume directory. Absolute paths and .. traversal are refused.
func (s *ResumeService) ResolvePDFPath(rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" || filepath.IsAbs(rel) {
		return "", ErrPathOutsideBase
	}
	base, err := filepath.Abs(s.baseResumeDir)
	if err != nil {
		return "", fmt.Errorf("resolve base dir: %w", err)
	}
	full := filepath.Clean(filepath.Join(base, rel))
	if full != base && !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", ErrPathOutsideBase
	}
	return full, nil
}

// ImportFromPath structures the PDF at a path under the resume directory
// and saves the result as the user's current profile.
func (s *ResumeService) ImportFromPath(ctx context.Context, userID, rel string) (*model.ResumeStructured, error) {
	full, err := s.ResolvePDFPath(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return s.ImportFromBytes(ctx, userID, data)
}

// ImportFromBytes structures an uploaded PDF and saves the result as the
// user's current profile.
func (s *ResumeService) ImportFromBytes(ctx context.Context, userID string, data []byte) (*model.ResumeStructured, error) {
	text, err := ExtractResumeText(data)
	if err != nil {
		return nil, err
	}
	prof, err := s.llm.StructureResume(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStructuring, err)
	}
	if err := s.users.SaveProf(ctx, userID, prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// Current returns the user's stored structured resume.
func (s *ResumeService) Current(ctx context.Context, userID string) (*model.ResumeStructured, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Prof == nil {
		return nil, ErrNoProfile
	}
	return u.Prof, nil
}

// Tailor rewrites the current profile for a job description and stores the
// result as a tailored-resume snapshot.
func (s *ResumeService) Tailor(ctx context.Context, userID, title, jobTitle, jobDescription string) (*model.TailoredResume, error) {
	prof, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	tailored, err := s.llm.TailorResume(ctx, prof, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTailoring, err)
	}
	if strings.TrimSpace(title) == "" {
		title = jobTitle
	}
	return s.tailored.Create(ctx, &model.TailoredResume{
		Title:        title,
		JobTitle:     jobTitle,
		TailoredProf: *tailored,
		UserID:       userID,
	})
}

// StructureJob extracts the salient facts of a job posting so the frontend
// can preview what tailoring will target.
func (s *ResumeService) StructureJob(ctx context.Context, jobDescription string) (*model.JobStructured, error) {
	job, err := s.llm.StructureJob(ctx, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStructuring, err)
	}
	return job, nil
}

// ExportRequest selects what to export and how.
type ExportRequest struct {
	// Source of the resume data: "current", "tailored" or "built".
	Source string
	// Document id for tailored/built sources.
	ID string
	// Optional template id; empty means the default template.
	TemplateID string
	// PDF engine: chrome or vector. Ignored for TeX.
	Engine string
}

// Export is a finished export artifact.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}

// resolveSource loads the resume data an export names. It returns the
// template id to render with: the request's, or for built resumes the
// template the document remembers when the request names none.
func (s *ResumeService) resolveSource(ctx context.Context, userID string, req ExportRequest) (*model.ResumeStructured, string, string, error) {
	switch req.Source {
	case "", "current":
		prof, err := s.Current(ctx, userID)
		if err != nil {
			return nil, "", "", err
		}
		u, _ := s.users.GetByID(ctx, userID)
		title := "resume"
		if u != nil && u.Fullname != "" {
			title = u.Fullname
		}
		return prof, title, req.TemplateID, nil
	case "tailored":
		doc, err := s.tailored.Get(ctx, userID, req.ID)
		if err != nil {
			return nil, "", "", err
		}
		if doc == nil {
			return nil, "", "", ErrNotFound
		}
		return &doc.TailoredProf, doc.Title, req.TemplateID, nil
	case "built":
		doc, err := s.built.Get(ctx, userID, req.ID)
		if err != nil {
			return nil, "", "", err
		}
		if doc == nil {
			return nil, "", "", ErrNotFound
		}
		templateID := req.TemplateID
		if templateID == "" {
			templateID = doc.TemplateID
		}
		return &doc.Resume, doc.Title, templateID, nil
	default:
		return nil, "", "", fmt.Errorf("%w: unknown source %q", ErrNotFound, req.Source)
	}
}

func (s *ResumeService) resolveTemplate(ctx context.Context, templateID string) (model.TemplateTheme, []model.TemplateBlock, error) {
	var doc *model.ResumeTemplateDoc
	var err error
	if templateID != "" {
		doc, err = s.templates.Get(ctx, templateID)
		if err != nil {
			return model.TemplateTheme{}, nil, err
		}
	}
	if doc == nil {
		doc, err = s.templates.GetDefault(ctx)
		if err != nil {
			return model.TemplateTheme{}, nil, err
		}
	}
	blocks := doc.Blocks
	if len(blocks) == 0 {
		blocks = model.DefaultTemplateBlocks()
	}
	return doc.Theme.Normalized(), blocks, nil
}

// ExportPDF renders a resume to PDF with the requested engine.
func (s *ResumeService) ExportPDF(ctx context.Context, userID string, req ExportRequest) (*Export, error) {
	prof, title, templateID, err := s.resolveSource(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	theme, blocks, err := s.resolveTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch req.Engine {
	case "", EngineChrome:
		html := render.HTML(prof, theme, blocks)
		data, err = s.chrome.RenderPDF(ctx, html, theme)
	case EngineVector:
		data, err = render.PDF(prof, theme, blocks)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, req.Engine)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRendering, err)
	}

	out := &Export{
		FileName:    render.SafeFilename(title, ".pdf"),
		ContentType: "application/pdf",
		Data:        data,
	}
	s.recordArtifact(ctx, userID, title, out)
	return out, nil
}

// ExportTeX renders a resume to standalone LaTeX source.
func (s *ResumeService) ExportTeX(ctx context.Context, userID string, req ExportRequest) (*Export, error) {
	prof, title, templateID, err := s.resolveSource(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	theme, blocks, err := s.resolveTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	out := &Export{
		FileName:    render.SafeFilename(title, ".tex"),
		ContentType: "application/x-tex",
		Data:        []byte(render.LaTeX(prof, theme, blocks)),
	}
	s.recordArtifact(ctx, userID, title, out)
	return out, nil
}

// recordArtifact persists the export to the artifacts directory and logs
// it in the artifacts collection. Export delivery never fails on artifact
// bookkeeping; errors here are swallowed after best effort.
func (s *ResumeService) recordArtifact(ctx context.Context, userID, title string, exp *Export) {
	if s.artifacts == nil || s.artifactsDir == "" {
		return
	}
	if err := os.MkdirAll(s.artifactsDir, 0o750); err != nil {
		return
	}
	ext := filepath.Ext(exp.FileName)
	stored := uuid.NewString() + ext
	full := filepath.Join(s.artifactsDir, stored)
	if err := os.WriteFile(full, exp.Data, 0o640); err != nil {
		return
	}
	kind := "resume"
	_, _ = s.artifacts.Create(ctx, &model.Artifact{
		Kind:     kind,
		Title:    title,
		FileName: exp.FileName,
		FileLink: full,
		Version:  1,
		UserID:   userID,
	})
}
