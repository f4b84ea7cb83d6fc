package usecase

import (
	"context"
	"fmt"
	"strings"

	"resume-tailor/internal/model"
)

type CoverLetterStore interface {
	Create(ctx context.Context, doc *model.TailoredCoverLetter) (*model.TailoredCoverLetter, error)
	List(ctx context.Context, userID string) ([]model.TailoredCoverLetter, error)
	Get(ctx context.Context, userID, id string) (*model.TailoredCoverLetter, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type CoverLetterLLM interface {
	TailorCoverLetter(ctx context.Context, prof *model.ResumeStructured, jobDescription, extraInstructions string) (string, error)
}

type CoverLetterService struct {
	users   UserStore
	letters CoverLetterStore
	llm     CoverLetterLLM
}

func NewCoverLetterService(users UserStore, letters CoverLetterStore, llm CoverLetterLLM) *CoverLetterService {
	return &CoverLetterService{users: users, letters: letters, llm: llm}
}

// Tailor writes a cover letter from the user's current profile and stores
// it alongside the inputs that produced it.
func (s *CoverLetterService) Tailor(ctx context.Context, userID, title, jobTitle, jobDescription, extraInstructions string) (*model.TailoredCoverLetter, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Prof == nil {
		return nil, ErrNoProfile
	}
	content, err := s.llm.TailorCoverLetter(ctx, u.Prof, jobDescription, extraInstructions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTailoring, err)
	}
	if strings.TrimSpace(title) == "" {
		title = jobTitle
	}
	return s.letters.Create(ctx, &model.TailoredCoverLetter{
		Title:             title,
		JobTitle:          jobTitle,
		JobDescription:    jobDescription,
		TailoredContent:   content,
		ExtraInstructions: extraInstructions,
		UserID:            userID,
	})
}

func (s *CoverLetterService) List(ctx context.Context, userID string) ([]model.TailoredCoverLetter, error) {
	return s.letters.List(ctx, userID)
}

func (s *CoverLetterService) Get(ctx context.Context, userID, id string) (*model.TailoredCoverLetter, error) {
	doc, err := s.letters.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (s *CoverLetterService) Delete(ctx context.Context, userID, id string) error {
	ok, err := s.letters.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
