package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"summary-share/apperrors"
	"summary-share/classifier"
	"summary-share/internal/logger"
	"summary-share/fetcher"
	"summary-share/models"
	"summary-share/repositories"
)

// Classifier is the LLM client surface the pipeline depends on.
type Classifier interface {
	Classify(ctx context.Context, content, instruction, contentKind string) (*classifier.Result, error)
}

// SummaryService orchestrates the ingestion pipeline
// (fetch -> classify -> store) and the read-side operations. Each request
// runs the pipeline synchronously end-to-end; any failing step aborts with
// no partial write.
type SummaryService struct {
	summaries  repositories.SummaryRepository
	users      repositories.UserRepository
	website    *fetcher.Website
	pdf        *fetcher.PDF
	classifier Classifier
}

func NewSummaryService(
	summaries repositories.SummaryRepository,
	users repositories.UserRepository,
	website *fetcher.Website,
	pdf *fetcher.PDF,
	cls Classifier,
) *SummaryService {
	return &SummaryService{
		summaries:  summaries,
		users:      users,
		website:    website,
		pdf:        pdf,
		classifier: cls,
	}
}

// CreateWebsite runs the pipeline for a URL source. The page's own title is
// preferred; the classifier's title is the fallback.
func (s *SummaryService) CreateWebsite(ctx context.Context, userID uint, url, prompt string, private bool) (int64, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return 0, err
	}

	dom, err := s.website.FetchDOM(ctx, url)
	if err != nil {
		return 0, err
	}

	content, err := s.website.ExtractBodyText(dom)
	if err != nil {
		return 0, err
	}

	result, err := s.classifier.Classify(ctx, content, prompt, models.ContentTypeWebsite)
	if err != nil {
		return 0, err
	}

	title := s.website.ExtractTitle(dom)
	if title == "" {
		title = result.Title
	}

	return s.persist(ctx, &models.Summary{
		Title:       title,
		Summary:     result.Content,
		Category:    models.SnapCategory(result.Category),
		ContentType: models.ContentTypeWebsite,
		UserPrompt:  prompt,
		Tags:        capTags(result.Tags),
		RawText:     content,
		URL:         url,
		IsPrivate:   private,
		AuthorID:    userID,
	})
}

// CreateText runs the pipeline for raw text; the input is used verbatim,
// no fetch step.
func (s *SummaryService) CreateText(ctx context.Context, userID uint, text, prompt string, private bool) (int64, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return 0, err
	}

	result, err := s.classifier.Classify(ctx, text, prompt, models.ContentTypeText)
	if err != nil {
		return 0, err
	}

	return s.persist(ctx, &models.Summary{
		Title:       result.Title,
		Summary:     result.Content,
		Category:    models.SnapCategory(result.Category),
		ContentType: models.ContentTypeText,
		UserPrompt:  prompt,
		Tags:        capTags(result.Tags),
		RawText:     text,
		IsPrivate:   private,
		AuthorID:    userID,
	})
}

// CreateFile runs the pipeline for an uploaded PDF.
func (s *SummaryService) CreateFile(ctx context.Context, userID uint, filename string, data []byte, prompt string, private bool) (int64, error) {
	if err := s.resolveUser(ctx, userID); err != nil {
		return 0, err
	}

	if err := s.pdf.CheckExtension(filename); err != nil {
		return 0, err
	}

	text, err := s.pdf.ExtractText(data)
	if err != nil {
		return 0, err
	}

	result, err := s.classifier.Classify(ctx, text, prompt, models.ContentTypeFile)
	if err != nil {
		return 0, err
	}

	return s.persist(ctx, &models.Summary{
		Title:       result.Title,
		Summary:     result.Content,
		Category:    models.SnapCategory(result.Category),
		ContentType: models.ContentTypeFile,
		UserPrompt:  prompt,
		Tags:        capTags(result.Tags),
		RawText:     text,
		IsPrivate:   private,
		AuthorID:    userID,
	})
}

func (s *SummaryService) resolveUser(ctx context.Context, userID uint) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound.WithMessage("user data not found")
		}
		return apperrors.ErrInternal.WithCause(err)
	}
	return nil
}

func (s *SummaryService) persist(ctx context.Context, summary *models.Summary) (int64, error) {
	if err := s.summaries.Create(ctx, summary); err != nil {
		logger.ErrorWithFields("summary create failed", logger.Fields{
			"content_type": summary.ContentType,
			"error":        err.Error(),
		})
		return 0, apperrors.ErrPersistence.WithCause(err)
	}
	return summary.ID, nil
}

func capTags(tags []string) models.StringList {
	if len(tags) > models.MaxTags {
		tags = tags[:models.MaxTags]
	}
	return models.StringList(tags)
}

// GetByID loads a full record, enforcing the privacy rule: a private
// summary is only visible to its author.
func (s *SummaryService) GetByID(ctx context.Context, viewerID uint, id int64) (*models.Summary, error) {
	summary, err := s.summaries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound.WithMessage("summary not found")
		}
		return nil, apperrors.ErrInternal.WithCause(err)
	}

	if summary.IsPrivate && summary.AuthorID != viewerID {
		return nil, apperrors.ErrForbidden.WithMessage("summary is private")
	}
	return summary, nil
}

// Delete removes a record; only the author may do so.
func (s *SummaryService) Delete(ctx context.Context, viewerID uint, id int64) error {
	summary, err := s.summaries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound.WithMessage("summary not found")
		}
		return apperrors.ErrInternal.WithCause(err)
	}

	if summary.AuthorID != viewerID {
		return apperrors.ErrAuthorization.WithMessage("only the author can delete a summary")
	}

	if err := s.summaries.Delete(ctx, id); err != nil {
		return apperrors.ErrInternal.WithCause(err)
	}
	return nil
}

// List runs one bounded query described by the given specification.
func (s *SummaryService) List(ctx context.Context, q repositories.ListQuery) ([]models.Summary, error) {
	summaries, err := s.summaries.List(ctx, q)
	if err != nil {
		return nil, apperrors.ErrInternal.WithCause(err)
	}
	return summaries, nil
}

// Search matches title or tags by case-insensitive substring.
func (s *SummaryService) Search(ctx context.Context, query string, limit int, viewerID uint) ([]models.Summary, error) {
	summaries, err := s.summaries.Search(ctx, query, limit, viewerID)
	if err != nil {
		return nil, apperrors.ErrInternal.WithCause(err)
	}
	return summaries, nil
}

// React idempotently sets or clears the viewer's membership in a reaction
// set and returns the summary with fresh counters.
func (s *SummaryService) React(ctx context.Context, userID uint, summaryID int64, reaction string, active bool) (*models.Summary, error) {
	summary, err := s.summaries.SetReaction(ctx, userID, summaryID, reaction, active)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound.WithMessage("summary not found")
		}
		return nil, apperrors.ErrInternal.WithCause(err)
	}
	return summary, nil
}
