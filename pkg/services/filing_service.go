package services

import (
	"context"
	"fmt"

	"github.com/filinglens/filinglens/ent"
	"github.com/filinglens/filinglens/ent/document"
	"github.com/filinglens/filinglens/ent/filing"
	"github.com/filinglens/filinglens/pkg/contenthash"
	"github.com/filinglens/filinglens/pkg/models"
)

// FilingService manages Filing and Document records.
type FilingService struct {
	client *ent.Client
}

// NewFilingService creates a new FilingService.
func NewFilingService(client *ent.Client) *FilingService {
	return &FilingService{client: client}
}

// UpsertFiling creates or refreshes a filing keyed by accession number.
func (s *FilingService) UpsertFiling(ctx context.Context, input models.UpsertFilingInput) (*ent.Filing, error) {
	if input.AccessionNumber == "" {
		return nil, NewValidationError("accession_number", "required")
	}
	if input.CompanyID == "" {
		return nil, NewValidationError("company_id", "required")
	}
	if input.FormType == "" {
		return nil, NewValidationError("form_type", "required")
	}

	existing, err := s.client.Filing.Query().
		Where(filing.AccessionNumberEQ(input.AccessionNumber)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query filing: %w", err)
	}

	if existing != nil {
		builder := existing.Update().
			SetFormType(input.FormType).
			SetFilingDate(input.FilingDate).
			SetSourceURL(input.SourceURL)
		if input.PeriodOfReport != nil {
			builder.SetPeriodOfReport(*input.PeriodOfReport)
		}
		updated, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update filing: %w", err)
		}
		return updated, nil
	}

	builder := s.client.Filing.Create().
		SetID(newID()).
		SetCompanyID(input.CompanyID).
		SetAccessionNumber(input.AccessionNumber).
		SetFormType(input.FormType).
		SetFilingDate(input.FilingDate).
		SetSourceURL(input.SourceURL)
	if input.PeriodOfReport != nil {
		builder.SetPeriodOfReport(*input.PeriodOfReport)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.GetByAccession(ctx, input.AccessionNumber)
		}
		return nil, fmt.Errorf("failed to create filing: %w", err)
	}
	return created, nil
}

// GetByAccession returns a filing by accession number.
func (s *FilingService) GetByAccession(ctx context.Context, accessionNumber string) (*ent.Filing, error) {
	f, err := s.client.Filing.Query().
		Where(filing.AccessionNumberEQ(accessionNumber)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get filing: %w", err)
	}
	return f, nil
}

// ListByCompany returns a company's filings, newest filing date first,
// optionally narrowed to one form type.
func (s *FilingService) ListByCompany(ctx context.Context, companyID, formType string, limit int) ([]*ent.Filing, error) {
	if limit <= 0 {
		limit = 100
	}
	q := s.client.Filing.Query().
		Where(filing.CompanyIDEQ(companyID))
	if formType != "" {
		q = q.Where(filing.FormTypeEQ(formType))
	}

	filings, err := q.
		Order(ent.Desc(filing.FieldFilingDate)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list filings: %w", err)
	}
	return filings, nil
}

// UpsertDocument creates a document for a filing, keyed by
// (filing, document_type, content hash). Re-ingesting identical content is a
// no-op returning the existing row.
func (s *FilingService) UpsertDocument(ctx context.Context, input models.UpsertDocumentInput) (*ent.Document, error) {
	if input.FilingID == "" {
		return nil, NewValidationError("filing_id", "required")
	}
	if input.CompanyID == "" {
		return nil, NewValidationError("company_id", "required")
	}
	docType := document.DocumentType(input.DocumentType)
	if err := document.DocumentTypeValidator(docType); err != nil {
		return nil, NewValidationError("document_type", err.Error())
	}

	hash := contenthash.Text(input.Content)

	existing, err := s.client.Document.Query().
		Where(
			document.FilingIDEQ(input.FilingID),
			document.DocumentTypeEQ(docType),
			document.ContentHashEQ(hash),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	created, err := s.client.Document.Create().
		SetID(newID()).
		SetFilingID(input.FilingID).
		SetCompanyID(input.CompanyID).
		SetTitle(input.Title).
		SetDocumentType(docType).
		SetContent(input.Content).
		SetContentHash(hash).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return created, nil
}

// GetDocument returns a document by id, content included.
func (s *FilingService) GetDocument(ctx context.Context, id string) (*ent.Document, error) {
	d, err := s.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return d, nil
}

// ListDocuments returns the documents of a filing. Content is omitted from
// the selection — documents are large and the hash is what callers usually
// need; use GetDocument for the full text.
func (s *FilingService) ListDocuments(ctx context.Context, filingID string) ([]*ent.Document, error) {
	docs, err := s.client.Document.Query().
		Where(document.FilingIDEQ(filingID)).
		Select(
			document.FieldID,
			document.FieldFilingID,
			document.FieldCompanyID,
			document.FieldTitle,
			document.FieldDocumentType,
			document.FieldContentHash,
			document.FieldCreatedAt,
		).
		Order(ent.Asc(document.FieldDocumentType)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// DocumentByHash returns a document by full content hash or an unambiguous
// prefix of at least contenthash.ShortHashLen characters. Identical content
// can appear on multiple filings; the earliest row wins since all copies
// carry the same text.
func (s *FilingService) DocumentByHash(ctx context.Context, hash string) (*ent.Document, error) {
	if len(hash) == 64 {
		d, err := s.client.Document.Query().
			Where(document.ContentHashEQ(hash)).
			Order(ent.Asc(document.FieldCreatedAt)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to get document by hash: %w", err)
		}
		return d, nil
	}

	if len(hash) < contenthash.ShortHashLen {
		return nil, NewValidationError("hash", fmt.Sprintf("prefix must be at least %d characters", contenthash.ShortHashLen))
	}
	matches, err := s.client.Document.Query().
		Where(document.ContentHashHasPrefix(hash)).
		Order(ent.Asc(document.FieldCreatedAt)).
		Limit(2).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query document by prefix: %w", err)
	}
	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		// Two rows can share a full hash (same section on re-filed documents);
		// that is not ambiguity. Distinct hashes under one prefix are.
		if matches[0].ContentHash == matches[1].ContentHash {
			return matches[0], nil
		}
		return nil, ErrAmbiguousHash
	}
}

// FirstDocumentOfType returns the first document of the given type on a
// filing, or ErrNotFound. Content is loaded: the pipeline hashes and prompts
// with it.
func (s *FilingService) FirstDocumentOfType(ctx context.Context, filingID string, docType document.DocumentType) (*ent.Document, error) {
	d, err := s.client.Document.Query().
		Where(
			document.FilingIDEQ(filingID),
			document.DocumentTypeEQ(docType),
		).
		Order(ent.Asc(document.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query document: %w", err)
	}
	return d, nil
}
