package resume

import (
	"context"

	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
)

// MaxFileSize is the upload limit for resumes.
const MaxFileSize = 5 * 1024 * 1024

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Meta describes an uploaded resume. Content itself never reaches the core.
type Meta struct {
	FileName    string
	ContentType string
	SizeBytes   int64
}

// ValidateMeta checks type and size before any session state is created.
func ValidateMeta(m Meta) error {
	if m.ContentType != mimePDF && m.ContentType != mimeDOCX {
		return model.ErrInvalidFileType
	}
	if m.SizeBytes > MaxFileSize {
		return model.ErrFileTooLarge
	}
	return nil
}

// Extractor pulls candidate contact fields out of a resume. Real extraction
// is an external collaborator; the service ships with the stub only.
type Extractor interface {
	Extract(ctx context.Context, m Meta) (model.CandidateInfo, error)
}

// StubExtractor returns a fixed placeholder profile for any resume.
type StubExtractor struct{}

func (StubExtractor) Extract(_ context.Context, _ Meta) (model.CandidateInfo, error) {
	return model.CandidateInfo{
		Name:  "Jane Smith",
		Email: "jane.smith@example.com",
		Phone: "+1-555-0456",
	}, nil
}
