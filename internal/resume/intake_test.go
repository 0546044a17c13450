package resume

import (
	"context"
	"testing"

	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMeta(t *testing.T) {
	tests := []struct {
		name    string
		meta    Meta
		wantErr error
	}{
		{
			name: "pdf accepted",
			meta: Meta{FileName: "cv.pdf", ContentType: "application/pdf", SizeBytes: 1024},
		},
		{
			name: "docx accepted",
			meta: Meta{FileName: "cv.docx", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", SizeBytes: 1024},
		},
		{
			name:    "plain text rejected",
			meta:    Meta{FileName: "cv.txt", ContentType: "text/plain", SizeBytes: 10},
			wantErr: model.ErrInvalidFileType,
		},
		{
			name:    "type checked before size",
			meta:    Meta{FileName: "cv.txt", ContentType: "text/plain", SizeBytes: MaxFileSize + 1},
			wantErr: model.ErrInvalidFileType,
		},
		{
			name:    "oversize rejected",
			meta:    Meta{FileName: "cv.pdf", ContentType: "application/pdf", SizeBytes: MaxFileSize + 1},
			wantErr: model.ErrFileTooLarge,
		},
		{
			name: "exactly at limit accepted",
			meta: Meta{FileName: "cv.pdf", ContentType: "application/pdf", SizeBytes: MaxFileSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMeta(tt.meta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStubExtractor(t *testing.T) {
	info, err := StubExtractor{}.Extract(context.Background(), Meta{FileName: "cv.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", info.Name)
	assert.Equal(t, "jane.smith@example.com", info.Email)
	assert.Equal(t, "+1-555-0456", info.Phone)
}
