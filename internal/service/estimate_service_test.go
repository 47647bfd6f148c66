package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"xactdiff/internal/domain"
	"xactdiff/internal/port"
	"xactdiff/internal/service"
	"xactdiff/mocks"
)

// pdfContent returns bytes that sniff as application/pdf.
func pdfContent() []byte {
	return []byte("%PDF-1.4 test content that is at least a few bytes long for detection purposes")
}

// pngContent returns minimal valid PNG bytes (magic bytes).
func pngContent() []byte {
	header := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	return append(header, bytes.Repeat([]byte{0x00}, 100)...)
}

func upload(name string, content []byte) service.UploadInput {
	return service.UploadInput{Filename: name, Size: int64(len(content)), Body: bytes.NewReader(content)}
}

type estimateFixture struct {
	extractor *mocks.MockTextExtractor
	parser    *mocks.MockDocumentParser
	docs      *mocks.MockDocumentStore
	svc       service.EstimateService
}

func newEstimateFixture(maxBytes int64) *estimateFixture {
	f := &estimateFixture{
		extractor: new(mocks.MockTextExtractor),
		parser:    new(mocks.MockDocumentParser),
		docs:      new(mocks.MockDocumentStore),
	}
	f.svc = service.NewEstimateService(f.extractor, f.parser, f.docs, maxBytes)
	return f
}

func TestEstimateService_Upload_Success(t *testing.T) {
	f := newEstimateFixture(1024)
	content := pdfContent()
	doc := &domain.Document{ID: uuid.New(), Filename: "a.pdf", LineItems: []domain.LineItem{{Description: "x"}}}

	f.extractor.On("Extract", mock.Anything, content).
		Return(&port.ExtractOutput{Text: "1. x\n", PageCount: 2}, nil)
	f.parser.On("ParseDocument", "1. x\n", 2, "a.pdf").Return(doc, nil)
	f.docs.On("SaveDocument", mock.Anything, doc).Return(nil)

	got, err := f.svc.Upload(context.Background(), upload("a.pdf", content))

	require.NoError(t, err)
	assert.Equal(t, doc, got)
	f.extractor.AssertExpectations(t)
	f.parser.AssertExpectations(t)
	f.docs.AssertExpectations(t)
}

func TestEstimateService_Parse_DoesNotStore(t *testing.T) {
	f := newEstimateFixture(1024)
	content := pdfContent()
	doc := &domain.Document{ID: uuid.New()}

	f.extractor.On("Extract", mock.Anything, content).Return(&port.ExtractOutput{Text: "t", PageCount: 1}, nil)
	f.parser.On("ParseDocument", "t", 1, "a.pdf").Return(doc, nil)

	got, err := f.svc.Parse(context.Background(), upload("a.pdf", content))

	require.NoError(t, err)
	assert.Equal(t, doc, got)
	f.docs.AssertNotCalled(t, "SaveDocument", mock.Anything, mock.Anything)
}

func TestEstimateService_Upload_MissingFile(t *testing.T) {
	f := newEstimateFixture(1024)

	_, err := f.svc.Upload(context.Background(), service.UploadInput{Filename: "a.pdf"})
	assert.ErrorIs(t, err, domain.ErrMissingFile)

	_, err = f.svc.Upload(context.Background(), upload("a.pdf", nil))
	assert.ErrorIs(t, err, domain.ErrMissingFile)
}

func TestEstimateService_Upload_UnsupportedExtension(t *testing.T) {
	f := newEstimateFixture(1024)

	_, err := f.svc.Upload(context.Background(), upload("estimate.docx", pdfContent()))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	f.extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestEstimateService_Upload_WrongMagicBytes(t *testing.T) {
	f := newEstimateFixture(1024)

	_, err := f.svc.Upload(context.Background(), upload("fake.pdf", pngContent()))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestEstimateService_Upload_TooLarge(t *testing.T) {
	f := newEstimateFixture(16)

	_, err := f.svc.Upload(context.Background(), upload("a.pdf", pdfContent()))
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)

	// Undeclared size is caught while reading.
	in := upload("a.pdf", pdfContent())
	in.Size = 0
	_, err = f.svc.Upload(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestEstimateService_Upload_ExtractionFailed(t *testing.T) {
	f := newEstimateFixture(1024)
	f.extractor.On("Extract", mock.Anything, mock.Anything).Return(nil, domain.ErrExtractionFailed)

	_, err := f.svc.Upload(context.Background(), upload("a.pdf", pdfContent()))

	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
	f.parser.AssertNotCalled(t, "ParseDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestEstimateService_Upload_NoLineItems(t *testing.T) {
	f := newEstimateFixture(1024)
	f.extractor.On("Extract", mock.Anything, mock.Anything).Return(&port.ExtractOutput{Text: "cover", PageCount: 1}, nil)
	f.parser.On("ParseDocument", "cover", 1, "a.pdf").Return(nil, domain.ErrNoLineItems)

	_, err := f.svc.Upload(context.Background(), upload("a.pdf", pdfContent()))

	assert.ErrorIs(t, err, domain.ErrNoLineItems)
	f.docs.AssertNotCalled(t, "SaveDocument", mock.Anything, mock.Anything)
}

func TestEstimateService_Upload_StoreError(t *testing.T) {
	f := newEstimateFixture(1024)
	f.extractor.On("Extract", mock.Anything, mock.Anything).Return(&port.ExtractOutput{Text: "t", PageCount: 1}, nil)
	f.parser.On("ParseDocument", "t", 1, "a.pdf").Return(&domain.Document{}, nil)
	f.docs.On("SaveDocument", mock.Anything, mock.Anything).Return(errors.New("full"))

	_, err := f.svc.Upload(context.Background(), upload("a.pdf", pdfContent()))

	assert.EqualError(t, err, "saving document: full")
}

func TestEstimateService_GetByID(t *testing.T) {
	f := newEstimateFixture(1024)
	id := uuid.New()
	f.docs.On("GetDocument", mock.Anything, id).Return(nil, domain.ErrDocumentNotFound)

	_, err := f.svc.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestEstimateService_Debug(t *testing.T) {
	f := newEstimateFixture(4096)
	text := strings.Repeat("a", 300) + strings.Repeat("é", 400)
	f.extractor.On("Extract", mock.Anything, mock.Anything).Return(&port.ExtractOutput{
		Text:      text,
		PageCount: 4,
		Pages:     []string{strings.Repeat("a", 300), strings.Repeat("é", 400), "", ""},
	}, nil)

	got, err := f.svc.Debug(context.Background(), upload("d.pdf", pdfContent()))

	require.NoError(t, err)
	assert.Equal(t, "d.pdf", got.Filename)
	assert.Equal(t, 4, got.Pages)
	assert.Equal(t, 700, got.TextLength)
	assert.Equal(t, text, got.RawText)
	assert.Equal(t, strings.Repeat("a", 300)+strings.Repeat("é", 200), got.First500Chars)
	assert.Equal(t, strings.Repeat("a", 100)+strings.Repeat("é", 400), got.Last500Chars)
	assert.Equal(t, []string{strings.Repeat("a", 300), strings.Repeat("é", 400), "", ""}, got.PageTexts)
	f.parser.AssertNotCalled(t, "ParseDocument", mock.Anything, mock.Anything, mock.Anything)
}

func TestEstimateService_Debug_ShortText(t *testing.T) {
	f := newEstimateFixture(4096)
	f.extractor.On("Extract", mock.Anything, mock.Anything).Return(&port.ExtractOutput{Text: "short", PageCount: 1}, nil)

	got, err := f.svc.Debug(context.Background(), upload("d.pdf", pdfContent()))

	require.NoError(t, err)
	assert.Equal(t, "short", got.First500Chars)
	assert.Equal(t, "short", got.Last500Chars)
}
