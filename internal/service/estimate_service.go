package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"xactdiff/internal/domain"
	"xactdiff/internal/port"
)

// previewChars is the size of the head and tail excerpts in a DebugReport.
const previewChars = 500

// UploadInput is the DTO for a single estimate upload.
type UploadInput struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// DebugReport is the raw extraction result for a PDF, without parsing.
type DebugReport struct {
	Filename      string `json:"filename"`
	Pages         int    `json:"pages"`
	TextLength    int    `json:"textLength"`
	RawText       string `json:"rawText"`
	First500Chars string `json:"first500Chars"`
	Last500Chars  string `json:"last500Chars"`

	// PageTexts holds each page's text in page order.
	PageTexts []string `json:"pageTexts"`
}

// DocumentParser turns extracted text into a Document.
type DocumentParser interface {
	ParseDocument(text string, pageCount int, filename string) (*domain.Document, error)
	SummaryStrategy() domain.SummaryStrategy
}

// EstimateService defines the estimate upload contract.
type EstimateService interface {
	// Parse validates, extracts and parses an upload without storing it.
	Parse(ctx context.Context, input UploadInput) (*domain.Document, error)
	// Upload parses an upload and stores the resulting Document.
	Upload(ctx context.Context, input UploadInput) (*domain.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	Debug(ctx context.Context, input UploadInput) (*DebugReport, error)
}

type estimateService struct {
	extractor port.TextExtractor
	parser    DocumentParser
	docs      port.DocumentStore
	maxBytes  int64
}

// NewEstimateService creates a new EstimateService implementation.
func NewEstimateService(
	extractor port.TextExtractor,
	parser DocumentParser,
	docs port.DocumentStore,
	maxBytes int64,
) EstimateService {
	return &estimateService{
		extractor: extractor,
		parser:    parser,
		docs:      docs,
		maxBytes:  maxBytes,
	}
}

func (s *estimateService) Parse(ctx context.Context, input UploadInput) (*domain.Document, error) {
	out, err := s.extract(ctx, input)
	if err != nil {
		return nil, err
	}

	doc, err := s.parser.ParseDocument(out.Text, out.PageCount, input.Filename)
	if err != nil {
		log.Printf("estimateService.Parse: %s: %v", input.Filename, err)
		return nil, err
	}
	return doc, nil
}

func (s *estimateService) Upload(ctx context.Context, input UploadInput) (*domain.Document, error) {
	doc, err := s.Parse(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.docs.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}

	log.Printf("estimateService.Upload: stored document %s (%s, %d line items, %d pages)",
		doc.ID, doc.Filename, len(doc.LineItems), doc.PageCount)
	return doc, nil
}

func (s *estimateService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return s.docs.GetDocument(ctx, id)
}

func (s *estimateService) Debug(ctx context.Context, input UploadInput) (*DebugReport, error) {
	out, err := s.extract(ctx, input)
	if err != nil {
		return nil, err
	}

	runes := []rune(out.Text)
	first := runes
	if len(first) > previewChars {
		first = first[:previewChars]
	}
	last := runes
	if len(last) > previewChars {
		last = last[len(last)-previewChars:]
	}

	return &DebugReport{
		Filename:      input.Filename,
		Pages:         out.PageCount,
		TextLength:    len(runes),
		RawText:       out.Text,
		First500Chars: string(first),
		Last500Chars:  string(last),
		PageTexts:     out.Pages,
	}, nil
}

// extract validates the upload and runs text extraction.
func (s *estimateService) extract(ctx context.Context, input UploadInput) (*port.ExtractOutput, error) {
	data, err := s.readUpload(input)
	if err != nil {
		return nil, err
	}

	out, err := s.extractor.Extract(ctx, data)
	if err != nil {
		log.Printf("estimateService.extract: %s: %v", input.Filename, err)
		return nil, err
	}
	log.Debugf("estimateService.extract: %s: %d pages, %d bytes of text", input.Filename, out.PageCount, len(out.Text))
	return out, nil
}

// readUpload checks extension, size and magic bytes and returns the file contents.
func (s *estimateService) readUpload(input UploadInput) ([]byte, error) {
	if input.Body == nil || input.Filename == "" {
		return nil, domain.ErrMissingFile
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate declared size before reading
	if s.maxBytes > 0 && input.Size > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	var buf bytes.Buffer
	r := input.Body
	if s.maxBytes > 0 {
		r = io.LimitReader(input.Body, s.maxBytes+1)
	}
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if s.maxBytes > 0 && int64(buf.Len()) > s.maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	if buf.Len() == 0 {
		return nil, domain.ErrMissingFile
	}

	// Magic-byte content type detection
	data := buf.Bytes()
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if _, ok := domain.AllowedContentTypes[http.DetectContentType(head)]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	return data, nil
}
