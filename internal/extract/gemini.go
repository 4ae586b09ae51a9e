package extract

import (
	"context"
	"errors"
	"fmt"
	"lapchart-scraper/internal/components/telemetry"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	report_gemini_upload   = "gemini.upload"
	report_gemini_generate = "gemini.generate"
	report_gemini_delete   = "gemini.delete"
)

const DefaultModel = "gemini-2.5-pro-exp-03-25"

var ErrMissingAPIKey = errors.New("gemini: missing api key")

type GeminiOptions struct {
	APIKey string
	Model  string
	// RequestsPerMinute caps generate calls, the free tier allows 5.
	RequestsPerMinute int
	// BaseURL overrides the API endpoint, empty uses the public service.
	BaseURL string
}

// GeminiModel implements Model with the Gemini API: the chart is uploaded
// through the files API and referenced from a single generate request.
type GeminiModel struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	tel     telemetry.API
}

func NewGeminiModel(ctx context.Context, opts GeminiOptions, tel telemetry.API) (*GeminiModel, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 5
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      opts.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &GeminiModel{
		client:  client,
		model:   opts.Model,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), 1),
		tel:     telemetry.NewScopedAPI("gemini", tel),
	}, nil
}

func (m *GeminiModel) Generate(ctx context.Context, pdfPath, prompt string) (string, error) {
	err := m.limiter.Wait(ctx)
	if err != nil {
		return "", err
	}

	file, err := m.client.Files.UploadFromPath(ctx, pdfPath, &genai.UploadFileConfig{
		MIMEType: "application/pdf",
	})
	if err != nil {
		m.tel.ReportBroken(report_gemini_upload, "err", err, "path", pdfPath)
		return "", fmt.Errorf("gemini: upload %s: %w", pdfPath, err)
	}
	defer func() {
		_, err := m.client.Files.Delete(context.WithoutCancel(ctx), file.Name, nil)
		if err != nil {
			m.tel.ReportWarning(report_gemini_delete, "err", err, "file", file.Name)
		}
	}()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(file.URI, file.MIMEType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	m.tel.ReportDebug("generate content", "model", m.model, "file", file.Name)
	res, err := m.client.Models.GenerateContent(ctx, m.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "text/plain",
	})
	if err != nil {
		m.tel.ReportBroken(report_gemini_generate, "err", err, "model", m.model)
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return res.Text(), nil
}
