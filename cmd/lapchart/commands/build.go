package commands

import (
	"context"
	"fmt"
	"lapchart-scraper/internal/components/chrono"
	"lapchart-scraper/internal/components/telemetry"
	"lapchart-scraper/internal/extract"
	"lapchart-scraper/internal/fia"
	"lapchart-scraper/internal/pipeline"
	"lapchart-scraper/lib/restyutil"
	"log/slog"
	"os"
)

// newPipeline wires the fia client, the gemini extractor and the pipeline
// together from `cfg`.
func newPipeline(ctx context.Context, cfg Config) (pipeline.Pipeline, error) {
	tel := telemetry.SlogAPI{}

	err := os.MkdirAll(cfg.OutputDir, 0755)
	if err != nil {
		return pipeline.Pipeline{}, fmt.Errorf("create output dir: %w", err)
	}

	var messages restyutil.MessageOutput
	if *verbose {
		output, err := restyutil.NewFilesystemOutput("<dev_state>/resty/fia")
		if err != nil {
			slog.Warn("http dumps disabled", "err", err)
		} else {
			messages = output
		}
	}

	client := fia.NewClient(fia.ClientOptions{
		UserAgent:        cfg.Fia.UserAgent,
		BypassCloudflare: !cfg.Fia.DisableCloudflareBypass,
		OutputDir:        cfg.OutputDir,
		MessageOutput:    messages,
	}, tel)

	model, err := extract.NewGeminiModel(ctx, extract.GeminiOptions{
		APIKey:            cfg.Gemini.ApiKey,
		Model:             cfg.Gemini.Model,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
		BaseURL:           cfg.Gemini.BaseUrl,
	}, tel)
	if err != nil {
		return pipeline.Pipeline{}, err
	}
	extractor := extract.NewExtractor(model, cfg.OutputDir, tel)

	return pipeline.New(client, extractor, chrono.NewStandardImpl(), tel, pipeline.Options{
		BaseUrl:  cfg.Fia.BaseUrl,
		Pause:    cfg.Pause(),
		Validate: cfg.Validate,
	})
}
