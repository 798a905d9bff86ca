package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkspect/docverify/constants"
	"github.com/inkspect/docverify/internal/inference"
)

// RecognizeText implements inference.TextRecognizer.
//
// Plain-text files never leave the process: the region band is sliced
// locally and scored with the heuristic confidence. Images go to the
// vision endpoint as a data URL. PDFs are rejected here; rasterize
// them to images before submitting.
func (c *Client) RecognizeText(ctx context.Context, req inference.RecognizeRequest) (inference.OCRResult, []byte, error) {
	switch constants.MapExtToFormat(filepath.Ext(req.FilePath)) {
	case constants.FormatText:
		return c.recognizeLocalText(req)
	case constants.FormatImage:
		return c.recognizeImage(ctx, req)
	default:
		return inference.OCRResult{}, nil, fmt.Errorf("recognize %q: PDF input is not supported; rasterize to an image first", req.FilePath)
	}
}

// recognizeLocalText serves .txt inputs without an HTTP round trip.
func (c *Client) recognizeLocalText(req inference.RecognizeRequest) (inference.OCRResult, []byte, error) {
	b, err := os.ReadFile(req.FilePath)
	if err != nil {
		return inference.OCRResult{}, nil, fmt.Errorf("read text file: %w", err)
	}
	text := inference.Normalize(inference.SliceRegion(string(b), req.Region))

	lang := req.Language
	if lang == "" {
		lang = c.cfg.Language
	}
	out := inference.OCRResult{
		Text:       text,
		Region:     req.Region,
		Language:   lang,
		Confidence: inference.HeuristicConfidence(text),
		ModelNote:  "local text passthrough",
	}
	raw, _ := json.Marshal(out)

	c.logger.Info("ocr.recognize.local",
		"path", req.FilePath,
		"region", req.Region,
		"text_len", len(out.Text),
		"confidence", out.Confidence,
	)
	return out, raw, nil
}

func (c *Client) recognizeImage(ctx context.Context, req inference.RecognizeRequest) (inference.OCRResult, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	attach, dataURL, mimeType := inference.ShouldAttachImage(req)
	if !attach {
		return inference.OCRResult{}, nil, fmt.Errorf("recognize %q: image missing, unreadable, or over the %d MB vision limit", req.FilePath, constants.MaxVisionMBDefault)
	}

	lang := req.Language
	if lang == "" {
		lang = c.cfg.Language
	}

	c.logger.Info("ocr.recognize.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"region", req.Region,
		"language", lang,
		"mime", mimeType,
		"content_hash", req.ContentHashHex,
	)

	schema := inference.BuildOCRResponseSchema(constants.AsStringSlice())
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(lang)},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": buildUserPrompt(req.Region)},
				{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
			}},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := inference.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if err != nil {
		c.logger.Error("ocr.recognize.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return inference.OCRResult{}, raw, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("ocr.recognize.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return inference.OCRResult{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("ocr.recognize.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return inference.OCRResult{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	// Validate strictly; on failure sanitize once and re-validate.
	if err := inference.ValidateJSONAgainstSchema(schema, content); err != nil {
		cleaned, dropped, sErr := inference.NormalizeAndSanitizeJSON(content, c.logger)
		if sErr != nil {
			c.logger.Error("ocr.recognize.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return inference.OCRResult{}, content, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := inference.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("ocr.recognize.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return inference.OCRResult{}, content, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.logger.Warn("ocr.recognize.sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		content = cleaned
	}

	var out inference.OCRResult
	if err := json.Unmarshal(content, &out); err != nil {
		c.logger.Error("ocr.recognize.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return inference.OCRResult{}, content, fmt.Errorf("unmarshal ocr result: %w", err)
	}

	out.Text = inference.Normalize(out.Text)
	if out.Region == "" {
		out.Region = req.Region
	}
	if out.Language == "" {
		out.Language = lang
	}
	if out.Confidence == 0 {
		out.Confidence = inference.HeuristicConfidence(out.Text)
	}

	c.logger.Info("ocr.recognize.ok",
		"req_id", rid,
		"region", out.Region,
		"text_len", len(out.Text),
		"confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

func buildSystemPrompt(language string) string {
	parts := []string{
		"You are a document OCR engine. Return ONLY JSON that matches the JSON Schema provided.",
		"Transcribe the requested page region exactly as printed, preserving line breaks.",
		"Do not translate, summarize, or correct the text.",
		"Reading language hint: " + language + ".",
		"Report your transcription confidence in [0,1] under 'confidence'.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(region string) string {
	var b strings.Builder
	b.WriteString("Transcribe the ")
	if region == "" {
		b.WriteString("entire page")
	} else {
		b.WriteString(strings.ToLower(region))
		b.WriteString(" region of the page")
	}
	b.WriteString(" in the attached image. Return the transcription under 'text'.")
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
