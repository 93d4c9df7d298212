package service

import (
	"context"
	"fmt"
	"strings"

	"eodly/internal/logger"
	"eodly/internal/model"

	"google.golang.org/genai"
)

// Polisher turns raw report fields into polished prose. Implementations are
// strictly best-effort: on any failure they fall back to the raw content and
// never surface an error.
type Polisher interface {
	Polish(ctx context.Context, req model.PolishRequest) (summary string, fallback bool)
	SummarizeTeam(ctx context.Context, reports []model.Report) string
}

const summaryUnavailable = "AI summary is currently unavailable. Please check your configuration."

// GeminiPolisher calls the Gemini API. A missing API key leaves the client
// nil and every call takes the fallback path.
type GeminiPolisher struct {
	client *genai.Client
	model  string
}

func NewGeminiPolisher(ctx context.Context, apiKey, model string) *GeminiPolisher {
	p := &GeminiPolisher{model: model}
	if apiKey == "" {
		logger.Warn("polisher: no API key configured, falling back to raw content")
		return p
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.Warn("polisher: client init failed, falling back to raw content", "err", err)
		return p
	}
	p.client = client
	return p
}

func (p *GeminiPolisher) Polish(ctx context.Context, req model.PolishRequest) (string, bool) {
	linksLog := renderLinks(req.Links)
	filesLog := renderFiles(req.Files)

	if p.client == nil {
		return req.Content + linksLog + filesLog, true
	}

	fileNames := make([]string, len(req.Files))
	for i, f := range req.Files {
		fileNames[i] = f.Name
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model,
		genai.Text(polishPrompt(req)), nil)
	if err != nil {
		logger.Warn("polisher: generate failed, falling back to raw content", "err", err)
		return req.Content + linksLog + filesLog, true
	}

	result := resp.Text()
	if result == "" {
		result = req.Content
	}
	// The model sometimes drops the provided links/files; re-append them.
	if linksLog != "" && !strings.Contains(result, first(req.Links)) {
		result += linksLog
	}
	if filesLog != "" && !strings.Contains(result, first(fileNames)) {
		result += filesLog
	}
	return result, false
}

func (p *GeminiPolisher) SummarizeTeam(ctx context.Context, reports []model.Report) string {
	if p.client == nil {
		return summaryUnavailable
	}

	var lines strings.Builder
	for _, r := range reports {
		fmt.Fprintf(&lines, "- %s (%s): %s\n", r.UserName, r.Status, r.Content)
	}
	prompt := fmt.Sprintf(`Based on the following team daily reports, provide a concise 2-sentence executive summary of today's progress and main blockers.

Reports:
%s`, lines.String())

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		logger.Warn("polisher: team summary failed", "err", err)
		return summaryUnavailable
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return "No summary generated."
}

// polishPrompt lays out the report fields for the model; the subject line
// carries the author so the drafted email names who it is from.
func polishPrompt(req model.PolishRequest) string {
	breakLog := "None"
	if len(req.Breaks) > 0 {
		parts := make([]string, len(req.Breaks))
		for i, b := range req.Breaks {
			parts[i] = b.Start + " – " + b.End
		}
		breakLog = strings.Join(parts, ", ")
	}
	fileNames := make([]string, len(req.Files))
	for i, f := range req.Files {
		fileNames[i] = f.Name
	}

	return fmt.Sprintf(`Draft a professional EOD email using the following components.
IMPORTANT: You MUST include the links and files provided at the end of the summary if they are present.

Subject: EOD Report | %s – %s

Details provided:
Shift Schedule: %s – %s
Breaks: %s
Achievements: %s
Blockers: %s
Plan: %s
Links: %s
Files: %s

Please produce a refined, professional version of this report.`,
		req.UserName, req.Date, req.Shift.Start, req.Shift.End, breakLog,
		req.Content, req.Blockers, req.Plan,
		strings.Join(req.Links, ", "), strings.Join(fileNames, ", "))
}

func renderLinks(links []string) string {
	if len(links) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n\n### **Related Links**\n")
	for i, l := range links {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("* " + l)
	}
	return sb.String()
}

func renderFiles(files []model.FileMeta) string {
	if len(files) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n\n### **Attachments**\n")
	for i, f := range files {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("* " + f.Name)
	}
	return sb.String()
}

func first(s []string) string {
	if len(s) == 0 {
		return "___"
	}
	return s[0]
}
