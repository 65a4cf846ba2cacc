// suggest-patterns is a development tool: it replays a backup dump
// through the engine, collects transactional messages no pattern
// covered, and asks Gemini for candidate extraction regexes. The output
// is reviewed and hand-edited into the per-institution pattern tables;
// the model is never part of the runtime parse path.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/dvloznov/sms-ledger/internal/banks"
	"github.com/dvloznov/sms-ledger/internal/engine"
	"github.com/dvloznov/sms-ledger/internal/logger"
	"github.com/dvloznov/sms-ledger/internal/smsbackup"
)

const defaultModelName = "gemini-2.5-flash"

// maxSamplesPerBank caps the prompt size per institution.
const maxSamplesPerBank = 20

type suggestion struct {
	Bank      string `json:"bank"`
	Pattern   string `json:"pattern"`
	Kind      string `json:"kind"`
	Rationale string `json:"rationale"`
}

func main() {
	dumpPath := flag.String("dump", "", "SMS backup XML to replay")
	bankFilter := flag.String("bank", "", "only suggest for this institution")
	model := flag.String("model", defaultModelName, "model name")
	flag.Parse()

	log := logger.New()
	if *dumpPath == "" {
		log.Fatal().Msg("-dump is required")
	}

	unmatched, err := collectUnmatched(*dumpPath, *bankFilter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to collect unmatched messages")
	}
	if len(unmatched) == 0 {
		log.Info().Msg("No unmatched transactional messages found")
		return
	}

	ctx := context.Background()
	suggestions, err := suggestPatterns(ctx, *model, unmatched)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate suggestions")
	}

	out, err := json.MarshalIndent(suggestions, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode suggestions")
	}
	fmt.Println(string(out))
}

// collectUnmatched replays the dump and groups malformed-match bodies
// by institution.
func collectUnmatched(path, bankFilter string, log zerolog.Logger) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("collectUnmatched: %w", err)
	}
	defer f.Close()

	e := engine.New(log)
	unmatched := make(map[string][]string)

	err = smsbackup.ReadFunc(f, func(msg smsbackup.Message) error {
		_, outcome := e.ParseMillis(msg.Body, msg.Address, msg.Date)
		if outcome != engine.OutcomeMalformedMatch {
			return nil
		}
		bank := banks.Resolve(msg.Address).Name()
		if bankFilter != "" && bank != bankFilter {
			return nil
		}
		if len(unmatched[bank]) < maxSamplesPerBank {
			unmatched[bank] = append(unmatched[bank], msg.Body)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collectUnmatched: %w", err)
	}
	return unmatched, nil
}

func suggestPatterns(ctx context.Context, model string, unmatched map[string][]string) ([]suggestion, error) {
	prompt := buildPrompt(unmatched)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("suggestPatterns: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("suggestPatterns: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("suggestPatterns: empty response from model")
	}

	clean := cleanModelJSON(rawText)
	var suggestions []suggestion
	if err := json.Unmarshal([]byte(clean), &suggestions); err != nil {
		return nil, fmt.Errorf("suggestPatterns: unmarshal JSON: %w\nraw response: %s", err, rawText)
	}
	return suggestions, nil
}

func buildPrompt(unmatched map[string][]string) string {
	var b strings.Builder
	b.WriteString(
		"You are helping maintain regex-based parsers for bank notification SMS.\n\n" +
			"Task:\n" +
			"- For each sample message below, propose a Go (RE2) regular expression\n" +
			"  that extracts its fields with named capture groups.\n" +
			"- Recognized group names: amount, currency, merchant, account, balance, ref, limit.\n" +
			"- The amount group is mandatory; use the others when the message carries them.\n" +
			"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
			"- Output a JSON array of objects with fields:\n" +
			"  \"bank\": string, \"pattern\": string,\n" +
			"  \"kind\": one of \"income\", \"expense\", \"credit\", \"transfer\", \"investment\",\n" +
			"  \"rationale\": one short sentence.\n" +
			"Return ONLY valid raw JSON.\n" +
			"Do NOT wrap the response in code fences.\n" +
			"Output must begin with \"[\" and end with \"]\".\n\n")

	for bank, bodies := range unmatched {
		fmt.Fprintf(&b, "Institution %q:\n", bank)
		for _, body := range bodies {
			fmt.Fprintf(&b, "---\n%s\n", body)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
