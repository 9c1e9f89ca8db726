/*
Package ai provides optional Gemini analysis of extracted filing disclosures.
*/
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// ItemObservation is one notable disclosure called out by the model.
type ItemObservation struct {
	Item    string `json:"item"`
	Details string `json:"details"`
}

// Analysis is the structured output produced for one filing.
type Analysis struct {
	Summary            []string          `json:"summary"`
	NotableDisclosures []ItemObservation `json:"notable_disclosures"`
}

const systemInstruction = `
You are a financial analyst reviewing SEC filings for a watchlist report.

Your task is to analyze the provided filing text (a raw EDGAR submission,
usually an 8-K) and summarize what was actually disclosed.

Rules:
- Be specific: tie every claim to a number, date, name or contract term from
  the filing. Avoid generic statements.
- For "notable_disclosures", cite the 8-K item number (e.g. "5.02") and give
  the concrete facts disclosed under it: who departed or was appointed,
  deal size and terms, impairment amounts, restructuring charges, record and
  payment dates.
- Ignore boilerplate, safe-harbor language and exhibit indexes.
`

// Summarize asks Gemini for a structured analysis of one filing's text.
func Summarize(ticker, formType, text, apiKey, modelName string) (*Analysis, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	prompt := fmt.Sprintf("Analyze this %s filing by %s:\n\n---\n%s", formType, ticker, text)

	systemContent := &genai.Content{
		Parts: []*genai.Part{
			{Text: systemInstruction},
		},
		Role: "system",
	}

	userContent := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
		Role: "user",
	}

	contents := []*genai.Content{systemContent, userContent}

	resp, err := client.Models.GenerateContent(ctx, modelName, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   getResponseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	respText := resp.Text()

	var analysis Analysis
	if err := json.Unmarshal([]byte(respText), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini JSON response: %w. Raw text: %s", err, respText)
	}

	return &analysis, nil
}

func getResponseSchema() *genai.Schema {
	observationSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"item":    {Type: genai.TypeString, Description: "The 8-K item number, e.g. \"5.02\"."},
			"details": {Type: genai.TypeString, Description: "Specific facts disclosed under this item."},
		},
		Required: []string{"item", "details"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "A list of 2-4 concise bullet points summarizing the filing.",
			},
			"notable_disclosures": {
				Type:        genai.TypeArray,
				Items:       observationSchema,
				Description: "Item-by-item observations with concrete figures and dates.",
			},
		},
		Required: []string{"summary", "notable_disclosures"},
	}
}
