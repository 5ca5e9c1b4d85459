package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Analyst represents a chat with the fixed-income risk analyst persona,
// seeded with the current analytics report.
type Analyst struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

const analystInstruction = `
You are a fixed-income risk analyst. The user runs a bond portfolio dashboard;
below is the current analytics report (markdown): per-asset average returns,
volatilities, cumulative returns, the correlation matrix and portfolio risk
metrics. Answer questions about it concisely, quoting figures from the report.
Do not invent figures that are not in the report.

%s
`

// NewAnalyst creates the analyst seeded with the rendered analytics report.
func NewAnalyst(report string) *Analyst {
	return &Analyst{
		ModelName: "gemini-2.5-flash",
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{
				{Text: fmt.Sprintf(analystInstruction, report)},
			}},
		},
	}
}

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (a *Analyst) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content, nil
}
