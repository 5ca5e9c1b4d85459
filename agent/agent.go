// Package agent implements the interactive AI assistant that comments on the
// dashboard's risk analytics.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Analyst
}

// New creates a new Agent around the given analyst. It takes an io.Writer
// for the agent's output (e.g., os.Stdout) and an io.Reader for user input
// (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, analyst *Analyst) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Analyst: analyst,
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Analyst.chat == nil {
		if err := a.Analyst.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to brd risk assist. Type 'bye' to exit.")

	for {
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			if strings.TrimSpace(input) == "" {
				continue
			}
			fmt.Fprintln(a.w, prompt+input)
		} else {
			fmt.Fprint(a.w, prompt)
			line, err := a.r.ReadString('\n')
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			input = strings.TrimSpace(line)
		}
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "bye") {
			fmt.Fprintln(a.w, "bye")
			return nil
		}

		content, err := a.Analyst.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return fmt.Errorf("analyst failed: %w", err)
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
