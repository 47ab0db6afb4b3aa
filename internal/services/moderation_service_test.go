package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestModerationService_Evaluate(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		err       error
		wantToxic bool
	}{
		{
			name:      "toxic verdict",
			response:  `{ "isToxic": true }`,
			wantToxic: true,
		},
		{
			name:      "clean verdict",
			response:  `{ "isToxic": false }`,
			wantToxic: false,
		},
		{
			name:      "verdict wrapped in json code fence",
			response:  "```json\n{ \"isToxic\": true }\n```",
			wantToxic: true,
		},
		{
			name:      "verdict wrapped in bare code fence",
			response:  "```\n{ \"isToxic\": true }\n```",
			wantToxic: true,
		},
		{
			name:      "classifier error fails open",
			err:       errors.New("connection refused"),
			wantToxic: false,
		},
		{
			name:      "timeout fails open",
			err:       context.DeadlineExceeded,
			wantToxic: false,
		},
		{
			name:      "non-JSON response fails open",
			response:  "I cannot classify this text.",
			wantToxic: false,
		},
		{
			name:      "empty response fails open",
			response:  "",
			wantToxic: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &fakeCompleter{response: tt.response, err: tt.err}
			svc := NewModerationService(completer)

			verdict := svc.Evaluate(context.Background(), "some user comment")
			if verdict.Toxic != tt.wantToxic {
				t.Errorf("Evaluate() toxic = %v, want %v", verdict.Toxic, tt.wantToxic)
			}
			if len(completer.prompts) != 1 {
				t.Errorf("expected exactly one classifier call, got %d", len(completer.prompts))
			}
		})
	}
}

func TestModerationService_PromptContainsText(t *testing.T) {
	completer := &fakeCompleter{response: `{ "isToxic": false }`}
	svc := NewModerationService(completer)

	svc.Evaluate(context.Background(), "you are stupid")

	if len(completer.prompts) != 1 {
		t.Fatalf("expected one call, got %d", len(completer.prompts))
	}
	prompt := completer.prompts[0]
	if !strings.Contains(prompt, `"you are stupid"`) {
		t.Errorf("prompt does not quote the comment text: %q", prompt)
	}
	if !strings.Contains(prompt, "isToxic") {
		t.Errorf("prompt does not pin the JSON shape: %q", prompt)
	}
}
