package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tanakrit-dev/uninews-backend/internal/ai"
)

// Verdict is the outcome of one classification call. It is computed per
// submission, used for the gate decision, and discarded; it is never
// persisted.
type Verdict struct {
	Toxic bool
}

// ModerationService decides whether user text may be persisted. It
// FAILS OPEN: if the classifier is unreachable or returns garbage the
// text is treated as clean, because a broken moderation dependency must
// not block all user participation. Every fail-open is logged at WARN
// so operators can see the gate is down.
//
// This policy is the opposite of SummaryService's fail-loud behavior.
// Keep the two error paths separate.
type ModerationService struct {
	completer ai.Completer
}

func NewModerationService(completer ai.Completer) *ModerationService {
	return &ModerationService{completer: completer}
}

type toxicityVerdict struct {
	IsToxic bool `json:"isToxic"`
}

const moderationPromptFmt = `Analyze the following user comment: %q
If it contains violent, abusive, or toxic language, answer true. If it is safe, answer false.
Reply with ONLY this JSON shape and nothing else: { "isToxic": boolean }`

// Evaluate classifies one piece of user text. It never returns an
// error; failures degrade to a non-toxic verdict.
func (s *ModerationService) Evaluate(ctx context.Context, text string) Verdict {
	prompt := fmt.Sprintf(moderationPromptFmt, text)

	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		slog.Warn("moderation gate failing open: classifier call failed",
			"action", "moderation_fail_open", "error", err.Error())
		return Verdict{Toxic: false}
	}

	var verdict toxicityVerdict
	if err := json.Unmarshal([]byte(ai.StripCodeFence(raw)), &verdict); err != nil {
		slog.Warn("moderation gate failing open: unparseable classifier response",
			"action", "moderation_fail_open", "error", err.Error())
		return Verdict{Toxic: false}
	}

	return Verdict{Toxic: verdict.IsToxic}
}
