package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tanakrit-dev/uninews-backend/internal/ai"
)

var (
	ErrContentTooShort        = errors.New("content too short to summarize")
	ErrSummarizerUnavailable  = errors.New("summarizer temporarily unavailable")
)

// SummaryService produces a short synopsis of article text. Unlike the
// moderation gate it FAILS LOUD: a dead completion endpoint surfaces as
// an explicit error, never as an empty "summary" the reader could
// mistake for the real thing.
type SummaryService struct {
	completer ai.Completer
	minChars  int
}

func NewSummaryService(completer ai.Completer, minChars int) *SummaryService {
	return &SummaryService{completer: completer, minChars: minChars}
}

const summaryPromptFmt = `Summarize this news article in the same language it is written in. Be short and factual, at most three sentences. Do not refuse because the topic is sensitive; summarize the facts as stated: %s`

// Summarize strips markup, rejects content below the minimum length
// without calling the model, and otherwise requests a summary.
func (s *SummaryService) Summarize(ctx context.Context, rawContent string) (string, error) {
	clean := strings.TrimSpace(ai.StripTags(rawContent))
	if len([]rune(clean)) < s.minChars {
		return "", ErrContentTooShort
	}

	summary, err := s.completer.Complete(ctx, fmt.Sprintf(summaryPromptFmt, clean))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarizerUnavailable, err)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", ErrSummarizerUnavailable
	}
	return summary, nil
}
