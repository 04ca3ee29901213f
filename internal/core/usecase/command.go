package usecase

import (
	"fmt"
	"strings"

	"github.com/kirillkom/resource-assistant/internal/core/domain"
)

type dispatchRule struct {
	action   domain.CommandAction
	message  string
	keywords []string
}

// dispatchRules is an ordered rule table: rules are evaluated top to bottom
// and the first rule with any matching keyword wins. The order is part of the
// contract: "summarize this pdf and set a reminder" must resolve to the
// upload intent, not the schedule intent.
var dispatchRules = []dispatchRule{
	{
		action:   domain.ActionCreateNote,
		message:  "I can create a note for you. What is the title and content?",
		keywords: []string{"note"},
	},
	{
		action:   domain.ActionUploadPDF,
		message:  "Upload the PDF you'd like summarized.",
		keywords: []string{"pdf", "summarize"},
	},
	{
		action:   domain.ActionCreateSchedule,
		message:  "When should I schedule your reminder?",
		keywords: []string{"schedule", "reminder"},
	},
	{
		action:   domain.ActionGetSummaries,
		message:  "Here are your summaries.",
		keywords: []string{"summaries", "show me"},
	},
}

// DispatchCommand maps a free-form command string to an assistant intent.
// Total and stateless: unmatched input yields ActionUnknown with the original
// (non-normalized) command preserved for display.
func DispatchCommand(command string) domain.CommandResult {
	normalized := strings.ToLower(strings.TrimSpace(command))

	for _, rule := range dispatchRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return domain.CommandResult{
					Action:  rule.action,
					Message: rule.message,
					Data:    map[string]any{},
				}
			}
		}
	}

	return domain.CommandResult{
		Action:  domain.ActionUnknown,
		Message: fmt.Sprintf("Command not recognized: %s", command),
		Data:    map[string]any{},
	}
}
