package domain

// CommandAction is one of the fixed assistant intents.
type CommandAction string

const (
	ActionCreateNote     CommandAction = "create_note"
	ActionUploadPDF      CommandAction = "upload_pdf"
	ActionCreateSchedule CommandAction = "create_schedule"
	ActionGetSummaries   CommandAction = "get_summaries"
	ActionUnknown        CommandAction = "unknown"
)

// CommandResult is the dispatcher output for every input, matched or not.
// Data is reserved for future parameterization and is always an empty object
// for now.
type CommandResult struct {
	Action  CommandAction  `json:"action"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}
