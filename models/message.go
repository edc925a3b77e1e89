package models

// MessageFilterResult is the outcome of running a message through the
// content guard. A blocked message is a successful filter result, not an
// error: the messaging pipeline still logs the attempt.
type MessageFilterResult struct {
	Filtered    bool     `json:"filtered"`
	Content     string   `json:"content"`
	Warnings    []string `json:"warnings,omitempty"`
	Blocked     bool     `json:"blocked"`
	BlockReason string   `json:"block_reason,omitempty"`
}
