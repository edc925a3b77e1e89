package messaging

import (
	"carelink/models"

	"go.uber.org/zap"
)

// Guard inspects free-text communication between the two parties. Checks are
// bidirectional unless a rule pins a sender role; the same restrictions apply
// to both sides regardless of booking state.
type Guard interface {
	FilterMessage(content, senderRole string) models.MessageFilterResult
}

// DefaultGuard is the production implementation. It is stateless; a blocked
// message is a successful filter result, not an error.
type DefaultGuard struct {
	Logger *zap.Logger
}

func NewDefaultGuard(logger *zap.Logger) *DefaultGuard {
	return &DefaultGuard{Logger: logger}
}

func (g *DefaultGuard) FilterMessage(content, senderRole string) models.MessageFilterResult {
	result := models.MessageFilterResult{Content: content}

	// Hard tier first: one match fails closed and short-circuits everything,
	// including any soft warnings that would otherwise accumulate.
	for _, rule := range hardRules {
		if rule.SenderRole != "" && rule.SenderRole != senderRole {
			continue
		}
		if rule.Pattern.MatchString(content) {
			if g.Logger != nil {
				g.Logger.Warn("message blocked",
					zap.String("rule", rule.Name),
					zap.String("sender_role", senderRole),
				)
			}
			return models.MessageFilterResult{
				Filtered:    true,
				Content:     blockedContent,
				Blocked:     true,
				BlockReason: rule.BlockReason,
			}
		}
	}

	// Soft tier: every matching category rewrites its text and appends one
	// warning; evaluation continues through the remaining rules.
	for _, rule := range softRules {
		if rule.SenderRole != "" && rule.SenderRole != senderRole {
			continue
		}
		if rule.Pattern.MatchString(result.Content) {
			result.Content = rule.Pattern.ReplaceAllString(result.Content, redactedPlaceholder)
			result.Filtered = true
			result.Warnings = append(result.Warnings, rule.Warning)
		}
	}

	return result
}
