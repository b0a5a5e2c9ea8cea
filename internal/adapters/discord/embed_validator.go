package discord

import (
	"fmt"
)

// Discord's documented hard limits for webhook payloads.
const (
	MaxEmbedsPerMessage = 10
	MaxFieldsPerEmbed   = 25
	MaxContentLength    = 2000
	MaxTitleLength      = 256
	MaxDescriptionLen   = 4096
	MaxFieldNameLength  = 256
	MaxFieldValueLength = 1024
	MaxFooterTextLength = 2048
	MaxAuthorNameLength = 256
)

// EmbedValidator validates payloads against Discord's documented limits.
// The send path never runs it: an unvalidated violation simply surfaces
// as an API rejection, matching the webhook API's own behavior. Callers
// that want pre-flight errors opt in explicitly.
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateMessage validates the full message payload
func (v *EmbedValidator) ValidateMessage(message WebhookMessage) error {
	if len(message.Content) > MaxContentLength {
		return newValidationError("content", fmt.Sprintf("content cannot exceed %d characters", MaxContentLength))
	}

	if len(message.Embeds) > MaxEmbedsPerMessage {
		return newValidationError("embeds", fmt.Sprintf("cannot have more than %d embeds", MaxEmbedsPerMessage))
	}

	for i, embed := range message.Embeds {
		if err := v.ValidateEmbed(embed); err != nil {
			return fmt.Errorf("embed %d: %w", i, err)
		}
	}

	return nil
}

// ValidateEmbed validates a single embed
func (v *EmbedValidator) ValidateEmbed(embed Embed) error {
	if len(embed.Title) > MaxTitleLength {
		return newValidationError("title", fmt.Sprintf("title cannot exceed %d characters", MaxTitleLength))
	}

	if len(embed.Description) > MaxDescriptionLen {
		return newValidationError("description", fmt.Sprintf("description cannot exceed %d characters", MaxDescriptionLen))
	}

	if len(embed.Fields) > MaxFieldsPerEmbed {
		return newValidationError("fields", fmt.Sprintf("cannot have more than %d fields", MaxFieldsPerEmbed))
	}

	for i, field := range embed.Fields {
		if field.Name == "" {
			return newValidationError("field_name", fmt.Sprintf("field %d name cannot be empty", i))
		}
		if field.Value == "" {
			return newValidationError("field_value", fmt.Sprintf("field %d value cannot be empty", i))
		}
		if len(field.Name) > MaxFieldNameLength {
			return newValidationError("field_name", fmt.Sprintf("field %d name cannot exceed %d characters", i, MaxFieldNameLength))
		}
		if len(field.Value) > MaxFieldValueLength {
			return newValidationError("field_value", fmt.Sprintf("field %d value cannot exceed %d characters", i, MaxFieldValueLength))
		}
	}

	if embed.Footer != nil && len(embed.Footer.Text) > MaxFooterTextLength {
		return newValidationError("footer_text", fmt.Sprintf("footer text cannot exceed %d characters", MaxFooterTextLength))
	}

	if embed.Author != nil && len(embed.Author.Name) > MaxAuthorNameLength {
		return newValidationError("author_name", fmt.Sprintf("author name cannot exceed %d characters", MaxAuthorNameLength))
	}

	return nil
}
