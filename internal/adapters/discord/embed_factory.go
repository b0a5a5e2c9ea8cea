package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elijahgives/webhook-client/pkg/config"
	"github.com/elijahgives/webhook-client/pkg/domain"
)

// EmbedColorDefault is the fallback color for embeds when the
// configuration doesn't set one.
const EmbedColorDefault = 0x5865F2

// EmbedFactory turns domain notifications into Discord embeds
type EmbedFactory struct {
	config *config.WebhookConfig
}

// NewEmbedFactory creates a new embed factory
func NewEmbedFactory(cfg *config.WebhookConfig) *EmbedFactory {
	return &EmbedFactory{
		config: cfg,
	}
}

// CreateAnnouncementEmbed creates an embed for an announcement
func (f *EmbedFactory) CreateAnnouncementEmbed(announcement *domain.Announcement) Embed {
	builder := NewEmbedBuilder().
		WithTitle(announcement.Title).
		WithDescription(announcement.Body).
		WithColor(f.embedColor())

	if announcement.Link != "" {
		builder.WithURL(announcement.Link)
	}

	if announcement.ImageURL != "" {
		builder.SetImage(announcement.ImageURL)
	}

	if !announcement.PublishedAt.IsZero() {
		builder.WithTimestamp(announcement.PublishedAt)
	}

	for _, field := range announcement.Fields {
		builder.AddField(field.Label, field.Value, field.Inline)
	}

	f.addMetadataFields(builder, announcement.Metadata)

	return builder.Build()
}

// CreateAlertEmbed creates an embed for an operational alert
func (f *EmbedFactory) CreateAlertEmbed(alert *domain.Alert) Embed {
	builder := NewEmbedBuilder().
		WithTitle(fmt.Sprintf("[%s] %s", strings.ToUpper(alert.Severity.String()), alert.Title)).
		WithDescription(alert.Message).
		WithColor(alert.Severity.Color())

	if !alert.Timestamp.IsZero() {
		builder.WithTimestamp(alert.Timestamp)
	}

	if alert.Source != "" {
		builder.SetFooter(fmt.Sprintf("source: %s", alert.Source), "")
	}

	for _, field := range alert.Fields {
		builder.AddField(field.Label, field.Value, field.Inline)
	}

	return builder.Build()
}

// addMetadataFields appends metadata entries as inline fields. Keys are
// sorted so the rendered order is deterministic.
func (f *EmbedFactory) addMetadataFields(builder *EmbedBuilder, metadata map[string]string) {
	if len(metadata) == 0 {
		return
	}

	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		if key != "" && metadata[key] != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		builder.AddField(key, metadata[key], true)
	}
}

// embedColor returns the configured embed color or the default
func (f *EmbedFactory) embedColor() int {
	if f.config.EmbedColor != 0 {
		return f.config.EmbedColor
	}
	return EmbedColorDefault
}
