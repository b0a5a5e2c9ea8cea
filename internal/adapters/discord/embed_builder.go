package discord

import (
	"time"
)

// EmbedBuilder accumulates embed attributes and produces an Embed. Only
// attributes that were explicitly set end up in the serialized output.
// Builders are single-owner: concurrent mutation is not supported.
type EmbedBuilder struct {
	embed Embed
}

// NewEmbedBuilder creates an empty embed builder
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{}
}

// WithTitle sets the embed title
func (b *EmbedBuilder) WithTitle(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// WithType sets the embed type (defaults to "rich" on Discord's side)
func (b *EmbedBuilder) WithType(embedType string) *EmbedBuilder {
	b.embed.Type = embedType
	return b
}

// WithDescription sets the embed description
func (b *EmbedBuilder) WithDescription(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// WithURL sets the URL the embed title links to
func (b *EmbedBuilder) WithURL(url string) *EmbedBuilder {
	b.embed.URL = url
	return b
}

// WithColor sets the embed color as an RGB integer
func (b *EmbedBuilder) WithColor(color int) *EmbedBuilder {
	b.embed.Color = &color
	return b
}

// WithTimestamp sets the embed timestamp. The value is rendered once,
// in UTC with RFC 3339 precision, so repeated builds of the same instant
// produce identical output.
func (b *EmbedBuilder) WithTimestamp(timestamp time.Time) *EmbedBuilder {
	b.embed.Timestamp = timestamp.UTC().Format(time.RFC3339)
	return b
}

// SetFooter sets the embed footer; last write wins
func (b *EmbedBuilder) SetFooter(text, iconURL string) *EmbedBuilder {
	b.embed.Footer = &EmbedFooter{Text: text, IconURL: iconURL}
	return b
}

// SetAuthor sets the embed author; last write wins
func (b *EmbedBuilder) SetAuthor(name, url, iconURL string) *EmbedBuilder {
	b.embed.Author = &EmbedAuthor{Name: name, URL: url, IconURL: iconURL}
	return b
}

// SetImage sets the embed image; last write wins
func (b *EmbedBuilder) SetImage(url string) *EmbedBuilder {
	b.embed.Image = &EmbedImage{URL: url}
	return b
}

// SetThumbnail sets the embed thumbnail; last write wins
func (b *EmbedBuilder) SetThumbnail(url string) *EmbedBuilder {
	b.embed.Thumbnail = &EmbedImage{URL: url}
	return b
}

// AddField appends a field to the embed. Insertion order is preserved.
// Discord requires name and value to be non-empty, but violations are
// not checked here; they surface as an API rejection unless the caller
// runs the validator first.
func (b *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	b.embed.Fields = append(b.embed.Fields, EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Build returns the accumulated embed
func (b *EmbedBuilder) Build() Embed {
	return b.embed
}
