package discord

// Component type and button style constants from Discord's message
// component schema.
const (
	ComponentTypeActionRow = 1
	ComponentTypeButton    = 2

	ButtonStyleLink = 5
)

// WebhookMessage represents the JSON body posted to a Discord webhook.
// The embeds key is always present, as an empty array when no embeds are
// attached; everything else is omitted when unset.
type WebhookMessage struct {
	Content    string      `json:"content,omitempty"`
	Username   string      `json:"username,omitempty"`
	AvatarURL  string      `json:"avatar_url,omitempty"`
	TTS        bool        `json:"tts,omitempty"`
	Embeds     []Embed     `json:"embeds"`
	Components []ActionRow `json:"components,omitempty"`
}

// Embed represents a single Discord embed. Every attribute is optional;
// an entirely empty embed is valid and serializes to {}. Optional
// sub-objects are pointers so that unset means absent rather than an
// empty object, and Color is a pointer so that 0 (black) survives.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Type        string       `json:"type,omitempty"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Color       *int         `json:"color,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Image       *EmbedImage  `json:"image,omitempty"`
	Thumbnail   *EmbedImage  `json:"thumbnail,omitempty"`
	Author      *EmbedAuthor `json:"author,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// EmbedFooter represents a Discord embed footer
type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// EmbedImage represents a Discord embed image or thumbnail
type EmbedImage struct {
	URL string `json:"url"`
}

// EmbedAuthor represents a Discord embed author
type EmbedAuthor struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

// EmbedField represents a named value rendered inside an embed. Fields
// render in insertion order. The inline flag is always serialized.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// ActionRow groups message components; Discord requires buttons to be
// wrapped in one.
type ActionRow struct {
	Type       int          `json:"type"`
	Components []LinkButton `json:"components"`
}

// LinkButton represents a URL button attached below the message
type LinkButton struct {
	Type  int    `json:"type"`
	Style int    `json:"style"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// NewLinkButton creates a link-style button component
func NewLinkButton(label, url string) LinkButton {
	return LinkButton{
		Type:  ComponentTypeButton,
		Style: ButtonStyleLink,
		Label: label,
		URL:   url,
	}
}

// NewActionRow wraps buttons in an action row component
func NewActionRow(buttons ...LinkButton) ActionRow {
	return ActionRow{
		Type:       ComponentTypeActionRow,
		Components: buttons,
	}
}
