package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/elijahgives/webhook-client/internal"
	"github.com/elijahgives/webhook-client/internal/adapters/discord"
)

// webhook-sender posts a single message to the configured webhook and
// exits. Configuration comes from the usual config file / environment
// variables; the message itself comes from flags.
func main() {
	var (
		content     string
		title       string
		description string
		link        string
		imageURL    string
		buttonLabel string
		buttonURL   string
		timestamp   bool
	)

	flag.StringVar(&content, "content", "", "Plain text message content")
	flag.StringVar(&title, "title", "", "Embed title")
	flag.StringVar(&description, "description", "", "Embed description")
	flag.StringVar(&link, "link", "", "URL the embed title links to")
	flag.StringVar(&imageURL, "image", "", "Embed image URL")
	flag.StringVar(&buttonLabel, "button-label", "", "Label for an optional link button")
	flag.StringVar(&buttonURL, "button-url", "", "URL for an optional link button")
	flag.BoolVar(&timestamp, "timestamp", false, "Stamp the embed with the current time")
	flag.Parse()

	notifier := internal.InitializeNotifier()
	client := notifier.Client()

	message := discord.WebhookMessage{Content: content}

	if title != "" || description != "" || imageURL != "" {
		builder := discord.NewEmbedBuilder()
		if title != "" {
			builder.WithTitle(title)
		}
		if description != "" {
			builder.WithDescription(description)
		}
		if link != "" {
			builder.WithURL(link)
		}
		if imageURL != "" {
			builder.SetImage(imageURL)
		}
		if timestamp {
			builder.WithTimestamp(time.Now())
		}
		message.Embeds = []discord.Embed{builder.Build()}
	}

	if buttonLabel != "" && buttonURL != "" {
		message.Components = []discord.ActionRow{
			discord.NewActionRow(discord.NewLinkButton(buttonLabel, buttonURL)),
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.SendMessage(ctx, message); err != nil {
		os.Stderr.WriteString("send failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
