package discord

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedBuilder_EmptyEmbedSerializesToEmptyObject(t *testing.T) {
	embed := NewEmbedBuilder().Build()

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestEmbedBuilder_UnsetAttributesAreAbsent(t *testing.T) {
	embed := NewEmbedBuilder().
		WithTitle("deploy finished").
		Build()

	data, err := json.Marshal(embed)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "title")
	assert.NotContains(t, decoded, "description")
	assert.NotContains(t, decoded, "color")
	assert.NotContains(t, decoded, "footer")
	assert.NotContains(t, decoded, "author")
	assert.NotContains(t, decoded, "fields")
	assert.NotContains(t, decoded, "image")
	assert.NotContains(t, decoded, "thumbnail")
	assert.NotContains(t, decoded, "timestamp")
}

func TestEmbedBuilder_RoundTrip(t *testing.T) {
	embed := NewEmbedBuilder().
		WithTitle("T").
		WithDescription("D").
		AddField("F1", "V1", true).
		Build()

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"T","description":"D","fields":[{"name":"F1","value":"V1","inline":true}]}`, string(data))
}

func TestEmbedBuilder_FieldOrderPreserved(t *testing.T) {
	builder := NewEmbedBuilder()
	builder.AddField("first", "1", false)
	builder.AddField("second", "2", true)
	builder.AddField("third", "3", false)
	// Duplicate names are allowed
	builder.AddField("first", "4", false)

	embed := builder.Build()

	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "first", embed.Fields[0].Name)
	assert.Equal(t, "second", embed.Fields[1].Name)
	assert.Equal(t, "third", embed.Fields[2].Name)
	assert.Equal(t, "first", embed.Fields[3].Name)
	assert.Equal(t, "4", embed.Fields[3].Value)
}

func TestEmbedBuilder_LastWriteWins(t *testing.T) {
	embed := NewEmbedBuilder().
		SetFooter("old footer", "").
		SetFooter("new footer", "https://example.com/icon.png").
		SetImage("https://example.com/old.png").
		SetImage("https://example.com/new.png").
		Build()

	require.NotNil(t, embed.Footer)
	assert.Equal(t, "new footer", embed.Footer.Text)
	assert.Equal(t, "https://example.com/icon.png", embed.Footer.IconURL)

	require.NotNil(t, embed.Image)
	assert.Equal(t, "https://example.com/new.png", embed.Image.URL)
}

func TestEmbedBuilder_TimestampFormattingIsIdempotent(t *testing.T) {
	at := time.Date(2021, 11, 6, 18, 30, 0, 0, time.FixedZone("CET", 3600))

	first := NewEmbedBuilder().WithTimestamp(at).Build()
	second := NewEmbedBuilder().WithTimestamp(at).Build()

	assert.Equal(t, "2021-11-06T17:30:00Z", first.Timestamp)
	assert.Equal(t, first.Timestamp, second.Timestamp)
}

func TestEmbedBuilder_ColorZeroIsSerialized(t *testing.T) {
	embed := NewEmbedBuilder().WithColor(0).Build()

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":0}`, string(data))
}

func TestEmbedBuilder_AuthorAndThumbnail(t *testing.T) {
	embed := NewEmbedBuilder().
		SetAuthor("release-bot", "https://example.com", "https://example.com/avatar.png").
		SetThumbnail("https://example.com/thumb.png").
		Build()

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"author": {"name":"release-bot","url":"https://example.com","icon_url":"https://example.com/avatar.png"},
		"thumbnail": {"url":"https://example.com/thumb.png"}
	}`, string(data))
}

func TestEmbedBuilder_InlineFalseIsExplicit(t *testing.T) {
	embed := NewEmbedBuilder().AddField("F", "V", false).Build()

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fields":[{"name":"F","value":"V","inline":false}]}`, string(data))
}
