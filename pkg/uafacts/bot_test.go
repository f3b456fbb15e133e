package uafacts_test

import (
	"testing"

	"github.com/dmitrymomot/browserkit/pkg/uafacts"

	"github.com/stretchr/testify/assert"
)

func TestBotFacts(t *testing.T) {
	tests := []struct {
		name    string
		ua      string
		isBot   bool
		botName string
	}{
		{
			name:    "Googlebot",
			ua:      "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			isBot:   true,
			botName: "Googlebot",
		},
		{
			name:    "Bingbot",
			ua:      "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)",
			isBot:   true,
			botName: "Bingbot",
		},
		{
			name:    "Slack preview fetcher",
			ua:      "Slackbot-LinkExpanding 1.0 (+https://api.slack.com/robots)",
			isBot:   true,
			botName: "Slackbot",
		},
		{
			name:    "generic crawler via pattern",
			ua:      "Mozilla/5.0 (compatible; examplebot/1.2)",
			isBot:   true,
			botName: "Examplebot",
		},
		{
			name:    "spider via pattern",
			ua:      "acme-spider/3.0",
			isBot:   true,
			botName: "Acme-Spider",
		},
		{
			name:  "desktop browser",
			ua:    uaWindows,
			isBot: false,
		},
		{
			name:  "empty",
			ua:    "",
			isBot: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := uafacts.New(tc.ua)
			assert.Equal(t, tc.isBot, f.IsBot())
			if tc.isBot {
				assert.Equal(t, tc.botName, f.BotName())
			}
		})
	}
}
