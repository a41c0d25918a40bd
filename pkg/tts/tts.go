package tts

import (
	"context"
	"os"
)

type ITTS interface {
	Synthesize(ctx context.Context, text string, accent string) ([]byte, string, error)
}

// New returns the ElevenLabs backend when an API key is configured and the
// Google Translate backend otherwise.
func New() ITTS {
	apiKey := os.Getenv("ELEVENLABS_API_KEY")
	if apiKey != "" {
		return newElevenLabs(apiKey, os.Getenv("ELEVENLABS_VOICE_ID"))
	}

	return newTranslateTTS()
}

// accentLanguage maps a humanized voice accent to a synthesis language code.
func accentLanguage(accent string) string {
	voiceMap := map[string]string{
		"british":    "en-co.uk",
		"australian": "en-au",
		"american":   "en-us",
		"canadian":   "en-ca",
	}

	if lang, ok := voiceMap[accent]; ok {
		return lang
	}
	return "en"
}
