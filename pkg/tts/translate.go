package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// translateTTS is the keyless fallback backend. It has a per-request text
// limit of roughly 200 characters, so long scripts should be previewed in
// fragments.
type translateTTS struct {
	client *http.Client
}

func newTranslateTTS() ITTS {
	return &translateTTS{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (tts *translateTTS) Synthesize(ctx context.Context, text string, accent string) ([]byte, string, error) {
	endpoint := fmt.Sprintf(
		"https://translate.google.com/translate_tts?ie=UTF-8&client=tw-ob&tl=%s&q=%s",
		url.QueryEscape(accentLanguage(accent)),
		url.QueryEscape(text),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := tts.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("translate TTS error: %s", resp.Status)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return audio, "audio/mpeg", nil
}
