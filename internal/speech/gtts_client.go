package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const googleTTSEndpoint = "https://translate.google.com/translate_tts"

// GoogleTTSClient calls the unauthenticated Translate TTS endpoint and
// saves the synthesized mp3 to a file.
type GoogleTTSClient struct {
	endpoint string
	lang     string
	httpCli  *http.Client
}

func NewGoogleTTSClient(lang string) *GoogleTTSClient {
	return &GoogleTTSClient{
		endpoint: googleTTSEndpoint,
		lang:     lang,
		httpCli:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *GoogleTTSClient) Synthesize(ctx context.Context, text, outPath string) error {
	q := url.Values{
		"ie":     {"UTF-8"},
		"client": {"tw-ob"},
		"tl":     {c.lang},
		"q":      {text},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	// The endpoint rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tts failed: %s", string(b))
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}
