package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"time"
)

// Speaker produces one narration. Implementations may synthesize remotely;
// they must be safe to call from the narrator's single playback goroutine.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// ConsoleSpeaker prints narration text instead of playing audio. It is the
// fallback when no synthesis key is configured or remote synthesis fails.
type ConsoleSpeaker struct {
	Out io.Writer
}

func NewConsoleSpeaker() *ConsoleSpeaker {
	return &ConsoleSpeaker{Out: os.Stdout}
}

func (s *ConsoleSpeaker) Speak(_ context.Context, text string) error {
	_, err := fmt.Fprintf(s.Out, "🔊 %s\n", text)
	return err
}

// ElevenLabsSpeaker synthesizes speech through the ElevenLabs REST API and
// plays the resulting clip with an external audio player.
type ElevenLabsSpeaker struct {
	apiKey     string
	voiceID    string
	player     string
	httpClient *http.Client
}

type synthesisRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// NewElevenLabsSpeaker creates the speaker. player is the audio command the
// clip is handed to, e.g. afplay or ffplay.
func NewElevenLabsSpeaker(apiKey, voiceID, player string) *ElevenLabsSpeaker {
	return &ElevenLabsSpeaker{
		apiKey:  apiKey,
		voiceID: voiceID,
		player:  player,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Speak synthesizes text and blocks until playback finishes, keeping
// narration ordering in the narrator's hands.
func (s *ElevenLabsSpeaker) Speak(ctx context.Context, text string) error {
	audio, err := s.synthesize(ctx, text)
	if err != nil {
		return err
	}

	clip, err := os.CreateTemp("", "narration_*.mp3")
	if err != nil {
		return err
	}
	defer os.Remove(clip.Name())

	if _, err := clip.Write(audio); err != nil {
		clip.Close()
		return err
	}
	if err := clip.Close(); err != nil {
		return err
	}

	return exec.CommandContext(ctx, s.player, clip.Name()).Run()
}

func (s *ElevenLabsSpeaker) synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: "eleven_multilingual_v2",
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://api.elevenlabs.io/v1/text-to-speech/%s?output_format=mp3_44100_128", s.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("synthesis error (status %d): %s", resp.StatusCode, string(detail))
	}

	return io.ReadAll(resp.Body)
}
