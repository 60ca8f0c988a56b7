package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"hanziclash/internal/content"
)

// TTSService fetches and caches Mandarin pronunciation clips for the
// word pool. Files are keyed by word id, so wrapped duplicates of the
// same text get their own clip and lookups never need the text itself.
type TTSService struct {
	audioDir string
}

const (
	ttsRequestTimeout = 10 * time.Second
	ttsLanguage       = "zh-CN"
)

// NewTTSService creates a new TTS service writing into audioDir.
func NewTTSService(audioDir string) *TTSService {
	return &TTSService{audioDir: audioDir}
}

// AudioFilename returns the clip filename for a word id.
func AudioFilename(wordID int) string {
	return fmt.Sprintf("word_%d.mp3", wordID)
}

// GenerateWordAudio fetches the pronunciation clip for a word, reusing a
// cached file when present. Returns the filename (not full path).
func (s *TTSService) GenerateWordAudio(w content.Word) (string, error) {
	filename := AudioFilename(w.ID)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := s.fetchGoogleTTS(w.Text, path); err != nil {
		return "", fmt.Errorf("failed to generate audio for word %d: %w", w.ID, err)
	}
	return filename, nil
}

// WarmPool pre-fetches clips for every word in the pool. Best effort:
// a failed word is reported but does not stop the rest.
func (s *TTSService) WarmPool(pool *content.Pool) (generated int, failed []int) {
	for _, w := range pool.AllItems() {
		if _, err := s.GenerateWordAudio(w); err != nil {
			failed = append(failed, w.ID)
			continue
		}
		generated++
	}
	return generated, failed
}

// fetchGoogleTTS downloads a clip from the Google Translate TTS
// endpoint. Free and keyless, which suits a self-hosted install.
func (s *TTSService) fetchGoogleTTS(text, outputPath string) error {
	baseURL := "https://translate.google.com/translate_tts"

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", ttsLanguage)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	ctx, cancel := context.WithTimeout(context.Background(), ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{Timeout: ttsRequestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}

// DeleteAudioFile removes a cached clip. Missing files are fine.
func (s *TTSService) DeleteAudioFile(filename string) error {
	path := filepath.Join(s.audioDir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}

// CachedFiles lists the MP3 clips currently in the audio directory.
func (s *TTSService) CachedFiles() ([]string, error) {
	files, err := os.ReadDir(s.audioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio directory: %w", err)
	}

	var audioFiles []string
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".mp3" {
			audioFiles = append(audioFiles, file.Name())
		}
	}
	return audioFiles, nil
}
