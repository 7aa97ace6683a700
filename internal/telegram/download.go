package telegram

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tele "gopkg.in/telebot.v4"
)

// downloadTimeout is the maximum time to wait for a file download.
const downloadTimeout = 30 * time.Second

// downloadFile fetches a Telegram file by ID and writes it to destPath.
func downloadFile(bot *tele.Bot, fileID, destPath string) error {
	if fileID == "" {
		return fmt.Errorf("invalid file: missing FileID")
	}

	fileInfo, err := bot.FileByID(fileID)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s",
		bot.Token, fileInfo.FilePath)

	client := &http.Client{Timeout: downloadTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("failed to create download dir: %w", err)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
