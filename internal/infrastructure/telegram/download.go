package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/txed-bike-bot/internal/domain/repository"
)

// MaxDownloadSize yuklab olinadigan fayl hajmi chegarasi (5MB)
const MaxDownloadSize = 5 * 1024 * 1024

// FileAPI fayl ma'lumotini olish uchun kerakli qism
type FileAPI interface {
	GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error)
}

type downloader struct {
	api      FileAPI
	token    string
	endpoint string
	client   *http.Client
}

// NewDownloader Telegram fayl yuklovchi
func NewDownloader(api FileAPI, token string, client *http.Client) repository.FileDownloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &downloader{api: api, token: token, endpoint: tgbotapi.FileEndpoint, client: client}
}

// Download faylni yuklab olish
func (d *downloader) Download(ctx context.Context, fileID string) ([]byte, error) {
	file, err := d.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file %s: %w", fileID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(d.endpoint, d.token, file.FilePath), nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file %s: status %d", fileID, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxDownloadSize {
		return nil, fmt.Errorf("file %s is larger than %d bytes", fileID, MaxDownloadSize)
	}
	return data, nil
}
