package slotservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с удалённым сервисом слотов.
//
// Удалённый API постранично отдаёт слоты, поэтому "все доступные слоты"
// приближается запросом одной заведомо большой страницы (pageSize).
// Ошибки возвращаются явно: недоступность сервиса не маскируется под
// пустой список на этом уровне.
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса слотов
func NewClient(baseURL string, timeout time.Duration, pageSize int, log Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListAvailable получает доступные слоты профессионала одной большой страницей
func (c *Client) ListAvailable(ctx context.Context, professionalID int64) ([]*domain.Slot, error) {
	url := fmt.Sprintf("%s/api/v1/professionals/%d/slots?available=true&page_size=%d",
		c.baseURL, professionalID, c.pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrServiceUnavailable, resp.StatusCode, string(body))
	}

	var page SlotListResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if page.HasMore {
		// Страница переполнилась - резолвер доступности видит не все слоты
		c.log.Warn("ListAvailable: professional=%d has more than %d available slots, page truncated",
			professionalID, c.pageSize)
	}

	slots := make([]*domain.Slot, 0, len(page.Items))
	for i := range page.Items {
		slots = append(slots, page.Items[i].ToDomain())
	}

	return slots, nil
}

// SetAvailability обновляет флаг доступности слота в удалённом сервисе
func (c *Client) SetAvailability(ctx context.Context, slotID int64, available bool) error {
	url := fmt.Sprintf("%s/api/v1/slots/%d/availability", c.baseURL, slotID)

	payload, err := json.Marshal(SetAvailabilityRequest{Available: available})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrSlotNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrServiceUnavailable, resp.StatusCode, string(body))
	}
}
