package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dmarkov/coindrop/internal/config"
	"github.com/dmarkov/coindrop/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type mailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Service dispatches verification mails to the external notifier gateway
// asynchronously. Delivery is best-effort: a send failure is logged and
// retried but never propagated back to the caller's request.
type Service struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.NotifierAddress,
		client:     client,
		workerPool: NewWorkerPool(10),
	}
}

// SendOTP enqueues a verification-code mail. It only fails when the
// worker queue cannot accept the task before ctx is done. Delivery runs
// detached from ctx: the originating request finishing (and cancelling
// its context) must not drop the mail or cut the retry loop short.
func (s *Service) SendOTP(ctx context.Context, email, code string) error {
	sendCtx := context.WithoutCancel(ctx)
	return s.workerPool.AddTask(ctx, func() error {
		return s.deliver(sendCtx, email, code)
	})
}

func (s *Service) deliver(ctx context.Context, email, code string) error {
	payload, err := json.Marshal(mailRequest{
		To:      email,
		Subject: "Your coindrop verification code",
		Body:    fmt.Sprintf("Your verification code is %s", code),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	url := s.url + "/api/mail"
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, err := s.client.Post(url, headers, bytes.NewReader(payload))
			if err == nil && statusCode >= http.StatusInternalServerError {
				err = fmt.Errorf("notifier returned status %d", statusCode)
			}
			if err == nil {
				if statusCode >= http.StatusBadRequest {
					zap.L().Error("notifier rejected mail request",
						zap.Int("status", statusCode), zap.String("email", email))
					return fmt.Errorf("notifier rejected mail request with status %d", statusCode)
				}
				zap.L().Info("verification mail dispatched", zap.String("email", email))
				return nil
			}

			if attempt < maxRetries {
				retryAfter := retryInterval * time.Duration(attempt)
				zap.L().Warn("mail delivery failed, retrying",
					zap.String("email", email), zap.Int("attempt", attempt), zap.Error(err))
				time.Sleep(retryAfter)
				continue
			}
			return fmt.Errorf("failed to deliver mail to %s after %d retries: %w", email, maxRetries, err)
		}
	}
	return nil
}

func (s *Service) Close() {
	s.workerPool.Close()
}
