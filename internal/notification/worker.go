package notification

import (
	"context"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"energy-dashboard-backend/internal/model"
)

// Job is one alert to fan out to every subscriber watching a device.
type Job struct {
	DeviceID string
	Message  string
}

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// webPushSender is the real Sender backed by the webpush library.
type webPushSender struct{}

func (s *webPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool fans alert notifications out to push subscribers.
type WorkerPool struct {
	size    int
	jobs    chan Job
	db      *gorm.DB
	webpush *webpush.Options
	sender  Sender
	log     zerolog.Logger
}

// NewWorkerPool creates a new worker pool reading subscriptions from db.
func NewWorkerPool(size int, db *gorm.DB, webpushOptions *webpush.Options, log zerolog.Logger) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan Job, size),
		db:      db,
		webpush: webpushOptions,
		sender:  &webPushSender{},
		log:     log,
	}
}

// SetSender replaces the push transport. Tests use it to capture sends.
func (wp *WorkerPool) SetSender(s Sender) { wp.sender = s }

// Start launches the worker goroutines. They exit when ctx is cancelled.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	wp.log.Debug().Int("worker", id).Msg("notification worker started")
	for {
		select {
		case job := <-wp.jobs:
			wp.deliver(ctx, job)
		case <-ctx.Done():
			wp.log.Debug().Int("worker", id).Msg("notification worker shutting down")
			return
		}
	}
}

// Dispatch queues a job for delivery.
func (wp *WorkerPool) Dispatch(job Job) {
	wp.jobs <- job
}

// deliver fetches the subscriptions watching the device and pushes to each.
func (wp *WorkerPool) deliver(ctx context.Context, job Job) {
	var subscriptions []model.PushSubscription
	err := wp.db.WithContext(ctx).
		Joins("JOIN device_subscriptions ds ON ds.endpoint = push_subscriptions.endpoint").
		Where("ds.device_id = ?", job.DeviceID).
		Find(&subscriptions).Error
	if err != nil {
		wp.log.Error().Err(err).Str("device_id", job.DeviceID).Msg("failed to fetch subscriptions")
		return
	}

	if len(subscriptions) == 0 {
		return
	}

	wp.log.Info().Int("subscribers", len(subscriptions)).Str("device_id", job.DeviceID).Msg("sending alert notifications")
	for _, sub := range subscriptions {
		wp.push(ctx, sub, []byte(job.Message))
	}
}

func (wp *WorkerPool) push(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		wp.log.Error().Err(err).Str("endpoint", sub.Endpoint).Msg("failed to send notification")
		return
	}
	defer resp.Body.Close()

	// A 410 means the subscription is gone; prune it from the registry.
	if resp.StatusCode == http.StatusGone {
		wp.log.Info().Str("endpoint", sub.Endpoint).Msg("pruning expired subscription")
		err := wp.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("endpoint = ?", sub.Endpoint).Delete(&model.DeviceSubscription{}).Error; err != nil {
				return err
			}
			return tx.Delete(&model.PushSubscription{Endpoint: sub.Endpoint}).Error
		})
		if err != nil {
			wp.log.Error().Err(err).Str("endpoint", sub.Endpoint).Msg("failed to delete expired subscription")
		}
	}
}
