package notification

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"energy-dashboard-backend/internal/model"
)

// mockSender is a mock implementation of the Sender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

var testDBSeq atomic.Int64

// newTestDB opens a uniquely named shared-cache in-memory database so every
// pooled connection sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:notiftest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.PushSubscription{}, &model.DeviceSubscription{}))
	return gdb
}

func subscribe(t *testing.T, gdb *gorm.DB, endpoint, deviceID string) {
	require.NoError(t, gdb.Create(&model.PushSubscription{
		Endpoint: endpoint,
		P256DH:   "test_p256dh",
		Auth:     "test_auth",
	}).Error)
	require.NoError(t, gdb.Create(&model.DeviceSubscription{
		Endpoint: endpoint,
		DeviceID: deviceID,
	}).Error)
}

func TestWorkerPool_Dispatch(t *testing.T) {
	wp := NewWorkerPool(1, newTestDB(t), &webpush.Options{}, zerolog.Nop())

	wp.Dispatch(Job{DeviceID: "dev-1", Message: "hello"})

	select {
	case job := <-wp.jobs:
		assert.Equal(t, "dev-1", job.DeviceID)
		assert.Equal(t, "hello", job.Message)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_DeliversToSubscribers(t *testing.T) {
	gdb := newTestDB(t)
	subscribe(t, gdb, "https://example.com/push", "dev-1")
	subscribe(t, gdb, "https://example.com/other", "dev-2")

	wp := NewWorkerPool(1, gdb, &webpush.Options{}, zerolog.Nop())

	var wg sync.WaitGroup
	wg.Add(1)
	wp.SetSender(&mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			assert.Equal(t, "https://example.com/push", sub.Endpoint)
			assert.Equal(t, "Smart AC Unit triggered a usage alert", string(payload))
			wg.Done()
			return &http.Response{
				StatusCode: http.StatusCreated,
				Body:       io.NopCloser(bytes.NewBufferString("")),
			}, nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(Job{DeviceID: "dev-1", Message: "Smart AC Unit triggered a usage alert"})
	wg.Wait()
}

func TestWorkerPool_PrunesExpiredSubscription(t *testing.T) {
	gdb := newTestDB(t)
	subscribe(t, gdb, "https://example.com/expired", "dev-1")

	wp := NewWorkerPool(1, gdb, &webpush.Options{}, zerolog.Nop())

	var wg sync.WaitGroup
	wg.Add(1)
	wp.SetSender(&mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			defer wg.Done()
			return &http.Response{
				StatusCode: http.StatusGone,
				Body:       io.NopCloser(bytes.NewBufferString("")),
			}, nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(Job{DeviceID: "dev-1", Message: "alert"})
	wg.Wait()

	// The 410 must remove both the subscription and its device links.
	assert.Eventually(t, func() bool {
		var subs, links int64
		gdb.Model(&model.PushSubscription{}).Count(&subs)
		gdb.Model(&model.DeviceSubscription{}).Count(&links)
		return subs == 0 && links == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWorkerPool_NoSubscribersIsQuiet(t *testing.T) {
	gdb := newTestDB(t)
	wp := NewWorkerPool(1, gdb, &webpush.Options{}, zerolog.Nop())

	sent := false
	wp.SetSender(&mockSender{
		SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
			sent = true
			return nil, nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	wp.Dispatch(Job{DeviceID: "nobody-watches-this", Message: "alert"})
	time.Sleep(100 * time.Millisecond)

	assert.False(t, sent)
}
