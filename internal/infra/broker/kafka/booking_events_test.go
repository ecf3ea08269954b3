package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventurestay/internal/app/dto"
)

func newMockProducer(t *testing.T) (*Producer, *mocks.SyncProducer) {
	t.Helper()
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	mock := mocks.NewSyncProducer(t, cfg)
	return &Producer{sync: mock}, mock
}

func TestPublishBookingCreated(t *testing.T) {
	producer, mock := newMockProducer(t)

	var sent []byte
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(payload []byte) error {
		sent = payload
		return nil
	})

	events := &BookingEvents{Producer: producer, Topic: "adventurestay.bookings"}
	record := dto.BookingRecord{
		EventType:   "booking_created",
		BookingID:   "b-1",
		PackageCode: "TREK-001",
		TotalPrice:  "11000.00",
		Currency:    "INR",
	}
	require.NoError(t, events.PublishBookingCreated(context.Background(), record))

	var decoded dto.BookingRecord
	require.NoError(t, json.Unmarshal(sent, &decoded))
	assert.Equal(t, record, decoded)

	require.NoError(t, producer.Close())
}

func TestPublishBookingCreated_BrokerError(t *testing.T) {
	producer, mock := newMockProducer(t)
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	events := &BookingEvents{Producer: producer, Topic: "adventurestay.bookings"}
	err := events.PublishBookingCreated(context.Background(), dto.BookingRecord{BookingID: "b-2"})
	assert.Error(t, err)

	require.NoError(t, producer.Close())
}

func TestProducerClose_WithoutConnection(t *testing.T) {
	var p Producer
	assert.NoError(t, p.Close())
}
