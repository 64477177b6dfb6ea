package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/servicebooking/internal/config"
	testhelpers "github.com/polkiloo/servicebooking/internal/test"
)

func params(n config.NotifyConfig) notifierParams {
	return notifierParams{Config: &config.Config{Notify: n}, Logger: testLogger()}
}

func TestNewNotifierSelectsTransport(t *testing.T) {
	n, err := newNotifier(params(config.NotifyConfig{Provider: config.NotifierLog}))
	require.NoError(t, err)
	assert.IsType(t, &LogNotifier{}, n)

	n, err = newNotifier(params(config.NotifyConfig{Provider: config.NotifierSMTP, SMTPHost: "smtp.example.com", SMTPPort: 25, SenderEmail: "a@example.com"}))
	require.NoError(t, err)
	assert.IsType(t, &SMTPNotifier{}, n)

	n, err = newNotifier(params(config.NotifyConfig{Provider: config.NotifierWebhook, WebhookURL: "http://hooks.example.com/status"}))
	require.NoError(t, err)
	assert.IsType(t, &WebhookNotifier{}, n)

	n, err = newNotifier(params(config.NotifyConfig{Provider: config.NotifierKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "t"}))
	require.NoError(t, err)
	assert.IsType(t, &KafkaNotifier{}, n)

	_, err = newNotifier(params(config.NotifyConfig{Provider: "pigeon"}))
	assert.Error(t, err)
}

func TestNewNotifierAMQP(t *testing.T) {
	original := openAMQP
	defer func() { openAMQP = original }()

	var gotURL, gotExchange string
	openAMQP = func(url, exchange string) (Notifier, error) {
		gotURL, gotExchange = url, exchange
		return &testhelpers.NotifierStub{}, nil
	}
	_, err := newNotifier(params(config.NotifyConfig{Provider: config.NotifierAMQP, AMQPURL: "amqp://guest@localhost", AMQPExchange: "booking.exchange"}))
	require.NoError(t, err)
	assert.Equal(t, "amqp://guest@localhost", gotURL)
	assert.Equal(t, "booking.exchange", gotExchange)

	openAMQP = func(string, string) (Notifier, error) { return nil, errors.New("dial failed") }
	_, err = newNotifier(params(config.NotifyConfig{Provider: config.NotifierAMQP}))
	assert.Error(t, err)
}

func TestRegisterLifecycleClosesNotifier(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	stub := &testhelpers.NotifierStub{}
	registerLifecycle(lc, stub, testLogger())

	lc.RequireStart()
	lc.RequireStop()
	assert.True(t, stub.Closed)
}

func TestModuleProvidesNotifier(t *testing.T) {
	var n Notifier
	app := fxtest.New(t,
		fx.Supply(&config.Config{Notify: config.NotifyConfig{Provider: config.NotifierLog}}, testLogger()),
		Module,
		fx.Populate(&n),
	)
	app.RequireStart()
	defer app.RequireStop()
	assert.NotNil(t, n)
	assert.NoError(t, n.NotifyStatusChange(context.Background(), sampleChange("Booked")))
}
