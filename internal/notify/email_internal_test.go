package notify

import (
	"context"
	"net/smtp"
	"testing"

	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAlert() models.PriceAlert {
	return models.PriceAlert{
		ID:           1,
		ASIN:         "B0BDHWDR12",
		TargetPrice:  300,
		Email:        "watcher@example.com",
		Country:      marketplace.Germany,
		ProductName:  "Wireless Headphones XB-900",
		ProductImage: "https://img.example.com/headphones.jpg",
	}
}

func TestUnitSend(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  []byte
	)

	notifier := NewEmailNotifier(Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "alerts@example.com",
	}, zerolog.Nop())
	notifier.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg
		return nil
	}

	err := notifier.Send(context.TODO(), testAlert(), 289.99, 10.01)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "alerts@example.com", gotFrom)
	assert.Equal(t, []string{"watcher@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "Subject: Price alert - Wireless Headphones XB-900")
	assert.Contains(t, msg, "Content-Type: text/html")
	assert.Contains(t, msg, "289.99")
	assert.Contains(t, msg, "10.01")
	assert.Contains(t, msg, "https://www.amazon.de/dp/B0BDHWDR12")
}

func TestUnitSendDisabled(t *testing.T) {
	notifier := NewEmailNotifier(Config{}, zerolog.Nop())
	notifier.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("shouldn't send with disabled configuration")
		return nil
	}

	err := notifier.Send(context.TODO(), testAlert(), 289.99, 10.01)

	require.NoError(t, err, "disabled delivery should drop the mail silently")
}
