package commander_test

import (
	"context"
	"fmt"
	"testing"

	"eurocompare/pkg/v1/commander"
	"eurocompare/pkg/v1/commander/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUniSendRefreshCommand(t *testing.T) {
	asin := "B0BDHWDR12"
	body := []byte(fmt.Sprintf(`{"asin":"%s"}`, asin))

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, body).Return(tt.senderError)

			cmndr := commander.NewRefreshCommander(sender)
			err := cmndr.SendRefreshCommand(context.TODO(), asin)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}
