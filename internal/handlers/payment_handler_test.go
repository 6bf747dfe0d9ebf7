package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntentRequiresToken(t *testing.T) {
	intents := &fakeIntents{}
	app := newApp(&Router{Payments: NewPaymentHandler(intents)})

	resp := perform(t, app, http.MethodPost, "/create-payment-intent",
		map[string]any{"price": 49.99}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, intents.calls)
}

func TestCreateIntentZeroPrice(t *testing.T) {
	intents := &fakeIntents{}
	app := newApp(&Router{Payments: NewPaymentHandler(intents)})

	resp := perform(t, app, http.MethodPost, "/create-payment-intent",
		map[string]any{"price": 0}, bearerFor(t, "g@x.com"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, intents.calls)
	assert.NotContains(t, readBody(t, resp), "clientSecret")
}

func TestCreateIntent(t *testing.T) {
	var gotPrice float64
	intents := &fakeIntents{
		create: func(price float64) (string, error) {
			gotPrice = price
			return "pi_secret_123", nil
		},
	}
	app := newApp(&Router{Payments: NewPaymentHandler(intents)})

	resp := perform(t, app, http.MethodPost, "/create-payment-intent",
		map[string]any{"price": 49.99}, bearerFor(t, "g@x.com"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 49.99, gotPrice)

	body := decodeBodyMap(t, resp)
	assert.Equal(t, "pi_secret_123", body["clientSecret"])
}

func TestCreateIntentProviderFailure(t *testing.T) {
	intents := &fakeIntents{
		create: func(price float64) (string, error) {
			return "", errors.New("stripe is down")
		},
	}
	app := newApp(&Router{Payments: NewPaymentHandler(intents)})

	resp := perform(t, app, http.MethodPost, "/create-payment-intent",
		map[string]any{"price": 49.99}, bearerFor(t, "g@x.com"))
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.NotContains(t, readBody(t, resp), "stripe is down")
}
