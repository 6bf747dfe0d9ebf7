package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aircnc/aircnc-server/internal/token"
)

const testSecret = "test-secret"

func testTokens() *token.Service {
	return token.New(testSecret)
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	signed, err := testTokens().Issue(map[string]any{"email": email})
	require.NoError(t, err)
	return "Bearer " + signed
}

func newApp(router *Router) *fiber.App {
	if router.Tokens == nil {
		router.Tokens = testTokens()
	}
	if router.Auth == nil {
		router.Auth = NewAuthHandler(router.Tokens)
	}
	if router.Users == nil {
		router.Users = NewUserHandler(&fakeUserStore{})
	}
	if router.Rooms == nil {
		router.Rooms = NewRoomHandler(&fakeRoomStore{})
	}
	if router.Bookings == nil {
		router.Bookings = NewBookingHandler(&fakeBookingStore{}, &fakeMailer{})
	}
	if router.Payments == nil {
		router.Payments = NewPaymentHandler(&fakeIntents{})
	}

	app := fiber.New()
	router.Register(app)
	return app
}

func perform(t *testing.T, app *fiber.App, method, path string, body any, bearer string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBodyMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// Fakes record calls and delegate to optional funcs. A nil func answers
// with zero values so auth-gate tests can assert the call count alone.

type fakeUserStore struct {
	calls       int
	findByEmail func(email string) (bson.M, error)
	upsert      func(email string, fields bson.M) (*mongo.UpdateResult, error)
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (bson.M, error) {
	f.calls++
	if f.findByEmail != nil {
		return f.findByEmail(email)
	}
	return nil, nil
}

func (f *fakeUserStore) Upsert(_ context.Context, email string, fields bson.M) (*mongo.UpdateResult, error) {
	f.calls++
	if f.upsert != nil {
		return f.upsert(email, fields)
	}
	return &mongo.UpdateResult{}, nil
}

type fakeRoomStore struct {
	calls      int
	listAll    func() ([]bson.M, error)
	listByHost func(email string) ([]bson.M, error)
	findByID   func(id string) (bson.M, error)
	insert     func(doc bson.M) (primitive.ObjectID, error)
	setBooked  func(id string, booked bool) (*mongo.UpdateResult, error)
	replace    func(id string, fields bson.M) (*mongo.UpdateResult, error)
	delete     func(id string) (*mongo.DeleteResult, error)
}

func (f *fakeRoomStore) ListAll(_ context.Context) ([]bson.M, error) {
	f.calls++
	if f.listAll != nil {
		return f.listAll()
	}
	return []bson.M{}, nil
}

func (f *fakeRoomStore) ListByHost(_ context.Context, email string) ([]bson.M, error) {
	f.calls++
	if f.listByHost != nil {
		return f.listByHost(email)
	}
	return []bson.M{}, nil
}

func (f *fakeRoomStore) FindByID(_ context.Context, id string) (bson.M, error) {
	f.calls++
	if f.findByID != nil {
		return f.findByID(id)
	}
	return nil, nil
}

func (f *fakeRoomStore) Insert(_ context.Context, doc bson.M) (primitive.ObjectID, error) {
	f.calls++
	if f.insert != nil {
		return f.insert(doc)
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeRoomStore) SetBooked(_ context.Context, id string, booked bool) (*mongo.UpdateResult, error) {
	f.calls++
	if f.setBooked != nil {
		return f.setBooked(id, booked)
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeRoomStore) Replace(_ context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	f.calls++
	if f.replace != nil {
		return f.replace(id, fields)
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeRoomStore) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	f.calls++
	if f.delete != nil {
		return f.delete(id)
	}
	return &mongo.DeleteResult{}, nil
}

type fakeBookingStore struct {
	calls       int
	listByGuest func(email string) ([]bson.M, error)
	listByHost  func(email string) ([]bson.M, error)
	insert      func(doc bson.M) (primitive.ObjectID, error)
	delete      func(id string) (*mongo.DeleteResult, error)
}

func (f *fakeBookingStore) ListByGuest(_ context.Context, email string) ([]bson.M, error) {
	f.calls++
	if f.listByGuest != nil {
		return f.listByGuest(email)
	}
	return []bson.M{}, nil
}

func (f *fakeBookingStore) ListByHost(_ context.Context, email string) ([]bson.M, error) {
	f.calls++
	if f.listByHost != nil {
		return f.listByHost(email)
	}
	return []bson.M{}, nil
}

func (f *fakeBookingStore) Insert(_ context.Context, doc bson.M) (primitive.ObjectID, error) {
	f.calls++
	if f.insert != nil {
		return f.insert(doc)
	}
	return primitive.NewObjectID(), nil
}

func (f *fakeBookingStore) Delete(_ context.Context, id string) (*mongo.DeleteResult, error) {
	f.calls++
	if f.delete != nil {
		return f.delete(id)
	}
	return &mongo.DeleteResult{}, nil
}

type sentMail struct {
	subject string
	to      string
}

type fakeMailer struct {
	sent []sentMail
}

func (f *fakeMailer) Enqueue(subject, _, to string) {
	f.sent = append(f.sent, sentMail{subject: subject, to: to})
}

type fakeIntents struct {
	calls  int
	create func(price float64) (string, error)
}

func (f *fakeIntents) CreateIntent(_ context.Context, price float64) (string, error) {
	f.calls++
	if f.create != nil {
		return f.create(price)
	}
	return "secret_stub", nil
}
