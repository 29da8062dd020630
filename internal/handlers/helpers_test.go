package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// fixedNow is the clock used by handler tests.
var fixedNow = time.Date(2024, time.November, 3, 12, 0, 0, 0, time.UTC)

func newTestApp(database *mongo.Database, images ImageStore) *fiber.App {
	h := New(database, images, 5*time.Second)
	h.now = func() time.Time { return fixedNow }

	app := fiber.New(Config())
	h.Register(app)
	return app
}

// do sends a request through app and returns the status and raw body.
func do(t *testing.T, app *fiber.App, method, target string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeObject(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func decodeList(t *testing.T, raw []byte) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

// fakeImages records uploads instead of talking to MinIO.
type fakeImages struct {
	uploaded    []string
	contentType string
	body        []byte
	uploadErr   error
	pingErr     error
}

func (f *fakeImages) Upload(_ context.Context, filename, contentType string, r io.Reader, _ int64) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.uploaded = append(f.uploaded, filename)
	f.contentType = contentType
	f.body = data
	return "http://localhost:9000/campaign-images/" + filename, nil
}

func (f *fakeImages) Ping(context.Context) error {
	return f.pingErr
}

var errUnreachable = errors.New("connection refused")
