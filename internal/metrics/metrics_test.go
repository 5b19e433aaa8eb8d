package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/adarkz/YellowCarGame-chef/internal/blob"
	"github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1"
	"github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1/yellowcarv1connect"
)

func TestObserverCounters(t *testing.T) {
	m := New()

	m.SpotSubmitted("user-1")
	m.SpotSubmitted("user-2")
	m.FriendshipCreated()
	m.UploadFinished(blob.ResultStored)
	m.UploadFinished(blob.ResultStored)
	m.UploadFinished(blob.ResultNotAnImage)

	if got := testutil.ToFloat64(m.spotsSubmitted); got != 2 {
		t.Errorf("expected 2 spots, got %v", got)
	}
	if got := testutil.ToFloat64(m.friendshipsCreated); got != 1 {
		t.Errorf("expected 1 friendship, got %v", got)
	}
	if got := testutil.ToFloat64(m.uploads.WithLabelValues(blob.ResultStored)); got != 2 {
		t.Errorf("expected 2 stored uploads, got %v", got)
	}
	if got := testutil.ToFloat64(m.uploads.WithLabelValues(blob.ResultNotAnImage)); got != 1 {
		t.Errorf("expected 1 rejected upload, got %v", got)
	}
}

func TestInterceptorCountsByCode(t *testing.T) {
	m := New()

	path, handler := yellowcarv1connect.NewCarServiceHandler(
		yellowcarv1connect.UnimplementedCarServiceHandler{},
		connect.WithInterceptors(m.Interceptor()),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := yellowcarv1connect.NewCarServiceClient(http.DefaultClient, server.URL)
	for i := 0; i < 3; i++ {
		_, err := client.GetLeaderboard(context.Background(), connect.NewRequest(&yellowcarv1.GetLeaderboardRequest{}))
		if connect.CodeOf(err) != connect.CodeUnimplemented {
			t.Fatalf("expected unimplemented, got %v", err)
		}
	}

	counter := m.rpcRequests.WithLabelValues(yellowcarv1connect.CarServiceGetLeaderboardProcedure, "unimplemented")
	if got := testutil.ToFloat64(counter); got != 3 {
		t.Errorf("expected 3 requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.rpcInFlight); got != 0 {
		t.Errorf("expected no in-flight RPCs, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.SpotSubmitted("user-1")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "yellowcar_game_spots_submitted_total 1") {
		t.Errorf("expected spots counter in output, got:\n%s", body)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("expected Go runtime metrics in output")
	}
}
