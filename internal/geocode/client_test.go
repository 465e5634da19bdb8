package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveSearch(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(5 * time.Second)
	c.baseURL = srv.URL
	return c
}

func TestClient_Query(t *testing.T) {
	client := serveSearch(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "부산 모모스커피", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, `[{"lat":"35.2312","lon":"129.0863","display_name":"모모스커피, 부산"}]`)
	})

	coord, err := client.Query(context.Background(), "부산 모모스커피")
	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, 35.2312, coord.Lat, 0.0001)
	assert.InDelta(t, 129.0863, coord.Lon, 0.0001)
}

func TestClient_QueryNoResult(t *testing.T) {
	client := serveSearch(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	coord, err := client.Query(context.Background(), "어디에도 없는 곳")
	require.NoError(t, err, "empty result is a miss, not a fault")
	assert.Nil(t, coord)
}

func TestClient_QueryFaults(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "overloaded", http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `{"not":"an array"}`)
			},
		},
		{
			name: "unparseable coordinate",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `[{"lat":"north","lon":"east"}]`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := serveSearch(t, tt.handler)
			coord, err := client.Query(context.Background(), "q")
			assert.Error(t, err)
			assert.Nil(t, coord)
		})
	}
}
