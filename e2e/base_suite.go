package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const password = "Greeting-Hub-2026!"

type BaseHubSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration and skips when no hub is running
func (s *BaseHubSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.HubURL == "" {
		s.T().Skip("HUB_URL not set, no hub to run against")
	}
	s.client = &http.Client{Timeout: 10 * time.Second}
}

// Step prints a colorized header for a scenario step
func (s *BaseHubSuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// Call sends a JSON request and decodes the JSON answer into out when out is not nil.
// It returns the status code.
func (s *BaseHubSuite) Call(method, path, token string, body, out any) int {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, s.Config.HubURL+path, payload)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	s.T().Logf("HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		s.T().Logf("RESPONSE:\n%s", data)
	}
	if out != nil && resp.StatusCode < 300 {
		s.Require().NoError(json.Unmarshal(data, out))
	}
	return resp.StatusCode
}

// Register creates a user and returns its token and the user id carried inside
func (s *BaseHubSuite) Register(email string) (string, string) {
	var out struct {
		Token string `json:"token"`
	}
	code := s.Call(http.MethodPost, "/auth/register", "", map[string]string{"email": email, "password": password}, &out)
	s.Require().Equal(http.StatusCreated, code)

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(out.Token, claims)
	s.Require().NoError(err)
	userID, ok := claims["user_id"].(string)
	s.Require().True(ok, "token carries no user_id")
	return out.Token, userID
}

// Websocket opens a live connection for the token
func (s *BaseHubSuite) Websocket(token string) *websocket.Conn {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	url := "ws" + strings.TrimPrefix(s.Config.HubURL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	s.Require().NoError(err, "Failed to open websocket at "+url)
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

// NextKind reads frames until one of the given kind arrives or the deadline passes
func (s *BaseHubSuite) NextKind(conn *websocket.Conn, kind string) json.RawMessage {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var frame struct {
			Kind    string          `json:"kind"`
			Payload json.RawMessage `json:"payload"`
		}
		s.Require().NoError(conn.ReadJSON(&frame), "no %s frame received", kind)
		if frame.Kind == kind {
			return frame.Payload
		}
	}
}

// WithHealth provides a gRPC health client within a contextual test step
func (s *BaseHubSuite) WithHealth(fn func(ctx context.Context, client grpc_health_v1.HealthClient)) {
	conn, err := grpc.NewClient(s.Config.HealthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err, "Failed to connect to gRPC health at "+s.Config.HealthAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	fn(ctx, grpc_health_v1.NewHealthClient(conn))
}
