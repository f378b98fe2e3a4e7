package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type testGreetingSuite struct {
	BaseHubSuite
}

func TestGreetingSuite(t *testing.T) {
	suite.Run(t, &testGreetingSuite{})
}

func (s *testGreetingSuite) TestFullGreetingFlow() {
	run := uuid.NewString()[:8]
	var aliceToken, bobToken, bobID string
	var greetingID string

	s.Run("Step 0: Broker reports serving", func() {
		s.Step(s.T(), "gRPC health check")
		s.WithHealth(func(ctx context.Context, client grpc_health_v1.HealthClient) {
			resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: "greeting-hub.Broker"})
			s.Require().NoError(err)
			s.Require().Equal(grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)
		})
	})

	s.Run("Step 1: Register alice and bob", func() {
		s.Step(s.T(), "Register two users")
		aliceToken, _ = s.Register("alice-" + run + "@example.com")
		bobToken, bobID = s.Register("bob-" + run + "@example.com")
	})

	bob := s.Websocket(bobToken)

	s.Run("Step 2: Alice greets online bob", func() {
		s.Step(s.T(), "Compose greeting")
		var greeting struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		code := s.Call(http.MethodPost, "/greetings", aliceToken, map[string]string{
			"recipient_type": "user",
			"recipient_id":   bobID,
			"message":        "Happy birthday Bob",
		}, &greeting)
		s.Require().Equal(http.StatusCreated, code)
		s.Require().NotEmpty(greeting.ID)
		greetingID = greeting.ID
	})

	s.Run("Step 3: Bob receives it live then sees it delivered", func() {
		s.Step(s.T(), "Websocket frames")
		var created struct {
			Greeting struct {
				ID string `json:"id"`
			} `json:"greeting"`
		}
		s.Require().NoError(json.Unmarshal(s.NextKind(bob, "greeting_created"), &created))
		s.Require().Equal(greetingID, created.Greeting.ID)

		var changed struct {
			Greeting struct {
				Status string `json:"status"`
			} `json:"greeting"`
		}
		s.Require().NoError(json.Unmarshal(s.NextKind(bob, "greeting_status_changed"), &changed))
		s.Require().Equal("delivered", changed.Greeting.Status)
	})

	s.Run("Step 4: Bob's inbox keeps the notification", func() {
		s.Step(s.T(), "Unread notifications")
		var inbox []struct {
			ID         string `json:"id"`
			GreetingID string `json:"greeting_id"`
		}
		code := s.Call(http.MethodGet, "/notifications?unread=true", bobToken, nil, &inbox)
		s.Require().Equal(http.StatusOK, code)
		s.Require().Len(inbox, 1)
		s.Require().Equal(greetingID, inbox[0].GreetingID)

		code = s.Call(http.MethodPost, "/notifications/"+inbox[0].ID+"/read", bobToken, nil, nil)
		s.Require().Equal(http.StatusOK, code)
	})

	s.Run("Step 5: Only the sender may delete", func() {
		s.Step(s.T(), "Delete greeting")
		s.Require().Equal(http.StatusForbidden, s.Call(http.MethodDelete, "/greetings/"+greetingID, bobToken, nil, nil))
		s.Require().Equal(http.StatusNoContent, s.Call(http.MethodDelete, "/greetings/"+greetingID, aliceToken, nil, nil))
		s.NextKind(bob, "greeting_removed")
	})
}
