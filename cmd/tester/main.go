package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

// Config drives the tester: it logs in, listens on the websocket and prints what arrives.
type Config struct {
	HubURL   string        `envconfig:"HUB_URL" default:"http://localhost:8080"`
	Email    string        `envconfig:"TESTER_EMAIL" required:"true"`
	Password string        `envconfig:"TESTER_PASSWORD" required:"true"`
	Groups   []string      `envconfig:"TESTER_GROUPS"`
	Duration time.Duration `envconfig:"TESTER_DURATION" default:"30s"`
	Colours  bool          `envconfig:"TESTER_COLOURS" default:"true"`
}

type frame struct {
	Kind   string `json:"kind"`
	Type   string `json:"type"`
	Error  string `json:"error"`
	Target struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	} `json:"target"`
	Payload json.RawMessage `json:"payload"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Tester failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	if !cfg.Colours {
		color.Disable()
	}

	token, err := login(cfg)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	wsURL := "ws" + strings.TrimPrefix(cfg.HubURL, "http") + "/ws"
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		return fmt.Errorf("websocket dial failed: %w", err)
	}
	defer conn.Close()
	color.Green.Printf("Connected to %s as %s\n", wsURL, cfg.Email)

	for _, group := range cfg.Groups {
		join := map[string]any{"type": "join_group", "payload": map[string]string{"group_id": group}}
		if err := conn.WriteJSON(join); err != nil {
			return fmt.Errorf("join %s failed: %w", group, err)
		}
		color.Cyan.Printf("Joined group %s\n", group)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	counts := map[string]int{}
	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			break
		}
		printFrame(f)
		key := f.Kind
		if key == "" {
			key = f.Type
		}
		counts[key]++
	}

	summary(counts)
	return nil
}

func login(cfg Config) (string, error) {
	body, err := json.Marshal(map[string]string{"email": cfg.Email, "password": cfg.Password})
	if err != nil {
		return "", err
	}
	resp, err := http.Post(cfg.HubURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func printFrame(f frame) {
	at := time.Now().Format("15:04:05.000")
	switch {
	case f.Type == "error":
		color.Red.Printf("%s error: %s\n", at, f.Error)
	case strings.HasPrefix(f.Kind, "greeting_"):
		color.Yellow.Printf("%s %s -> %s:%s %s\n", at, f.Kind, f.Target.Type, f.Target.ID, f.Payload)
	case f.Kind == "group_message":
		color.Blue.Printf("%s %s -> %s %s\n", at, f.Kind, f.Target.ID, f.Payload)
	default:
		color.Magenta.Printf("%s %s -> %s:%s %s\n", at, f.Kind, f.Target.Type, f.Target.ID, f.Payload)
	}
}

func summary(counts map[string]int) {
	kinds := make([]string, 0, len(counts))
	total := 0
	for kind, n := range counts {
		kinds = append(kinds, kind)
		total += n
	}
	sort.Strings(kinds)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Kind", "Received"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, kind := range kinds {
		table.Append([]string{kind, strconv.Itoa(counts[kind])})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(total)})
	fmt.Println()
	table.Render()
}
