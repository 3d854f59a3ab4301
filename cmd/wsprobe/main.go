// Command main is a probe client for the feed broadcast channel. It
// logs in, opens the websocket, emits a send_message event and prints
// everything the server broadcasts back.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
)

func main() {
	host := flag.String("host", "localhost:8480", "API server host")
	identifier := flag.String("user", "user0@example.com", "Login identifier (email or username)")
	password := flag.String("password", "password123", "Login password")
	message := flag.String("message", "probe message", "Content to broadcast")
	flag.Parse()

	token, err := login(*host, *identifier, *password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	log.Printf("Logged in as %s", *identifier)

	u := url.URL{Scheme: "ws", Host: *host, Path: "/api/v1/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()
	log.Printf("Connected to %s", u.String())

	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				log.Printf("Read error: %v", err)
				os.Exit(1)
			}
			log.Printf("<- %s", data)
		}
	}()

	event := map[string]any{
		"type":    "send_message",
		"content": *message,
		"token":   token,
	}
	payload, _ := json.Marshal(event)
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		log.Fatalf("Write failed: %v", err)
	}
	log.Printf("-> %s", payload)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	select {
	case <-interrupt:
	case <-time.After(30 * time.Second):
	}

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func login(host, identifier, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	resp, err := http.Post(fmt.Sprintf("http://%s/api/v1/auth/login", host),
		"application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login returned %d", resp.StatusCode)
	}

	var out struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Data.Token == "" {
		return "", fmt.Errorf("no token in response")
	}
	return out.Data.Token, nil
}
