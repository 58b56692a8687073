// A throwaway client for poking a running shenfen server by hand: pulls a
// batch of identities, prints a short table, and saves one rendered card.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"
)

type generateResponse struct {
	Seed       int64            `json:"seed"`
	Count      int              `json:"count"`
	Identities []map[string]any `json:"identities"`
}

type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

func main() {
	base := getenv("SHENFEN_URL", "http://localhost:8080")
	count := getenvInt("COUNT", 5)
	seed := getenvInt("SEED", 0)
	cardOut := getenv("CARD_OUT", "card.png")

	client := &http.Client{Timeout: 30 * time.Second}

	batch, err := fetchBatch(client, base, count, seed)
	if err != nil {
		log.Fatalf("generate failed: %v", err)
	}

	log.Printf("got %d identities (seed %d)", batch.Count, batch.Seed)
	for _, id := range batch.Identities {
		fmt.Printf("  %-8v %-6v %3v  %v  %v\n",
			id["name"], id["gender"], id["age"], id["national_id"], id["city"])
	}

	if getenv("SKIP_CARD", "") != "" {
		return
	}

	backend, size, err := fetchCard(client, base, batch.Seed, cardOut)
	if err != nil {
		log.Fatalf("card failed: %v", err)
	}
	log.Printf("saved %s (%d bytes, avatar backend %s)", cardOut, size, backend)
}

func fetchBatch(client *http.Client, base string, count, seed int) (*generateResponse, error) {
	body, _ := json.Marshal(map[string]any{"count": count, "seed": seed})
	resp, err := client.Post(base+"/api/v1/identities", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, data)
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func fetchCard(client *http.Client, base string, seed int64, path string) (string, int, error) {
	body, _ := json.Marshal(map[string]any{"seed": seed})
	resp, err := client.Post(base+"/api/v1/cards", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, decodeError(resp.StatusCode, data)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", 0, err
	}
	return resp.Header.Get("X-Avatar-Backend"), len(data), nil
}

func decodeError(status int, data []byte) error {
	var e errorResponse
	if json.Unmarshal(data, &e) == nil && e.Error != "" {
		return fmt.Errorf("HTTP %d: %s (%s)", status, e.Error, e.Description)
	}
	return fmt.Errorf("HTTP %d: %s", status, data)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
