package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort      = "8082"
	defaultAPIKey    = "avatar-service-secret-key"
	defaultLatencyMs = "100"
	defaultShape     = "data_b64"
)

// Magic seeds let tests force a specific backend behavior. Any request whose
// seed ends in one of these values gets the matching response instead of an
// image.
const (
	seedFiltered  = 666 // content filter error
	seedEmptyList = 667 // 200 with an empty data list (the other filter signal)
	seedRateLimit = 429 // 429 Too Many Requests
	seedDown      = 503 // 503 Service Unavailable
	seedSlow      = 888 // responds after an extra 5s, for timeout tests
)

type generateRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	Size      string `json:"size"`
	Seed      int64  `json:"seed"`
	Watermark bool   `json:"watermark"`
}

type imageItem struct {
	URL         string `json:"url,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

type contentItem struct {
	Type        string `json:"type"`
	ImageBase64 string `json:"image_base64,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type outputItem struct {
	Content []contentItem `json:"content"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	apiKey    = getEnv("API_KEY", defaultAPIKey)
	latencyMs = getEnvInt("LATENCY_MS", defaultLatencyMs)
	// shape selects the success payload: data_b64, data_url, output_b64 or
	// output_url. The real service answers in any of them, so the client has
	// to cope with all four.
	shape = getEnv("RESPONSE_SHAPE", defaultShape)
)

func main() {
	port := getEnv("PORT", defaultPort)

	http.HandleFunc("/health", handleHealth)
	http.HandleFunc("/images/generations", handleGenerate)
	http.HandleFunc("/images/", handleImageFetch)

	log.Printf("🎨 Mock Avatar Generation API starting on port %s", port)
	log.Printf("📝 API Key: %s", apiKey)
	log.Printf("⏱️  Simulated latency: %dms", latencyMs)
	log.Printf("📦 Response shape: %s", shape)

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "avatar-service",
		"version": "1.0.0",
	})
}

func handleGenerate(w http.ResponseWriter, r *http.Request) {
	// Simulate latency
	time.Sleep(time.Duration(latencyMs) * time.Millisecond)

	log.Printf("📥 Incoming request: %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

	if r.Method != http.MethodPost {
		sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "only POST is supported")
		return
	}

	auth := r.Header.Get("Authorization")
	if auth == "" {
		sendError(w, http.StatusUnauthorized, "missing_key", "Authorization header required")
		return
	}
	if auth != "Bearer "+apiKey {
		sendError(w, http.StatusUnauthorized, "invalid_key", "invalid API key")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}

	width, height, err := parseSize(req.Size)
	if err != nil {
		sendError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	switch mod1000(req.Seed) {
	case seedFiltered:
		log.Printf("🚫 Content filter triggered (magic seed): %d", req.Seed)
		sendError(w, http.StatusBadRequest, "content_filter", "output image did not pass the content filter")
		return
	case seedEmptyList:
		log.Printf("🚫 Empty image list (magic seed): %d", req.Seed)
		sendJSON(w, http.StatusOK, map[string]any{"data": []imageItem{}})
		return
	case seedRateLimit:
		log.Printf("🛑 Rate limit (magic seed): %d", req.Seed)
		sendError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
		return
	case seedDown:
		log.Printf("💥 Backend down (magic seed): %d", req.Seed)
		sendError(w, http.StatusServiceUnavailable, "unavailable", "generation backend unavailable")
		return
	case seedSlow:
		log.Printf("🐌 Slow response (magic seed): %d", req.Seed)
		time.Sleep(5 * time.Second)
	}

	img := renderPNG(req.Seed, width, height)
	imageURL := fmt.Sprintf("http://%s/images/%d_%dx%d.png", r.Host, req.Seed, width, height)

	var body any
	switch shape {
	case "data_url":
		body = map[string]any{"data": []imageItem{{URL: imageURL}}}
	case "output_b64":
		body = map[string]any{"output": []outputItem{{Content: []contentItem{
			{Type: "text"},
			{Type: "image", ImageBase64: base64.StdEncoding.EncodeToString(img)},
		}}}}
	case "output_url":
		body = map[string]any{"output": []outputItem{{Content: []contentItem{
			{Type: "image", ImageURL: imageURL},
		}}}}
	default:
		body = map[string]any{"data": []imageItem{{ImageBase64: base64.StdEncoding.EncodeToString(img)}}}
	}

	sendJSON(w, http.StatusOK, body)
	log.Printf("✅ Generated %dx%d portrait for seed %d (model=%s, %d bytes)", width, height, req.Seed, req.Model, len(img))
}

// handleImageFetch serves the "signed URL" variants. The path encodes the
// same parameters the generation call used, so the bytes match what the
// base64 shapes would have carried.
func handleImageFetch(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/images/")
	name = strings.TrimSuffix(name, ".png")

	var seed int64
	var width, height int
	if _, err := fmt.Sscanf(name, "%d_%dx%d", &seed, &width, &height); err != nil {
		http.NotFound(w, r)
		return
	}

	img := renderPNG(seed, width, height)
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(img)
	log.Printf("🖼️  Served image %s (%d bytes)", r.URL.Path, len(img))
}

// renderPNG draws a deterministic flat-color "portrait": a tinted background
// with a darker head-and-torso block derived from the seed. Same seed and
// size always produce identical bytes.
func renderPNG(seed int64, width, height int) []byte {
	h := uint64(seed)*1103515245 + 12345

	bg := color.RGBA{R: uint8(180 + h%60), G: uint8(180 + (h>>8)%60), B: uint8(190 + (h>>16)%50), A: 255}
	skin := color.RGBA{R: uint8(200 + (h>>24)%40), G: uint8(160 + (h>>32)%40), B: uint8(130 + (h>>40)%30), A: 255}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, bg)
		}
	}

	// Head: centered ellipse in the upper half.
	cx, cy := width/2, height/3
	rx, ry := width/4, height/4
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if x < 0 || y < 0 || x >= width || y >= height {
				continue
			}
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1.0 {
				img.SetRGBA(x, y, skin)
			}
		}
	}

	// Torso: block across the bottom third.
	for y := height * 2 / 3; y < height; y++ {
		for x := width / 6; x < width*5/6; x++ {
			img.SetRGBA(x, y, color.RGBA{R: skin.R / 2, G: skin.G / 2, B: uint8(100 + (h>>48)%80), A: 255})
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func mod1000(seed int64) int64 {
	m := seed % 1000
	if m < 0 {
		m = -m
	}
	return m
}

func parseSize(size string) (int, int, error) {
	var width, height int
	if _, err := fmt.Sscanf(size, "%dx%d", &width, &height); err != nil {
		return 0, 0, fmt.Errorf("size must look like 512x512, got %q", size)
	}
	if width < 1 || height < 1 || width > 4096 || height > 4096 {
		return 0, 0, fmt.Errorf("size out of range: %q", size)
	}
	return width, height, nil
}

func sendJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func sendError(w http.ResponseWriter, code int, errCode, message string) {
	sendJSON(w, code, map[string]any{"error": apiError{Code: errCode, Message: message}})
	log.Printf("❌ Error response: %d - %s (%s)", code, message, errCode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key, defaultValue string) int {
	value := getEnv(key, defaultValue)
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  Invalid integer value for %s, using default: %s", key, defaultValue)
		intValue, _ = strconv.Atoi(defaultValue)
	}
	return intValue
}
