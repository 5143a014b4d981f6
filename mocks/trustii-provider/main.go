// Mock Trustii verification provider for local development and e2e tests.
// It implements the inquiry submit/retrieve API with deterministic behavior
// controlled by "magic" subject names.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultPort      = "8091"
	defaultAPIKey    = "trustii-provider-secret-key"
	defaultLatencyMs = "100"
)

var (
	apiKey    = getEnv("API_KEY", defaultAPIKey)
	latencyMs = getEnvInt("LATENCY_MS", defaultLatencyMs)
)

type InquiryRequest struct {
	ContactName string   `json:"contactName"`
	SubjectName string   `json:"subjectName"`
	Services    []string `json:"services"`
	Email       string   `json:"email,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags,omitempty"`
}

type Inquiry struct {
	ID           string          `json:"id"`
	CreatedAt    time.Time       `json:"createdAt"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	ExpiresAt    time.Time       `json:"expiresAt"`
	Status       string          `json:"status"`
	Cancellable  bool            `json:"cancellable"`
	CreditStatus string          `json:"creditStatus"`
	Services     []string        `json:"services"`
	Tags         []string        `json:"tags,omitempty"`
	ContactName  string          `json:"contactName"`
	SubjectName  string          `json:"subjectName"`
	Email        string          `json:"email,omitempty"`
	PhoneNumber  string          `json:"phoneNumber,omitempty"`
	Language     string          `json:"language"`
	Report       json.RawMessage `json:"report,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

var (
	mu        sync.Mutex
	inquiries = map[string]*Inquiry{}
	nextID    = 1
)

func main() {
	port := getEnv("PORT", defaultPort)

	http.HandleFunc("/health", handleHealth)
	http.HandleFunc("/inquiries", handleInquiries)
	http.HandleFunc("/inquiries/", handleInquiryByID)

	log.Printf("Mock Trustii provider starting on port %s", port)
	log.Printf("API Key: %s", apiKey)
	log.Printf("Simulated latency: %dms", latencyMs)

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "trustii-provider",
		"version": "1.0.0",
	})
}

func handleInquiries(w http.ResponseWriter, r *http.Request) {
	time.Sleep(time.Duration(latencyMs) * time.Millisecond)
	log.Printf("incoming request: %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

	if !checkAuth(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "only POST is supported")
		return
	}

	var req InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.SubjectName == "" || req.ContactName == "" || len(req.Services) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", "missing required fields")
		return
	}

	// Magic subject names steer the mock's behavior for tests.
	if strings.Contains(strings.ToUpper(req.SubjectName), "REJECT") {
		writeError(w, http.StatusBadGateway, "submission_rejected", "provider rejected the inquiry")
		return
	}

	mu.Lock()
	id := fmt.Sprintf("mock-inquiry-%04d", nextID)
	nextID++
	now := time.Now().UTC()
	inq := &Inquiry{
		ID:           id,
		CreatedAt:    now,
		ExpiresAt:    now.Add(30 * 24 * time.Hour),
		Status:       "Pending",
		Cancellable:  true,
		CreditStatus: creditStatus(req.Services),
		Services:     req.Services,
		Tags:         req.Tags,
		ContactName:  req.ContactName,
		SubjectName:  req.SubjectName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Language:     req.Language,
	}
	inquiries[id] = inq
	mu.Unlock()

	// COMPLETE subjects finish immediately with a passing report.
	if strings.Contains(strings.ToUpper(req.SubjectName), "COMPLETE") {
		complete(inq)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(inq)
}

func handleInquiryByID(w http.ResponseWriter, r *http.Request) {
	time.Sleep(time.Duration(latencyMs) * time.Millisecond)
	log.Printf("incoming request: %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

	if !checkAuth(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "only GET is supported")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/inquiries/")

	mu.Lock()
	inq, ok := inquiries[id]
	mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "inquiry "+id+" not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(inq)
}

func complete(inq *Inquiry) {
	mu.Lock()
	defer mu.Unlock()
	now := time.Now().UTC()
	inq.Status = "Completed"
	inq.Cancellable = false
	inq.CompletedAt = &now
	inq.Report = json.RawMessage(fmt.Sprintf(`{
		"id": "report-%s",
		"status": "completed",
		"created_at": %q,
		"updated_at": %q,
		"results": {
			"identity_verification": {
				"verified": true,
				"full_name": %q
			}
		},
		"summary": {
			"overall_status": "pass",
			"total_checks": 1,
			"passed_checks": 1,
			"failed_checks": 0,
			"pending_checks": 0
		}
	}`, inq.ID, now.Format(time.RFC3339), now.Format(time.RFC3339), inq.SubjectName))
}

func creditStatus(services []string) string {
	for _, s := range services {
		if s == "credit" {
			return "Available"
		}
	}
	return "NotIncluded"
}

func checkAuth(w http.ResponseWriter, r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	if auth != "Bearer "+apiKey {
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing API key")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errCode,
		Message: message,
		Code:    code,
	})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key, fallback string) int {
	v := getEnv(key, fallback)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 100
	}
	return n
}
