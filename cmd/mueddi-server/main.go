// cmd/mueddi-server is a compact HTTP server that receives JSON
// encoded search requests and returns JSON encoded responses. It
// loads optional local configuration via godotenv.Load() before
// reading MUEDDI_ACCESS_KEY / MUEDDI_ADDR from the environment.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/vbar/mueddi"
)

// accessKey, if non-empty, must be presented in the incoming request's
// Authorization header exactly as "Bearer <accessKey>".
var accessKey string

type searchRequest struct {
	Query     string   `json:"query"`
	Tolerance int      `json:"tolerance"`
	Words     []string `json:"words"`
}

type searchResponse struct {
	Matches []string `json:"matches"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
		return
	}
	if accessKey != "" && r.Header.Get("Authorization") != "Bearer "+accessKey {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization header mismatch"})
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	dawg, err := mueddi.BuildDawg(req.Words)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	matches, err := mueddi.SearchCollect(req.Query, req.Tolerance, dawg)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if matches == nil {
		matches = []string{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Matches: matches})
}

func main() {
	// Tolerant of a missing .env file; local configuration is optional.
	_ = godotenv.Load()

	accessKey = os.Getenv("MUEDDI_ACCESS_KEY")
	addr := os.Getenv("MUEDDI_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	http.HandleFunc("/search", handleSearch)
	fmt.Printf("mueddi-server listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
