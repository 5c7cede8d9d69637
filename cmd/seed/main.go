// Command seed imports a books JSON file into a running ChatLibrary
// server. The server's storage is in-process and transient, so the
// import has to go through the HTTP API rather than a database.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// SeedBook mirrors the /api/seed/books request item.
type SeedBook struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	ISBN            string  `json:"isbn"`
	Description     *string `json:"description,omitempty"`
	Category        *string `json:"category,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
	TotalCopies     int     `json:"total_copies"`
	AvailableCopies int     `json:"available_copies"`
}

// SeedResult mirrors the /api/seed/books response.
type SeedResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	var (
		file   = flag.String("file", "books.json", "path to the books JSON file")
		server = flag.String("server", envOr("SEED_TARGET", "http://localhost:8080"), "base URL of the running server")
	)
	flag.Parse()

	log.Println("Starting seed script...")

	books, err := loadBooksFile(*file)
	if err != nil {
		log.Fatalf("Failed to load books file: %v", err)
	}
	log.Printf("Loaded %d books from %s", len(books), *file)

	count, err := postBooks(*server, books)
	if err != nil {
		log.Fatalf("Failed to import books: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Books imported: %d", count)
}

// loadBooksFile reads and parses a JSON array of books.
func loadBooksFile(path string) ([]SeedBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var books []SeedBook
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return books, nil
}

// postBooks sends the books to the server's import endpoint.
func postBooks(server string, books []SeedBook) (int, error) {
	payload, err := json.Marshal(books)
	if err != nil {
		return 0, fmt.Errorf("marshal books: %w", err)
	}

	resp, err := http.Post(server+"/api/seed/books", "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("post to %s: %w", server, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("server returned status %d: %s", resp.StatusCode, body)
	}

	var result SeedResult
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("parse response: %w", err)
	}
	return result.Count, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
