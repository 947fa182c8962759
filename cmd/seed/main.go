package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"jarvis-assistant-be/internal/dto"

	"github.com/fatih/color"
)

// Sample knowledge base. Run once against a live backend to have something
// to chat about.
var sampleDocuments = []*dto.IndexDocumentDTO{
	{
		Id: "doc_001",
		Text: "Go is a statically typed, compiled programming language designed at Google. " +
			"It favors simplicity and fast builds, ships a powerful standard library, and its " +
			"goroutines make concurrent servers straightforward to write.",
		Source: "Go Basics",
	},
	{
		Id: "doc_002",
		Text: "Fiber is an Express-inspired web framework for Go built on top of fasthttp. " +
			"It keeps handlers small, supports middleware chains, and is a common choice for " +
			"JSON APIs that need low latency.",
		Source: "Fiber Guide",
	},
	{
		Id: "doc_003",
		Text: "Machine learning lets systems improve from data instead of hand-written rules. " +
			"The main families are supervised learning, unsupervised learning, and reinforcement " +
			"learning, each suited to different problem shapes.",
		Source: "ML Concepts",
	},
	{
		Id: "doc_004",
		Text: "Retrieval-augmented generation pairs a document retriever with a language model. " +
			"Relevant documents are fetched first and injected into the prompt, which grounds the " +
			"model's answer and cuts down on fabricated facts.",
		Source: "RAG Fundamentals",
	},
	{
		Id: "doc_005",
		Text: "Vector databases store embeddings and answer nearest-neighbor queries. Text is " +
			"mapped to dense vectors, and similar items are found with metrics like cosine " +
			"similarity. Postgres with the pgvector extension is a popular choice.",
		Source: "Vector DB Primer",
	},
	{
		Id: "doc_006",
		Text: "Ollama runs large language models on local hardware. It handles downloading and " +
			"serving models such as LLaMA and Mistral behind a simple HTTP API, so no cloud " +
			"account is needed.",
		Source: "Ollama Intro",
	},
	{
		Id: "doc_007",
		Text: "Embeddings are dense vector representations of text. Modern embedding models map " +
			"sentences to fixed-size vectors that capture semantic meaning, which makes similarity " +
			"comparisons between texts possible.",
		Source: "Embeddings Explained",
	},
	{
		Id: "doc_008",
		Text: "Cosine similarity measures the angle between two vectors and ignores their " +
			"magnitude. For normalized embeddings it coincides with the dot product, which is why " +
			"many vector stores normalize vectors on ingest.",
		Source: "Similarity Metrics",
	},
}

func main() {
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8000"
	}

	log.Println("Indexing sample documents...")

	payload, err := json.Marshal(dto.IndexRequest{Documents: sampleDocuments})
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Post(backendURL+"/index", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		color.Red("✗ Cannot connect to backend at %s", backendURL)
		fmt.Println("Make sure the server is running: go run ./cmd/rest")
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		color.Red("✗ Error: %d", resp.StatusCode)
		fmt.Println(string(body))
		os.Exit(1)
	}

	color.Green("✓ Sample documents indexed successfully!")
	fmt.Println(string(body))
}
