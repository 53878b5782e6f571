package main

import (
	"context"
	"log"
	"os"
	"strings"

	"pitchlens/deck-evaluator/internal/config"
	"pitchlens/deck-evaluator/internal/services"
)

// Ingests the judging reference documents into Qdrant so evaluations can pull
// rubric context. Each document is embedded whole; the guidelines are short
// enough that chunking would only fragment them.
func main() {
	log.Println("🚀 Starting document ingestion...")

	// Load configuration
	cfg := config.Load()

	// Initialize services
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	extractor := services.NewExtractorService()

	ctx := context.Background()

	documents := []struct {
		Path    string
		DocType string
		Name    string
	}{
		{
			Path:    "./reference_docs/judging_rubric.pdf",
			DocType: "judging_rubric",
			Name:    "Hackathon Judging Rubric",
		},
		{
			Path:    "./reference_docs/pitch_guide.pdf",
			DocType: "pitch_guide",
			Name:    "Pitch Deck Structure Guide",
		},
	}

	successCount := 0
	failCount := 0

	for _, doc := range documents {
		log.Printf("\n📄 Processing: %s", doc.Name)
		log.Printf("   Path: %s", doc.Path)
		log.Printf("   Type: %s", doc.DocType)

		// Check if file exists
		if _, err := os.Stat(doc.Path); os.IsNotExist(err) {
			log.Printf("   ⚠️  File not found, skipping...")
			failCount++
			continue
		}

		// Extract text
		log.Printf("   📖 Extracting text...")
		content, err := extractor.ExtractFromFile(doc.Path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		var parts []string
		for _, slide := range content.Slides {
			if slide.Title != "" {
				parts = append(parts, slide.Title)
			}
			parts = append(parts, slide.Body...)
		}
		text := strings.Join(parts, "\n")

		log.Printf("   ✅ Extracted %d pages, %d characters", content.SlideCount, len(text))

		// Embed and store the whole document
		embedding, err := geminiService.GenerateEmbedding(ctx, text)
		if err != nil {
			log.Printf("   ❌ Failed to generate embedding: %v", err)
			failCount++
			continue
		}

		if err := qdrantService.UpsertDocument(ctx, doc.DocType, doc.DocType, text, embedding); err != nil {
			log.Printf("   ❌ Failed to store document: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Successfully ingested %s", doc.Name)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some documents failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All documents ingested successfully!")
}
