package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"tafseel/backend/internal/localization"
	"tafseel/backend/internal/models"
	"tafseel/backend/internal/preview"
	"tafseel/backend/internal/storage"
	"tafseel/backend/internal/translator"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list":
		slugs, err := storageSvc.ListSlugs()
		if err != nil {
			log.Fatalf("Error listing specs: %v", err)
		}
		for _, slug := range slugs {
			fmt.Println(slug)
		}
	case "delete":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin delete <slug>")
			os.Exit(1)
		}
		slug := os.Args[2]
		if err := storageSvc.DeleteSpec(slug); err != nil {
			log.Fatalf("Error deleting spec: %v", err)
		}
		fmt.Printf("Spec %s has been deleted.\n", slug)
	case "warm":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin warm <slug> [lang]")
			os.Exit(1)
		}
		slug := os.Args[2]
		lang := models.CanonicalLanguage(models.DefaultRawLanguage)
		if len(os.Args) > 3 {
			lang = models.CanonicalLanguage(os.Args[3])
		}
		if err := warmSpec(storageSvc, slug, lang); err != nil {
			log.Fatalf("Error warming spec: %v", err)
		}
		fmt.Printf("Spec %s has been warmed for %s.\n", slug, lang)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

// warmSpec resolves a document's translation gaps against the live provider
// and persists the filled-in copy, so public renders need no network calls.
func warmSpec(s storage.Storage, slug string, lang models.Language) error {
	rec, err := s.GetSpec(slug)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("spec %s not found", slug)
	}

	var doc models.SpecDocument
	if err := json.Unmarshal(rec.Document, &doc); err != nil {
		return fmt.Errorf("stored document for %s is not valid JSON: %w", slug, err)
	}

	dict := localization.NewDictionary()
	if dir := os.Getenv("LOCALES_DIR"); dir != "" {
		if err := dict.LoadDir(dir); err != nil {
			log.Printf("WARN: Failed to load locales from %s: %v", dir, err)
		}
	}

	provider := translator.NewLibreProvider(os.Getenv("TRANSLATE_ENDPOINT"))
	svc := translator.NewService(provider, translator.NewCache())
	resolver := preview.New(localization.NewResolver(dict), svc, true)

	resolved := resolver.ResolveDocument(context.Background(), &doc, lang)

	stored, err := json.Marshal(resolved)
	if err != nil {
		return err
	}
	rec.Document = stored
	return s.SaveSpec(rec)
}
