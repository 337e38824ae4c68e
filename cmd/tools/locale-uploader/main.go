// cmd/tools/locale-uploader/main.go
//
// Uploads a locale document JSON file into the Redis document store, after
// validating it against the locale document schema. Schema violations are
// reported as warnings; upload proceeds unless -strict is set.
//
// Usage:
//
//	locale-uploader -file configs/locales/es-ES.json -locale es-ES
//	locale-uploader -file configs/locales/en-US.json -locale en-US -strict
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"astral-content/internal/common/config"
	"astral-content/internal/common/database"
	"astral-content/internal/common/validation"
	"astral-content/internal/locale"
)

func main() {
	filePath := flag.String("file", "", "Path to the locale document JSON file")
	localeCode := flag.String("locale", "", "Locale code (e.g. es-ES)")
	brand := flag.String("brand", "", "Brand key (defaults to the configured brand)")
	strict := flag.Bool("strict", false, "Fail on schema violations instead of warning")
	dryRun := flag.Bool("dry-run", false, "Validate only, do not write to the store")
	flag.Parse()

	if *filePath == "" || *localeCode == "" {
		fmt.Println("Error: -file and -locale are required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatalf("config load failed: %v", err)
	}
	if *brand == "" {
		*brand = cfg.Locale.Brand
	}

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		fatalf("read %s: %v", *filePath, err)
	}

	var doc locale.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		fatalf("parse %s: %v", *filePath, err)
	}

	result := validation.ValidateAgainstSchema(doc, locale.Schema())
	if !result.Valid {
		for _, e := range result.Errors {
			fmt.Printf("Warning: %s: %s\n", e.Field, e.Message)
		}
		if *strict {
			fatalf("document failed schema validation (%d errors)", len(result.Errors))
		}
	}

	if *dryRun {
		fmt.Printf("Validated %s for locale %s (brand %s), dry run, nothing written.\n", *filePath, *localeCode, *brand)
		return
	}

	redis, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		fatalf("redis connection failed: %v", err)
	}
	defer redis.Close()

	ctx := context.Background()
	store := locale.NewRedisStore(redis.Client)
	if err := store.PutDocument(ctx, *localeCode, *brand, doc); err != nil {
		fatalf("upload failed: %v", err)
	}

	fmt.Printf("Uploaded locale document %s (brand %s) from %s\n", *localeCode, *brand, *filePath)
}

func fatalf(format string, args ...interface{}) {
	fmt.Printf("Error: "+format+"\n", args...)
	os.Exit(1)
}
