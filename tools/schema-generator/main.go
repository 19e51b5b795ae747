// Command schema-generator regenerates the JSON Schema embedded in the
// config package. Run it after changing the config types:
//
//	go run ./tools/schema-generator
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lecterntools/lectern/config"
)

func main() {
	data, err := config.GenerateSchema()
	if err != nil {
		fatal(err)
	}

	// The config package embeds this file at build time.
	out := filepath.Join("config", "lectern.schema.json")
	if err := os.WriteFile(out, data, 0644); err != nil {
		fatal(err)
	}
	fmt.Println("wrote", out)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "schema-generator:", err)
	os.Exit(1)
}
