package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"sort"

	"github.com/lvbind/lvglgen/internal/common"
	"github.com/lvbind/lvglgen/internal/gen"
	"github.com/lvbind/lvglgen/internal/parse"
)

func main() {
	configPath := flag.String("config", "./config.yml", "generator configuration file")
	flag.Parse()

	config, err := common.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	codegen, err := gen.New(config, parse.ClangParser{})
	if err != nil {
		log.Fatalf("Failed to load declarations: %v", err)
	}
	log.Printf("Loaded %d functions from %s", len(codegen.FunctionNames()), config.Input)

	if err := os.MkdirAll(config.Output, os.ModePerm); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	emitter := gen.NewEmitter(config)

	// Widget order is unspecified; sort only for stable file output.
	widgets := codegen.Widgets()
	sort.Slice(widgets, func(i, j int) bool { return widgets[i].Name < widgets[j].Name })

	written := 0
	for _, w := range widgets {
		code, err := emitter.Widget(w)
		if errors.Is(err, common.ErrSkip) {
			continue
		}
		if err != nil {
			log.Fatalf("Failed to generate widget %s: %v", w.Name, err)
		}

		outputFile := path.Join(config.Output, w.Name+".rs")
		if err := os.WriteFile(outputFile, []byte(code), 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", outputFile, err)
		}
		written++
	}

	fmt.Printf("Generated %d widget modules in %s\n", written, config.Output)
}
