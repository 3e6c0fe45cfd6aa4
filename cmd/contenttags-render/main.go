package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-contenttags/pkg/engine"
	"github.com/goliatone/go-contenttags/pkg/modelreg"
	"github.com/goliatone/go-contenttags/pkg/sources/yamlstore"
)

func main() {
	templatePath := flag.String("template", "", "template file to render")
	fixturesPath := flag.String("fixtures", "", "YAML fixtures file providing model records")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *templatePath == "" {
		log.Fatal("a -template file is required")
	}

	if *fixturesPath != "" {
		fixtures, err := yamlstore.LoadFile(*fixturesPath)
		if err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
		if err := fixtures.Register(modelreg.Default()); err != nil {
			log.Fatalf("Failed to register fixtures: %v", err)
		}
	}

	dir, file := filepath.Split(*templatePath)
	if dir == "" {
		dir = "."
	}

	opts := []engine.Option{engine.WithBaseDir(dir)}
	if ext := filepath.Ext(file); ext != "" {
		opts = append(opts, engine.WithExtension(ext))
	}

	eng, err := engine.New(opts...)
	if err != nil {
		log.Fatalf("Failed to set up engine: %v", err)
	}

	page, err := eng.RenderTemplate(file, nil)
	if err != nil {
		log.Fatalf("Failed to render template: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(page), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Rendered page written to %s\n", *output)
	} else {
		fmt.Println(page)
	}
}
