package main

import (
	"flag"
	"io/fs"
	"os"

	"github.com/3-lines-studio/banner"
	"github.com/3-lines-studio/banner/internal/adapters/cli"
	"github.com/3-lines-studio/banner/internal/config"
	"github.com/3-lines-studio/banner/web"
)

func main() {
	configPath := flag.String("config", "configuration.yml", "configuration file")
	outDir := flag.String("out", "", "output directory (overrides export-dir)")
	strict := flag.Bool("strict", false, "fail when referenced assets are missing")
	flag.Parse()

	output := cli.NewOutput()
	output.PrintHeader("Banner Export")

	cfg, err := config.Load(*configPath)
	if err != nil {
		output.PrintError("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	dir := cfg.ExportDir
	if *outDir != "" {
		dir = *outDir
	}

	var public fs.FS = web.Public()
	if cfg.AssetDir != "" {
		public = os.DirFS(cfg.AssetDir)
	}

	app := banner.New(public,
		banner.WithTitle(cfg.Title),
		banner.WithLang(cfg.Lang),
		banner.WithStylesheet(cfg.Stylesheet),
	)

	report := cli.NewExportReport(output, dir)

	result, err := app.Export(dir)
	report.AddFiles(result.Files...)
	report.AddMissing(result.Missing...)
	if err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}

	report.Print()

	if *strict && report.HasWarnings() {
		output.PrintError("Referenced assets are missing")
		os.Exit(1)
	}

	output.PrintDone("Export completed successfully")
}
