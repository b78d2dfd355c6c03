// assetscan walks an asset tree, prints one catalog line per sprite
// document, and can write the pack as a montage PNG or a JSON dump.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spritecat/catalog"
)

var (
	root       = flag.String("root", ".", "asset tree to scan")
	configPath = flag.String("config", "", "YAML scan config (default settings when empty)")

	previewPath = flag.String("preview", "", "write a montage PNG of the pack to this path")
	cellSize    = flag.Int("cell", 64, "montage cell size in pixels")
	asJSON      = flag.Bool("json", false, "dump records as JSON instead of the table")
	banner      = flag.Bool("banner", true, "print the startup banner")
)

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *banner && !*asJSON {
		figure.NewFigure("assetscan", "", true).Print()
	}

	cfg := catalog.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = catalog.LoadConfig(*configPath); err != nil {
			glog.Exitf("%v", err)
		}
	}

	records, err := catalog.Scan(context.Background(), *root, cfg)
	if err != nil {
		glog.Exitf("scanning %s: %v", *root, err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			glog.Exitf("encoding records: %v", err)
		}
	} else {
		printRecords(records)
	}

	if *previewPath != "" {
		if err := writePreview(records); err != nil {
			glog.Exitf("%v", err)
		}
	}
}

func printRecords(records []catalog.Record) {
	for _, rec := range records {
		line := fmt.Sprintf("%s: %dx%d %s, %d frame(s), %dms",
			rec.Path, rec.Width, rec.Height, rec.ColorMode, rec.Frames, rec.DurationMS)
		if len(rec.Tags) > 0 {
			line += " tags=" + strings.Join(rec.Tags, ",")
		}
		if rec.SpriteBounds != nil {
			line += fmt.Sprintf(" sprite=%v", *rec.SpriteBounds)
		}
		fmt.Println(line)
	}
	fmt.Printf("%d asset(s)\n", len(records))
}

func writePreview(records []catalog.Record) error {
	img, err := catalog.Montage(records, *cellSize)
	if err != nil {
		return errors.Wrap(err, "building montage")
	}

	f, err := os.Create(*previewPath)
	if err != nil {
		return errors.Wrap(err, "creating preview output")
	}
	defer f.Close()
	return errors.Wrap(png.Encode(f, img), "encoding preview")
}
