// Package catalog walks an asset tree and builds one metadata record
// per sprite document it finds.
//
// The scan is best-effort: files that fail to decode are logged and
// skipped so one corrupt asset does not sink the whole pack.
package catalog

import (
	"context"
	"image"
	"io/fs"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-spritecat/ase"
	"badc0de.net/pkg/go-spritecat/sheet"
)

// Record is the cataloged metadata of one sprite document.
type Record struct {
	Path string

	Width, Height int
	ColorMode     string
	Frames        int
	DurationMS    int

	Tags   []string
	Layers []string

	// SpriteBounds is the detected first-sprite rectangle of the
	// rendered first frame, nil when the frame has no content above the
	// alpha threshold.
	SpriteBounds *image.Rectangle
}

// Scan walks root and builds a Record for every file whose extension is
// in cfg.Extensions, decoding up to cfg.Workers assets concurrently.
// Records come back sorted by path.
func Scan(ctx context.Context, root string, cfg Config) ([]Record, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && matchesExtension(path, cfg.Extensions) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", root)
	}

	glog.V(1).Infof("scanning %d assets under %s", len(paths), root)

	detector := sheet.Detector{AlphaThreshold: cfg.AlphaThreshold}

	var mu sync.Mutex
	var records []Record

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := buildRecord(path, detector)
			if err != nil {
				glog.Errorf("skipping %s: %v", path, err)
				return nil
			}
			mu.Lock()
			records = append(records, rec)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Path < records[j].Path })
	return records, nil
}

func matchesExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func buildRecord(path string, detector sheet.Detector) (Record, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Record{}, errors.Wrap(err, "reading asset")
	}

	doc, err := ase.DecodeDocument(data)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		Path:       path,
		Width:      doc.Width,
		Height:     doc.Height,
		ColorMode:  doc.ColorMode.String(),
		Frames:     doc.FrameCount(),
		DurationMS: doc.Duration(),
		Tags:       doc.TagNames(),
	}
	for _, layer := range doc.Layers {
		rec.Layers = append(rec.Layers, layer.Name)
	}

	if bounds, ok := detector.FirstFrameBounds(doc.RenderFrame(0)); ok {
		rec.SpriteBounds = &bounds
	}

	return rec, nil
}
