package storage

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/paymee-charts/internal/benchmark"
	"github.com/san-kum/paymee-charts/internal/palette"
	"github.com/san-kum/paymee-charts/internal/render"
)

const (
	ManifestFile = "manifest.json"
	TableFile    = "benchmark_long.csv"
)

// Store keeps the render manifest and the melted fee table next to the
// rendered images.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type FileEntry struct {
	Chart  string `json:"chart"`
	Path   string `json:"path"`
	Format string `json:"format"`
	Bytes  int64  `json:"bytes"`
	SHA256 string `json:"sha256"`
}

type Manifest struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Palette   string      `json:"palette"`
	Format    string      `json:"format"`
	DPI       int         `json:"dpi"`
	Files     []FileEntry `json:"files"`
}

func NewManifest(paletteName, format string, dpi int) *Manifest {
	return &Manifest{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Palette:   paletteName,
		Format:    format,
		DPI:       dpi,
	}
}

// Record hashes a produced file and appends it to the manifest. Paths are
// stored relative to the store directory when possible.
func (s *Store) Record(m *Manifest, chart, path string) (FileEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileEntry{}, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return FileEntry{}, err
	}

	rel := path
	if r, err := filepath.Rel(s.baseDir, path); err == nil {
		rel = r
	}
	entry := FileEntry{
		Chart:  chart,
		Path:   rel,
		Format: render.FormatFromPath(path),
		Bytes:  n,
		SHA256: hex.EncodeToString(h.Sum(nil)),
	}
	m.Files = append(m.Files, entry)
	return entry, nil
}

// create writes path through fn and reports the error of closing it.
func (s *Store) create(path string, fn func(w io.Writer) error) (err error) {
	if err := s.Init(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

func (s *Store) Save(m *Manifest) error {
	return s.create(filepath.Join(s.baseDir, ManifestFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	})
}

func (s *Store) Load() (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, ManifestFile))
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Verify re-hashes every file listed in the manifest and returns the charts
// whose content changed or went missing.
func (s *Store) Verify(m *Manifest) ([]string, error) {
	var stale []string
	for _, e := range m.Files {
		path := e.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.baseDir, path)
		}
		scratch := &Manifest{}
		got, err := s.Record(scratch, e.Chart, path)
		if err != nil {
			if os.IsNotExist(err) {
				stale = append(stale, e.Chart)
				continue
			}
			return nil, err
		}
		if got.SHA256 != e.SHA256 {
			stale = append(stale, e.Chart)
		}
	}
	return stale, nil
}

// SaveTable writes the melted fee table as CSV, one row per bar.
func (s *Store) SaveTable(t *benchmark.Table, p palette.Palette) (string, error) {
	path := filepath.Join(s.baseDir, TableFile)
	err := s.create(path, func(f io.Writer) error {
		w := csv.NewWriter(f)
		if err := w.Write([]string{"actor", "category", "rate", "label", "color"}); err != nil {
			return err
		}
		for _, o := range t.Melt(p) {
			c, _ := colorful.MakeColor(o.Color)
			row := []string{
				o.Actor,
				o.Category.Title(),
				strconv.FormatFloat(o.Rate, 'f', 2, 64),
				t.Label(o.Actor, o.Category, o.Rate),
				c.Hex(),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// Row is one line of the saved table.
type Row struct {
	Actor    string
	Category benchmark.Category
	Rate     float64
	Label    string
	Color    string
}

func (s *Store) LoadTable() ([]Row, error) {
	f, err := os.Open(filepath.Join(s.baseDir, TableFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Row{}, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != 5 {
			return nil, fmt.Errorf("storage: %s line %d: want 5 fields, got %d", TableFile, i+2, len(rec))
		}
		c, err := benchmark.ParseCategory(rec[1])
		if err != nil {
			return nil, err
		}
		rate, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: %s line %d: %w", TableFile, i+2, err)
		}
		rows = append(rows, Row{Actor: rec[0], Category: c, Rate: rate, Label: rec[3], Color: rec[4]})
	}
	return rows, nil
}
