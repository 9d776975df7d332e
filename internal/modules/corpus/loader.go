package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

// Loader concatenates the .txt and .pdf files of a directory into one
// string. Text files come first, then PDFs, each group in name order.
type Loader struct {
	log         *logger.Logger
	concurrency int
}

func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log.With("module", "CorpusLoader"), concurrency: 4}
}

func (l *Loader) Load(ctx context.Context, dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("corpus dir not configured")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read corpus dir: %w", err)
	}

	var txts, pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		switch {
		case strings.HasSuffix(lower, ".txt"):
			txts = append(txts, e.Name())
		case strings.HasSuffix(lower, ".pdf"):
			pdfs = append(pdfs, e.Name())
		}
	}
	sort.Strings(txts)
	sort.Strings(pdfs)

	var b strings.Builder
	for _, name := range txts {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		b.WriteString("\n--- " + TextHeader(name) + " ---\n")
		b.Write(raw)
		b.WriteString("\n")
	}

	// Pages are extracted concurrently; results are joined in file order.
	pages := make([][]string, len(pdfs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, name := range pdfs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			texts, err := pdfPages(filepath.Join(dir, name))
			if err != nil {
				l.log.Warn("skipping unreadable pdf", "file", name, "error", err)
				return nil
			}
			pages[i] = texts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	for i, name := range pdfs {
		if pages[i] == nil {
			continue
		}
		b.WriteString("\n--- " + name + " ---\n")
		for _, p := range pages[i] {
			b.WriteString(p)
			b.WriteString("\n")
		}
	}

	l.log.Info("corpus loaded", "dir", dir, "text_files", len(txts), "pdf_files", len(pdfs), "chars", b.Len())
	return b.String(), nil
}

// TextHeader turns "student_guide.txt" into "Student Guide".
func TextHeader(filename string) string {
	name := strings.ReplaceAll(filename, "_", " ")
	name = strings.ReplaceAll(name, ".txt", "")
	return cases.Title(language.Und).String(name)
}

// pdfPages returns the non-empty plain text of each page.
func pdfPages(path string) (out []string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdf open: %w", err)
	}
	defer f.Close()

	out = []string{}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("pdf page %d: %w", i, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, text)
	}
	return out, nil
}
