// Package infrastructure holds adapters for external processes, currently
// the headless Chrome PDF renderer.
package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resume-tailor/internal/model"
)

const mmPerInch = 25.4

// ChromeRenderer prints HTML documents to PDF through a headless Chrome
// instance. Each render gets its own browser context so a crashed render
// cannot poison later ones.
type ChromeRenderer struct {
	chromePath string
	timeout    time.Duration
}

func NewChromeRenderer(chromePath string, timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromeRenderer{chromePath: chromePath, timeout: timeout}
}

// RenderPDF writes the document to a temp file and prints it via the
// CDP Page.printToPDF command. Theme margins are mm; CDP takes inches.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string, theme model.TemplateTheme) ([]byte, error) {
	theme = theme.Normalized()

	dir, err := os.MkdirTemp("", "resume-render-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	htmlPath := filepath.Join(dir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("write html: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("allow-file-access-from-files", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.timeout)
	defer cancelRun()

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		waitForFonts(5*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithMarginTop(theme.PageMarginTopMM / mmPerInch).
				WithMarginRight(theme.PageMarginRightMM / mmPerInch).
				WithMarginBottom(theme.PageMarginBottomMM / mmPerInch).
				WithMarginLeft(theme.PageMarginLeftMM / mmPerInch).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return pdf, nil
}

// waitForFonts polls document.fonts until loaded, giving up after the
// bound. Missing webfonts degrade the output, they do not fail the render.
func waitForFonts(bound time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		deadline := time.Now().Add(bound)
		for time.Now().Before(deadline) {
			var status string
			if err := chromedp.Evaluate(`document.fonts.status`, &status).Do(ctx); err != nil {
				return nil
			}
			if status == "loaded" {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(100 * time.Millisecond):
			}
		}
		return nil
	})
}
