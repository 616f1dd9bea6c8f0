package social

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/semaphore"

	"github.com/rajasatyajit/ReputationCheck/config"
	apperrors "github.com/rajasatyajit/ReputationCheck/internal/errors"
	"github.com/rajasatyajit/ReputationCheck/internal/models"
)

// Result is the scraper's fixed output schema: one JSON object on stdout.
type Result struct {
	Posts []models.RawSocialPost `json:"posts"`
	Total int                    `json:"total"`
}

// Scraper is the out-of-process discussion-scraper contract
type Scraper interface {
	Scrape(ctx context.Context, query string, channels []string, maxPosts int) (*Result, error)
}

// ExecScraper invokes the scraper as a subprocess with a bounded wait.
// Missing executable, non-zero exit, timeout, and unparsable output map to
// distinct error values; a weighted semaphore bounds concurrent subprocesses
// process-wide.
type ExecScraper struct {
	cfg config.ScraperConfig
	sem *semaphore.Weighted
}

// NewExecScraper creates a subprocess-backed scraper
func NewExecScraper(cfg config.ScraperConfig) *ExecScraper {
	return &ExecScraper{
		cfg: cfg,
		sem: semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
	}
}

// Scrape runs the scraper once and parses its output. The context bounds the
// whole invocation; on expiry the subprocess is killed and ErrTimeout is
// returned.
func (s *ExecScraper) Scrape(ctx context.Context, query string, channels []string, maxPosts int) (*Result, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, apperrors.SourceError{Source: s.cfg.Platform, Stage: "acquire", Err: err}
	}
	defer s.sem.Release(1)

	if _, err := os.Stat(s.cfg.Script); err != nil {
		return nil, apperrors.SourceError{Source: s.cfg.Platform, Stage: "exec", Err: apperrors.ErrScraperNotFound}
	}

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, s.cfg.Command, s.cfg.Script, query, strings.Join(channels, ","), strconv.Itoa(maxPosts))
	cmd.Dir = filepath.Dir(s.cfg.Script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		return nil, apperrors.SourceError{Source: s.cfg.Platform, Stage: "exec", Err: apperrors.ErrTimeout}
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, apperrors.SourceError{Source: s.cfg.Platform, Stage: "exec", Err: apperrors.ErrScraperNotFound}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = fmt.Sprintf("exit status %d", exitErr.ExitCode())
			}
			return nil, apperrors.SourceError{
				Source: s.cfg.Platform,
				Stage:  "exec",
				Err:    errors.New(msg),
			}
		}
		return nil, apperrors.SourceError{Source: s.cfg.Platform, Stage: "exec", Err: err}
	}

	return parseOutput(stdout.String())
}

// parseOutput scans stdout lines in reverse for the last valid JSON object.
// The scraper logs progress to stdout too, so only the final JSON line counts.
func parseOutput(output string) (*Result, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		var result Result
		if err := json.Unmarshal([]byte(line), &result); err == nil {
			return &result, nil
		}
	}
	return nil, apperrors.SourceError{Source: "scraper", Stage: "parse", Err: apperrors.ErrMalformedOutput}
}
