// Package checker runs a full link check over a documentation tree: it builds the
// document index, scans every page for links, verifies external links through a
// bounded pool and folds the per-file results into run totals.
package checker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/morozRed/mdlinkcheck/internal/anchor"
	"github.com/morozRed/mdlinkcheck/internal/config"
	"github.com/morozRed/mdlinkcheck/internal/docindex"
	"github.com/morozRed/mdlinkcheck/internal/ignore"
	"github.com/morozRed/mdlinkcheck/internal/links"
	"github.com/morozRed/mdlinkcheck/internal/report"
	"github.com/morozRed/mdlinkcheck/internal/verify"
)

// Progress observes a run. Start is called once the page list is known, File after
// each page has been scanned.
type Progress interface {
	Start(files int)
	File(path string, count int)
	Done(count int)
}

type Options struct {
	Config config.Config
	// IgnoreRules are added after Config.Ignore, typically read from .mdlinkcheckignore.
	IgnoreRules []string
	// Verifier checks external links. Nil means an HTTP verifier built from Config.
	Verifier verify.Verifier
	Logger   *slog.Logger
	Progress Progress
}

type Result struct {
	Root     string
	Index    *docindex.Index
	Files    []report.FileResult
	Totals   report.Totals
	Issues   []docindex.Issue
	Duration time.Duration
}

// BuildIndex walks root with the configured ignore rules and front matter keys.
func BuildIndex(ctx context.Context, root string, opts Options) (*docindex.Index, error) {
	cfg := opts.Config
	rules := append(append([]string(nil), cfg.Ignore...), opts.IgnoreRules...)
	return docindex.Build(ctx, docindex.Options{
		Root:        root,
		Extension:   cfg.Extension,
		FrontMatter: cfg.FrontMatter,
		Flattener:   anchor.NewFlattener(cfg.Placeholders),
		Ignore:      ignore.NewMatcher(rules),
		Logger:      opts.Logger,
	})
}

// Run checks every page under root. It fails only when the tree cannot be listed or
// ctx is canceled; everything else is reported through the result.
func Run(ctx context.Context, root string, opts Options) (Result, error) {
	start := time.Now()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config

	idx, err := BuildIndex(ctx, root, opts)
	if err != nil {
		return Result{}, err
	}
	files := idx.Files()
	if opts.Progress != nil {
		opts.Progress.Start(len(files))
	}

	scanner := &pageScanner{
		frontMatter: cfg.FrontMatter,
		extractor:   links.NewExtractor(cfg.Syntax),
		classifier:  links.NewClassifier(cfg.Exclusions, cfg.LocalHosts, cfg.InternalPrefixes),
		resolver:    links.NewResolver(cfg.Remaps),
		index:       idx,
		logger:      logger,
	}

	issues := append([]docindex.Issue(nil), idx.Issues()...)
	reported := make(map[string]bool, len(issues))
	for _, issue := range issues {
		reported[issue.File] = true
	}
	pages := make([]pageScan, 0, len(files))
	var jobs []verify.Job
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		page, issue := scanner.scanFile(path, len(jobs))
		if issue != nil && !reported[issue.File] {
			reported[issue.File] = true
			issues = append(issues, *issue)
		}
		jobs = append(jobs, page.jobs...)
		pages = append(pages, page)
		if opts.Progress != nil {
			opts.Progress.File(path, i+1)
		}
	}

	verifier := opts.Verifier
	if verifier == nil {
		verifier = NewVerifier(cfg)
	}
	outcomes, err := verify.NewPool(verifier, cfg.Workers, logger).Run(ctx, jobs)
	if err != nil {
		return Result{}, fmt.Errorf("failed to verify external links: %w", err)
	}

	results := make([]report.FileResult, 0, len(pages))
	for _, page := range pages {
		results = append(results, page.fold(outcomes))
	}
	if opts.Progress != nil {
		opts.Progress.Done(len(files))
	}

	return Result{
		Root:     root,
		Index:    idx,
		Files:    results,
		Totals:   report.Merge(results),
		Issues:   issues,
		Duration: time.Since(start),
	}, nil
}

// NewVerifier builds the HTTP verifier described by cfg.
func NewVerifier(cfg config.Config) verify.Verifier {
	opts := []verify.Option{
		verify.WithTimeout(cfg.Timeout),
		verify.WithStatusCheck(cfg.CheckStatus),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, verify.WithUserAgent(cfg.UserAgent))
	}
	return verify.NewHTTPVerifier(opts...)
}

type pageScanner struct {
	frontMatter docindex.FrontMatter
	extractor   links.Extractor
	classifier  *links.Classifier
	resolver    *links.Resolver
	index       *docindex.Index
	logger      *slog.Logger
}

func (s *pageScanner) scanFile(path string, firstJob int) (pageScan, *docindex.Issue) {
	page := pageScan{file: path}
	f, err := os.Open(path)
	if err != nil {
		return page, &docindex.Issue{File: path, Severity: "warning", Message: fmt.Sprintf("failed to open page: %v", err)}
	}
	defer f.Close()

	var current links.PageContext
	lineNo := 0
	err = docindex.ScanLines(f, func(line string) {
		lineNo++
		current = current.Observe(line, s.frontMatter)
		for _, link := range s.extractor.Extract(line) {
			page.addLink(s.checkLink(path, lineNo, link, current), firstJob)
		}
	})
	if err != nil {
		return page, &docindex.Issue{File: path, Severity: "warning", Message: fmt.Sprintf("failed to read page: %v", err)}
	}
	return page, nil
}

// checkLink classifies one occurrence. Internal links are settled here; external
// links come back as a pending job.
func (s *pageScanner) checkLink(file string, line int, link string, page links.PageContext) linkCheck {
	switch s.classifier.Classify(link) {
	case links.External:
		return linkCheck{pending: &verify.Job{File: file, Line: line, URL: link}}
	case links.Internal:
		var result report.LinkResult
		result.Stats.InternalLinks = 1
		if links.HasTrailingSlashAfterAnchor(link) {
			result.Stats.TrailingSlash = 1
			result.Findings = append(result.Findings, report.Finding{Kind: report.KindTrailingSlash, File: file, Line: line, Link: link})
		}
		target := s.resolver.Resolve(link, page)
		if !s.index.Exists(target.Category, target.Slug, target.Anchor) {
			s.logger.Debug("internal link target missing", "file", file, "link", link,
				"category", target.Category, "slug", target.Slug, "anchor", target.Anchor)
			result.Stats.InternalFailures = 1
			result.Findings = append(result.Findings, report.Finding{
				Kind:   report.KindInternalFail,
				File:   file,
				Line:   line,
				Link:   link,
				Detail: fmt.Sprintf("no document %s/%s", target.Category, target.Slug),
			})
		}
		return linkCheck{result: result}
	default:
		return linkCheck{}
	}
}

type linkCheck struct {
	result  report.LinkResult
	pending *verify.Job
}

// pageScan keeps link outcomes in occurrence order. External slots hold the index
// of their job in the run-wide job list.
type pageScan struct {
	file  string
	slots []slot
	jobs  []verify.Job
}

type slot struct {
	result report.LinkResult
	job    int
}

func (p *pageScan) addLink(check linkCheck, firstJob int) {
	if check.pending == nil {
		if check.result.Stats == (report.Stats{}) {
			return
		}
		p.slots = append(p.slots, slot{result: check.result, job: -1})
		return
	}
	p.slots = append(p.slots, slot{job: firstJob + len(p.jobs)})
	p.jobs = append(p.jobs, *check.pending)
}

func (p pageScan) fold(outcomes []verify.Outcome) report.FileResult {
	result := report.FileResult{File: p.file}
	for _, s := range p.slots {
		if s.job < 0 {
			result = result.WithLink(s.result)
			continue
		}
		result = result.WithLink(externalResult(outcomes[s.job]))
	}
	return result
}

func externalResult(outcome verify.Outcome) report.LinkResult {
	result := report.LinkResult{Stats: report.Stats{ExternalLinks: 1}}
	if outcome.Err != nil {
		result.Stats.ExternalFailures = 1
		result.Findings = []report.Finding{{
			Kind:   report.KindExternalFail,
			File:   outcome.Job.File,
			Line:   outcome.Job.Line,
			Link:   outcome.Job.URL,
			Detail: outcome.Err.Error(),
		}}
	}
	return result
}
