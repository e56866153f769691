// Package reconciler compares the product's term files with the reference
// source across a whole locale set.
//
// Locales are resolved through an override table, those the reference does
// not cover are listed separately, and every supported locale yields a
// LocaleReport. Per-locale and per-entry failures are recorded as issues;
// only a baseline failure aborts the run.
package reconciler

import (
	"context"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/flodolo/moz-cldr-data/pkg/differ"
	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/locales"
	"github.com/flodolo/moz-cldr-data/pkg/logging"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Reconciler compares a product's localization with the reference source.
type Reconciler interface {
	// Baseline compares the baseline locale files with the reference
	// locale. Any failure is returned as an errors.BaselineError.
	Baseline(ctx context.Context) (*LocaleReport, error)

	// Locale compares one locale against reference locale ref. Categories
	// that cannot be read are omitted and reported as issues.
	Locale(ctx context.Context, id locales.ID, ref locales.ReferenceID) (*LocaleReport, []Issue)

	// All reconciles every locale in ids. The error is non-nil only for
	// failures that make the whole run meaningless.
	All(ctx context.Context, ids []locales.ID) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	source    Source
	reference Reference
	opts      *options
}

// New creates a Reconciler reading product files from source and reference
// data from reference.
func New(source Source, reference Reference, opts ...Option) (Reconciler, error) {
	if source == nil || reference == nil {
		return nil, &errors.ValidationError{
			Field:   "source",
			Message: "source and reference are required",
		}
	}
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{source: source, reference: reference, opts: options}, nil
}

// task is one supported locale waiting for comparison.
type task struct {
	id  locales.ID
	ref locales.ReferenceID
}

// outcome is the comparison of one task.
type outcome struct {
	report *LocaleReport
	issues []Issue
}

// Baseline implements Reconciler.
func (r *reconciler) Baseline(ctx context.Context) (*LocaleReport, error) {
	report, _, err := r.baseline(ctx)
	return report, err
}

// baseline also returns the issues found in the baseline files.
func (r *reconciler) baseline(ctx context.Context) (*LocaleReport, []Issue, error) {
	if r.opts.baseline == nil {
		return nil, nil, &errors.ConfigError{
			Component: "reconciler",
			Message:   "no baseline source configured",
		}
	}

	ctx = logging.WithOperation(ctx, "baseline")
	report := &LocaleReport{Locale: r.opts.baselineLocale, Reference: r.opts.referenceLocale}
	col := newCollector(r.opts.baseline, r.reference)

	for _, category := range terms.Categories() {
		p, ok := col.collect(ctx, report.Locale, report.Reference, category)
		if !ok {
			last := col.issues[len(col.issues)-1]
			return nil, nil, errors.WrapBaseline(category.Title(), last.Err)
		}
		report.set(category, r.opts.differ.Compare(p.source, p.reference, category))
	}

	logging.FromContext(ctx).Debug().Msg(report.Summary())
	return report, col.issues, nil
}

// Locale implements Reconciler.
func (r *reconciler) Locale(ctx context.Context, id locales.ID, ref locales.ReferenceID) (*LocaleReport, []Issue) {
	ctx = logging.WithLocale(ctx, id.String())
	report := &LocaleReport{Locale: id, Reference: ref}
	col := newCollector(r.source, r.reference)

	for _, category := range terms.Categories() {
		p, ok := col.collect(ctx, id, ref, category)
		if !ok {
			report.Omitted = append(report.Omitted, category)
			continue
		}
		report.set(category, r.opts.differ.Compare(p.source, p.reference, category))
	}

	logging.FromContext(ctx).Debug().Msg(report.Summary())
	return report, col.issues
}

// All implements Reconciler.
func (r *reconciler) All(ctx context.Context, ids []locales.ID) (*Result, error) {
	logger := logging.FromContext(ctx)
	result := NewResult()

	var baselineLanguages map[terms.Key]bool
	if r.opts.baseline != nil {
		report, issues, err := r.baseline(ctx)
		if err != nil {
			return nil, err
		}
		result.Baseline = report
		result.Issues = append(result.Issues, issues...)
		baselineLanguages = make(map[terms.Key]bool, len(report.Languages))
		for _, e := range report.Languages {
			// Reference-only rows are not product language names.
			if e.Classification == differ.MissingFromSource {
				continue
			}
			baselineLanguages[e.Key] = true
		}
	} else {
		logger.Debug().Msg("No baseline source, skipping missing language names listing")
	}

	supported, err := r.reference.Supported(ctx)
	if err != nil {
		return nil, errors.WrapResource("list", "reference locales", "", err)
	}

	tasks := make([]task, 0, len(ids))
	for _, id := range ids {
		if baselineLanguages != nil && !baselineLanguages[terms.Key(id.Primary())] {
			result.MissingLanguageNames = append(result.MissingLanguageNames, id)
		}

		ref := r.opts.mapper.Resolve(id)
		if _, ok := r.opts.mapper.ResolveWithFallback(id, supported); !ok {
			result.Unsupported = append(result.Unsupported, Unsupported{
				Locale:     id,
				Reference:  ref,
				Annotation: r.opts.seeds.Annotate(id),
			})
			result.Issues = append(result.Issues, newIssue(UnresolvedLocale, id, "", &errors.UnresolvedLocaleError{
				Locale:    id.String(),
				Reference: ref.String(),
			}))
			continue
		}
		tasks = append(tasks, task{id: id, ref: ref})
	}

	logger.Debug().
		Int("locales", len(ids)).
		Int("supported", len(tasks)).
		Int("concurrency", r.opts.concurrency).
		Msg("Reconciling locales")

	for _, out := range r.run(ctx, tasks) {
		result.Reports = append(result.Reports, out.report)
		result.Issues = append(result.Issues, out.issues...)
	}

	SortReports(result.Reports)
	sort.SliceStable(result.Unsupported, func(i, j int) bool {
		return result.Unsupported[i].Locale < result.Unsupported[j].Locale
	})
	locales.Sort(result.MissingLanguageNames)

	return result, nil
}

// run compares every task. Outcomes are stored by task index, so the
// output order does not depend on completion order.
func (r *reconciler) run(ctx context.Context, tasks []task) []outcome {
	outcomes := make([]outcome, len(tasks))

	if r.opts.concurrency <= 1 {
		for i, t := range tasks {
			report, issues := r.Locale(ctx, t.id, t.ref)
			outcomes[i] = outcome{report: report, issues: issues}
		}
		return outcomes
	}

	p := pool.New().WithMaxGoroutines(r.opts.concurrency)
	for i, t := range tasks {
		i, t := i, t // per-iteration copies; go directive is below 1.22
		p.Go(func() {
			report, issues := r.Locale(ctx, t.id, t.ref)
			outcomes[i] = outcome{report: report, issues: issues}
		})
	}
	p.Wait()
	return outcomes
}
