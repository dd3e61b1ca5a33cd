package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/propoundhq/propound-cli/internal/core/domain"
	"github.com/propoundhq/propound-cli/internal/core/ports/driven"
	"github.com/propoundhq/propound-cli/internal/core/ports/driving"
	"github.com/propoundhq/propound-cli/internal/logger"
	"github.com/propoundhq/propound-cli/internal/taxonomy"
)

// Ensure GenerationService implements the interface.
var _ driving.GenerationService = (*GenerationService)(nil)

// GenerationService orchestrates the five pipeline phases for one
// intake submission. Tables are loaded once at construction; after that
// the service is read-only and safe for concurrent Generate calls.
type GenerationService struct {
	reg      *taxonomy.Registry
	profiles map[domain.DocType]*domain.DocumentProfile
	tracer   driven.Tracer
}

// NewGenerationService loads the rule tables from the store and builds
// the service. The tracer is optional; pass nil to disable the audit
// side-channel.
func NewGenerationService(tables driven.TableStore, tracer driven.Tracer) (*GenerationService, error) {
	table, err := tables.LoadTaxonomy()
	if err != nil {
		return nil, fmt.Errorf("loading taxonomy: %w", err)
	}
	reg, err := taxonomy.NewRegistry(table)
	if err != nil {
		return nil, err
	}

	profiles := make(map[domain.DocType]*domain.DocumentProfile, len(domain.AllDocTypes()))
	for _, docType := range domain.AllDocTypes() {
		profile, err := tables.LoadProfile(docType)
		if err != nil {
			return nil, fmt.Errorf("loading %s profile: %w", docType, err)
		}
		profiles[docType] = profile
	}

	return &GenerationService{reg: reg, profiles: profiles, tracer: tracer}, nil
}

// Registry exposes the loaded taxonomy registry.
func (s *GenerationService) Registry() *taxonomy.Registry {
	return s.reg
}

// Generate runs the full normalisation-to-manifest pipeline.
//
// Failures in the set splitter are scoped to the affected
// (dataset, docType) pair: the pair is recorded under Failures and the
// remaining pairs continue independently. Only a malformed intake fails
// the whole record.
func (s *GenerationService) Generate(ctx context.Context, raw domain.RawIntake) (*domain.CaseManifest, error) {
	runID := uuid.NewString()
	seq := 0

	normalizer := NewNormalizer(s.reg)
	record, warnings, err := s.normalize(normalizer, raw)
	if err != nil {
		return nil, err
	}
	s.trace(ctx, runID, &seq, "normalize", 0, "", record)

	datasets := BuildDatasets(record)
	s.trace(ctx, runID, &seq, "datasets", 0, "", datasets)
	logger.Info("generate: %d dataset(s) for case %q", len(datasets), record.CaseName)

	manifest := &domain.CaseManifest{
		RunID:        runID,
		CaseName:     record.CaseName,
		DatasetCount: len(datasets),
		Warnings:     warnings,
	}

	for _, ds := range datasets {
		flags, flagWarnings := ComputeFlags(s.reg, ds)
		manifest.Warnings = append(manifest.Warnings, flagWarnings...)
		s.trace(ctx, runID, &seq, "flags", ds.Index, "", flags)

		for _, docType := range domain.AllDocTypes() {
			result := FilterProfile(flags, s.profiles[docType])
			s.trace(ctx, runID, &seq, "profile", ds.Index, docType, result)

			sets, err := SplitIntoSets(result, ds.Plaintiff, ds.Defendant)
			if err != nil {
				logger.Warn("generate: dataset %d %s: %v", ds.Index, docType, err)
				manifest.Failures = append(manifest.Failures, domain.PairFailure{
					DatasetIndex: ds.Index,
					DocType:      docType,
					Reason:       err.Error(),
				})
				continue
			}
			s.trace(ctx, runID, &seq, "sets", ds.Index, docType, sets)

			manifest.Pairs = append(manifest.Pairs, domain.PairManifest{
				DatasetIndex:  ds.Index,
				DocType:       docType,
				PlaintiffName: ds.Plaintiff.Name,
				DefendantName: ds.Defendant.Name,
				TotalCount:    result.TotalCount,
				Sets:          sets,
			})
		}
	}
	return manifest, nil
}

// normalize runs Phase 1 and logs the outcome.
func (s *GenerationService) normalize(n *Normalizer, raw domain.RawIntake) (*domain.IntakeRecord, []domain.Warning, error) {
	record, warnings, err := n.Normalize(raw)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("normalize: %d plaintiff(s), %d defendant(s), %d warning(s)",
		len(record.Plaintiffs), len(record.Defendants), len(warnings))
	return record, warnings, nil
}

// trace offers one phase output to the audit side-channel. Tracer
// failures are logged and never abort generation.
func (s *GenerationService) trace(ctx context.Context, runID string, seq *int, phase string, datasetIndex int, docType domain.DocType, payload any) {
	if s.tracer == nil {
		return
	}
	*seq++
	err := s.tracer.TracePhase(ctx, driven.PhaseTrace{
		RunID:        runID,
		Seq:          *seq,
		Phase:        phase,
		DatasetIndex: datasetIndex,
		DocType:      docType,
		Payload:      payload,
	})
	if err != nil {
		logger.Warn("trace: phase %s: %v", phase, err)
	}
}

// ValidateTables cross-checks the loaded taxonomy and profiles.
// Findings describe configuration defects that would otherwise surface
// as generation failures: unknown profile flags, non-positive caps,
// negative counts, and first-set-only bundles that cannot fit in Set 1.
func (s *GenerationService) ValidateTables() []string {
	var findings []string

	for _, docType := range domain.AllDocTypes() {
		profile := s.profiles[docType]
		if profile.Cap <= 0 {
			findings = append(findings, fmt.Sprintf("%s: cap must be positive, got %d", docType, profile.Cap))
		}

		firstTotal := 0
		seen := make(map[domain.FlagName]bool, len(profile.Flags))
		for _, entry := range profile.Flags {
			if !s.reg.Contains(entry.Flag) {
				findings = append(findings, fmt.Sprintf("%s: flag %s is not in the taxonomy universe", docType, entry.Flag))
			}
			if entry.Count < 0 {
				findings = append(findings, fmt.Sprintf("%s: flag %s has negative count %d", docType, entry.Flag, entry.Count))
			}
			if seen[entry.Flag] {
				findings = append(findings, fmt.Sprintf("%s: flag %s declared twice", docType, entry.Flag))
			}
			seen[entry.Flag] = true
			if entry.FirstSetOnly {
				firstTotal += entry.Count
			}
			if !entry.FirstSetOnly && profile.Cap > 0 && entry.Count > profile.Cap {
				findings = append(findings, fmt.Sprintf("%s: flag %s count %d exceeds cap %d", docType, entry.Flag, entry.Count, profile.Cap))
			}
		}
		if profile.Cap > 0 && firstTotal > profile.Cap {
			findings = append(findings, fmt.Sprintf("%s: first-set-only bundle totals %d, cap is %d", docType, firstTotal, profile.Cap))
		}
	}
	return findings
}

// ProfileSummaries describes the loaded profiles in generation order.
func (s *GenerationService) ProfileSummaries() []driving.ProfileSummary {
	summaries := make([]driving.ProfileSummary, 0, len(domain.AllDocTypes()))
	for _, docType := range domain.AllDocTypes() {
		profile := s.profiles[docType]
		summary := driving.ProfileSummary{
			DocType: docType,
			Cap:     profile.Cap,
		}
		for _, entry := range profile.Flags {
			summary.FlagCount++
			summary.QuestionPool += entry.Count
			if entry.FirstSetOnly {
				summary.FirstSetOnly = append(summary.FirstSetOnly, entry.Flag)
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
