// Package pipeline wires segmentation, extraction, persistence and
// categorization into the single ingest operation exposed by the CLI.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/sumanmaity112/smart-finanza/internal/hasher"
	"github.com/sumanmaity112/smart-finanza/internal/instrument"
	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/orchestrator"
	"github.com/sumanmaity112/smart-finanza/internal/rules"
	"github.com/sumanmaity112/smart-finanza/internal/segmenter"
	"github.com/sumanmaity112/smart-finanza/internal/store"
)

// IngestReport is the outcome of one ProcessFile call.
type IngestReport struct {
	RunID            string `json:"run_id"`
	File             string `json:"file"`
	Digest           string `json:"digest"`
	AlreadyProcessed bool   `json:"already_processed"`
	Fragments        int    `json:"fragments"`
	FragmentsFailed  int    `json:"fragments_failed"`
	Candidates       int    `json:"candidates"`
	Saved            int    `json:"saved"`
	Swept            int    `json:"swept"`
}

// Pipeline runs documents through the full ingestion flow. Safe for
// concurrent ProcessFile calls; work on the same content digest is
// serialized so two copies of one statement cannot race each other.
type Pipeline struct {
	segmenter    *segmenter.Segmenter
	inferer      *instrument.Inferer
	orchestrator *orchestrator.Orchestrator
	store        *store.Store
	rules        *rules.Engine
	log          logging.Logger

	mu     sync.Mutex
	inwork map[string]*sync.Mutex
}

func New(seg *segmenter.Segmenter, inf *instrument.Inferer, orch *orchestrator.Orchestrator,
	st *store.Store, eng *rules.Engine, logger logging.Logger) *Pipeline {
	return &Pipeline{
		segmenter:    seg,
		inferer:      inf,
		orchestrator: orch,
		store:        st,
		rules:        eng,
		log:          logger,
		inwork:       make(map[string]*sync.Mutex),
	}
}

// ProcessFile ingests one document end to end: digest, dedup check,
// segmentation, instrument inference, oracle extraction, persistence
// and a categorization sweep over the new rows.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*IngestReport, error) {
	report := &IngestReport{
		RunID: uuid.NewString(),
		File:  filepath.Base(path),
	}
	log := p.log.WithField("run_id", report.RunID).WithField(logging.FieldFile, report.File)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	digest, err := hasher.HashFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	report.Digest = digest

	lock := p.digestLock(digest)
	lock.Lock()
	defer lock.Unlock()

	done, err := p.store.IsProcessed(digest)
	if err != nil {
		return nil, err
	}
	if done {
		report.AlreadyProcessed = true
		log.Info("File already ingested, skipping",
			logging.Field{Key: logging.FieldDigest, Value: digest})
		return report, nil
	}

	segmented, err := p.segmenter.Segment(path)
	if err != nil {
		return nil, err
	}
	report.Fragments = len(segmented.Fragments)

	defaultMethod := p.inferer.Infer(ctx, segmented.HeaderText, report.File)
	log.Info("Inferred payment instrument",
		logging.Field{Key: logging.FieldMethod, Value: defaultMethod.String()})

	extracted := p.orchestrator.ExtractAll(ctx, segmented.Fragments)
	report.FragmentsFailed = extracted.FragmentsFailed
	report.Candidates = len(extracted.Candidates)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	saved, err := p.store.Persist(extracted.Candidates, report.File, defaultMethod)
	if err != nil {
		return nil, err
	}
	report.Saved = saved

	if err := p.store.MarkProcessed(digest, report.File); err != nil {
		return nil, err
	}

	sweep, err := p.rules.Sweep()
	if err != nil {
		return nil, err
	}
	report.Swept = sweep.Updated

	log.Info("Ingestion complete",
		logging.Field{Key: "saved", Value: report.Saved},
		logging.Field{Key: "swept", Value: report.Swept},
		logging.Field{Key: "fragments_failed", Value: report.FragmentsFailed})
	return report, nil
}

func (p *Pipeline) digestLock(digest string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	lock, ok := p.inwork[digest]
	if !ok {
		lock = &sync.Mutex{}
		p.inwork[digest] = lock
	}
	return lock
}
