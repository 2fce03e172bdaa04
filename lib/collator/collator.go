// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

// Package collator implements the relay chain driven collation loop: it turns
// incoming collation requests into signed, deadline-bounded parachain block
// proposals, or a clean no-op when the local node is not the assigned author.
package collator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/albertov19/tanssi/dot/types"
	"github.com/albertov19/tanssi/lib/keystore"

	log "github.com/ChainSafe/log15"
	ethmetrics "github.com/ethereum/go-ethereum/metrics"
)

var logger log.Logger

const (
	proposeCollationTimer  = "tanssi/proposer/collation/constructed"
	proposeCollationErrors = "tanssi/proposer/collation/constructed/errors"
)

// Default authoring parameters, used when the config leaves them zero
const (
	DefaultAuthoringDuration = 500 * time.Millisecond
	DefaultSlotDuration      = 6 * time.Second
)

// Service drives block authoring from the relay chain: it consumes collation
// requests strictly sequentially and resolves each one fully before accepting
// the next. The service owns no iteration-to-iteration state; every request
// is processed from its own validation data alone.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc

	requests            <-chan *CollationRequest
	relayClient         RelayChainClient
	authorityRetriever  AuthorityRetriever
	inherentDataFactory InherentDataProviderFactory
	proposer            Proposer
	collatorService     CollatorService
	keystore            keystore.Keystore

	authoringDuration time.Duration
	slotDuration      time.Duration
	forceAuthoring    bool
}

// ServiceConfig represents a collator service configuration
type ServiceConfig struct {
	LogLvl              log.Lvl
	CollationRequests   <-chan *CollationRequest
	RelayChainClient    RelayChainClient
	AuthorityRetriever  AuthorityRetriever
	InherentDataFactory InherentDataProviderFactory
	Proposer            Proposer
	CollatorService     CollatorService
	Keystore            keystore.Keystore
	AuthoringDuration   time.Duration
	SlotDuration        time.Duration
	ForceAuthoring      bool
}

// NewService returns a new collator Service using the provided collaborators
func NewService(cfg *ServiceConfig) (*Service, error) {
	switch {
	case cfg.CollationRequests == nil:
		return nil, errNilRequestChannel
	case cfg.RelayChainClient == nil:
		return nil, errNilRelayChainClient
	case cfg.AuthorityRetriever == nil:
		return nil, errNilAuthorityRetriever
	case cfg.InherentDataFactory == nil:
		return nil, errNilInherentDataFactory
	case cfg.Proposer == nil:
		return nil, errNilProposer
	case cfg.CollatorService == nil:
		return nil, errNilCollatorService
	case cfg.Keystore == nil:
		return nil, errNilKeystore
	}

	logger = log.New("pkg", "collator")
	h := log.StreamHandler(os.Stdout, log.TerminalFormat())
	h = log.CallerFileHandler(h)
	logger.SetHandler(log.LvlFilterHandler(cfg.LogLvl, h))

	authoringDuration := cfg.AuthoringDuration
	if authoringDuration == 0 {
		authoringDuration = DefaultAuthoringDuration
	}

	slotDuration := cfg.SlotDuration
	if slotDuration == 0 {
		slotDuration = DefaultSlotDuration
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Service{
		ctx:                 ctx,
		cancel:              cancel,
		requests:            cfg.CollationRequests,
		relayClient:         cfg.RelayChainClient,
		authorityRetriever:  cfg.AuthorityRetriever,
		inherentDataFactory: cfg.InherentDataFactory,
		proposer:            cfg.Proposer,
		collatorService:     cfg.CollatorService,
		keystore:            cfg.Keystore,
		authoringDuration:   authoringDuration,
		slotDuration:        slotDuration,
		forceAuthoring:      cfg.ForceAuthoring,
	}, nil
}

// Start starts the collation loop
func (s *Service) Start() error {
	go s.run()
	return nil
}

// Stop stops the service. If stop is called, it cannot be resumed.
func (s *Service) Stop() error {
	if s.ctx.Err() != nil {
		return errors.New("service already stopped")
	}

	s.cancel()
	return nil
}

// IsStopped returns true if the service is stopped
func (s *Service) IsStopped() bool {
	return s.ctx.Err() != nil
}

// run consumes collation requests until the request stream is exhausted or
// the service is stopped. A failing request never ends the loop.
func (s *Service) run() {
	logger.Info("starting relay chain driven collation loop",
		"authoring duration", s.authoringDuration,
		"slot duration", s.slotDuration,
		"force authoring", s.forceAuthoring,
	)

	for {
		select {
		case <-s.ctx.Done():
			return
		case request, ok := <-s.requests:
			if !ok {
				logger.Info("collation request stream closed, stopping")
				return
			}

			s.handleCollationRequest(request)
		}
	}
}

// handleCollationRequest maps the outcome of one request onto its completion:
// a failure completes with nil and is logged, a benign skip leaves the
// request unanswered, and success completes with the collation result.
// Completion is invoked at most once per request either way.
func (s *Service) handleCollationRequest(request *CollationRequest) {
	result, err := s.produceCandidate(request)
	if err != nil {
		logger.Error("failed to produce collation",
			"relay parent", request.RelayParent(), "error", err)
		request.Complete(nil)
		return
	}

	if result == nil {
		// benign race with the chain moving on; deliberately not an error
		// and deliberately not completed
		return
	}

	request.Complete(result)
}

func (s *Service) produceCandidate(request *CollationRequest) (*types.CollationResult, error) {
	validationData := request.PersistedValidationData()

	parentHeader, err := types.DecodeHeader(validationData.ParentHead)
	if err != nil {
		return nil, fmt.Errorf("decoding parent head: %w", err)
	}

	parentHash := parentHeader.Hash()

	if !s.collatorService.CheckBlockStatus(parentHash, parentHeader) {
		logger.Debug("cannot build upon parent block", "parent", parentHash)
		return nil, nil
	}

	relayParentHeader, err := s.relayClient.Header(s.ctx, request.RelayParent())
	if err != nil {
		return nil, fmt.Errorf("fetching relay parent header: %w", err)
	}

	if relayParentHeader == nil {
		// sanity: it would be inconsistent to be asked to collate on a relay
		// parent the relay chain does not know
		logger.Debug("relay parent header not found",
			"relay parent", request.RelayParent())
		return nil, nil
	}

	authorities, err := s.authorityRetriever.RetrieveAuthorities(s.ctx,
		parentHash, relayParentHeader.Hash(), validationData)
	if err != nil {
		return nil, fmt.Errorf("retrieving authorities: %w", err)
	}

	providers, err := s.inherentDataFactory.Create(s.ctx, parentHash,
		request.RelayParent(), validationData)
	if err != nil {
		return nil, fmt.Errorf("creating inherent data providers: %w", err)
	}

	slot := providers.Slot()

	claim, err := claimSlot(authorities, slot, s.keystore, s.forceAuthoring)
	if err != nil {
		return nil, fmt.Errorf("claiming slot %d: %w", slot, err)
	}

	if claim == nil {
		logger.Debug("not our turn to propose a block",
			"slot", slot, "authorities", len(authorities))
		return nil, nil
	}

	logger.Debug("claimed slot",
		"slot", slot,
		"authority index", claim.AuthorityIndex(),
		"slot start", getSlotStartTime(slot, s.slotDuration),
	)

	inherentData, err := s.createInherentData(providers, validationData)
	if err != nil {
		return nil, fmt.Errorf("creating inherent data: %w", err)
	}

	return s.collate(parentHeader, claim, inherentData, validationData.MaxPovSize)
}

// collate builds the block through the proposer and announces the result.
// The block size limit is set to 50% of the maximum PoV size, leaving
// headroom for the storage proof in the final PoV.
func (s *Service) collate(parent *types.Header, claim *SlotClaim,
	inherentData *types.InherentsData, maxPovSize uint32) (*types.CollationResult, error) {
	maxBlockSize := maxPovSize / 2

	// is necessary to enable ethmetrics to be possible register values
	ethmetrics.Enabled = true

	start := time.Now()
	proposal, err := s.proposer.Propose(s.ctx, parent, claim, inherentData,
		s.authoringDuration, maxBlockSize)
	if err != nil {
		proposerErrors := ethmetrics.GetOrRegisterCounter(proposeCollationErrors, nil)
		proposerErrors.Inc(1)
		return nil, fmt.Errorf("proposing block: %w", err)
	}

	timerMetrics := ethmetrics.GetOrRegisterTimer(proposeCollationTimer, nil)
	timerMetrics.Update(time.Since(start))

	if size := proposal.Collation.ProofOfValidity.Size(); size > maxBlockSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", errCollationTooLarge, size, maxBlockSize)
	}

	resultSender := s.collatorService.AnnounceWithBarrier(proposal.PostHash)

	logger.Info("produced collation",
		"slot", claim.Slot(),
		"hash", proposal.PostHash,
		"parent", parent.Hash(),
		"pov size", proposal.Collation.ProofOfValidity.Size(),
		"proof size", proposal.ProofSize,
	)

	return &types.CollationResult{
		Collation:    proposal.Collation,
		ResultSender: resultSender,
	}, nil
}
