// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"sync"

	"github.com/albertov19/tanssi/dot/types"
	"github.com/albertov19/tanssi/lib/common"
)

// CollationRequest asks the collator to produce a block candidate on top of
// the parent encoded in the validation data, in the context of the given
// relay parent. The transport layer creates one request per piece of offered
// block space and listens on Result for the outcome.
type CollationRequest struct {
	relayParent    common.Hash
	validationData types.PersistedValidationData

	completeOnce sync.Once
	completion   chan *types.CollationResult
}

// NewCollationRequest returns a new CollationRequest
func NewCollationRequest(relayParent common.Hash,
	validationData types.PersistedValidationData) *CollationRequest {
	return &CollationRequest{
		relayParent:    relayParent,
		validationData: validationData,
		completion:     make(chan *types.CollationResult, 1),
	}
}

// RelayParent returns the relay chain block hash the collation was requested for
func (r *CollationRequest) RelayParent() common.Hash {
	return r.relayParent
}

// PersistedValidationData returns the validation data supplied with the request
func (r *CollationRequest) PersistedValidationData() types.PersistedValidationData {
	return r.validationData
}

// Complete resolves the request; nil signals that no collation was produced.
// Only the first call has any effect. The collator may legitimately never
// call Complete, so requesters must apply their own timeout.
func (r *CollationRequest) Complete(result *types.CollationResult) {
	r.completeOnce.Do(func() {
		r.completion <- result
		close(r.completion)
	})
}

// Result returns the channel the outcome is delivered on
func (r *CollationRequest) Result() <-chan *types.CollationResult {
	return r.completion
}
