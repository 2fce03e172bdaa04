// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"fmt"
)

var (
	// ErrEmptyAuthoritySet is returned when the slot claimer is given no authorities;
	// unlike not holding the assigned key, this is a structural failure
	ErrEmptyAuthoritySet = fmt.Errorf("authority set is empty")

	errNilRequestChannel      = fmt.Errorf("collation request channel is nil")
	errNilRelayChainClient    = fmt.Errorf("relay chain client is nil")
	errNilAuthorityRetriever  = fmt.Errorf("authority retriever is nil")
	errNilInherentDataFactory = fmt.Errorf("inherent data provider factory is nil")
	errNilProposer            = fmt.Errorf("proposer is nil")
	errNilCollatorService     = fmt.Errorf("collator service is nil")
	errNilKeystore            = fmt.Errorf("keystore is nil")

	errCollationTooLarge = fmt.Errorf("collation proof of validity exceeds the block size limit")
)
