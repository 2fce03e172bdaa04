// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"fmt"

	"github.com/albertov19/tanssi/dot/types"
)

// createInherentData combines the providers' inherent data with the
// parachain-system inherent derived from the request's validation data
func (s *Service) createInherentData(providers InherentDataProviders,
	validationData types.PersistedValidationData) (*types.InherentsData, error) {
	idata, err := providers.CreateInherentData()
	if err != nil {
		return nil, fmt.Errorf("creating providers inherent data: %w", err)
	}

	parachainInherent := types.ParachainInherentData{
		ValidationData: validationData,
	}

	err = idata.SetInherent(types.Sysi1337, parachainInherent)
	if err != nil {
		return nil, fmt.Errorf("setting inherent %q: %w", types.Sysi1337, err)
	}

	return idata, nil
}
