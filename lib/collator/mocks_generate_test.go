// Copyright 2024 The Tanssi Go Authors
// SPDX-License-Identifier: LGPL-3.0-only

package collator

//go:generate mockgen -destination=mocks_test.go -package $GOPACKAGE . RelayChainClient,AuthorityRetriever,InherentDataProviders,InherentDataProviderFactory,Proposer,CollatorService
