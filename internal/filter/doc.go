// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package filter implements the browse criteria pipeline: the query-string
// codec that makes a [models.FilterState] shareable and restorable, and the
// client-side evaluator that refines an in-memory profile set.
//
// The codec is the single point where UI field names are renamed to their
// wire forms (ageFrom/ageTo become minAge/maxAge) and where values are
// canonicalized (gender upper-cased, all other free-text values lower-cased).
// The search endpoint consumes exactly the codec's serialization minus the
// search flag itself.
//
// The evaluator is a secondary refinement layer: in search mode the server
// has already applied the field predicates and only the criteria without a
// server equivalent (the free-text term and the occupation filter) are
// re-applied locally. In listing mode the full conjunction runs client-side.
package filter
