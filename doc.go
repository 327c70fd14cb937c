package gridview

// Package gridview renders markup fragments for server-side tabular views.
//
// Overview
//
// gridview implements two independent components:
//   - ActionButtons: resolves a {placeholder} template against a registry of
//     named buttons, filters them by per-row visibility and renders the
//     surviving subset in template order.
//   - LinkPager: computes a bounded window of page numbers centered on the
//     current page and renders it together with first/prev/next/last boundary
//     controls carrying correct disabled and active state.
//
// Key concepts
//   - Row: one record as a field-to-value mapping; the primary key is either
//     a row field or a value supplied by the caller.
//   - Visibility: a per-button gate, constant or row-dependent.
//   - URLCreator / PageURLCreator: injected capabilities producing the target
//     URLs; defaults cover key-in-path and key-in-query addressing.
//
// Both components are pure over their inputs and injected callbacks.
// Configuration is set before rendering and read-only during it, so
// independent callers may render concurrently without coordination.
//
// See README for examples and usage details.
