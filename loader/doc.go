// Package loader reads catalog files.
//
// A catalog file holds two lists, categories and tools, in YAML, TOML or
// JSON; the format is picked from the file extension. Loading runs in three
// stages:
//
//  1. Decode the document and expand ${VAR} references in string values.
//     Missing variables expand to the empty string and are logged.
//  2. Validate the document against the published JSON Schema (see Schema).
//     Unknown keys are rejected at this stage.
//  3. Normalize into a catalog.Catalog (defaults, trimming, timestamps) and
//     run catalog validation.
//
// Omitted fields take these defaults:
//
//   - category enabled: true
//   - tool id: the tool's slug
//   - tool enabled: true for status live, beta or empty, false otherwise
//
// Encode writes a catalog back out in any of the three formats.
package loader
