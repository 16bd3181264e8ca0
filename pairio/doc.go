// SPDX-License-Identifier: MIT

// Package pairio reads and writes persistence results.
//
// Formats:
//
//   - Binary pairs (.pers), little-endian: uint32 n, n uint32 pair counts
//     (one per dimension), then for every pair the birth coordinate
//     followed by the death coordinate. Coordinates are written with the
//     axis order reversed and 1-indexed.
//   - Binary certificates (.red.<d>, .bnd.<d>), little-endian: int32 n,
//     n int32 header words (word 0 = record count, others 0), then per
//     record a size word padded with zeros to n words and that many
//     coordinates in the pairs file encoding.
//   - Text report (.pers.txt): per dimension a "<Lower> <Upper> Pairs,
//     Number = k" line and k "birth<TAB>death" value lines.
//   - CSV (.pers.csv): one row per pair, header included.
//
// FileSink implements persistence.CertificateSink on top of the
// certificate writer.
package pairio
