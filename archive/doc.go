// Package archive creates and extracts archives.
//
// Compression itself is delegated: gzip, zstd and deflate come from
// klauspost/compress, tar and zip framing from the standard library, and
// 7-Zip archives are produced by shelling out to the 7z binary.
//
// Creating Archives:
//   - CompressToArchive picks a writer from a Type (gz, 7z, zip, zst, tar)
//   - CreateTarArchive, CreateZip and Create7z for a specific format
//   - every input is stored under its own base name; directories recurse
//   - output is written to a temporary file beside the target and renamed
//     into place once complete
//
// Extracting Archives:
//   - ExtractSingleFileGZ for single-file .gz payloads
//   - ExtractTar, ExtractZip, and Extract which sniffs the format from content
//   - entries that would land outside the destination are rejected
//
// Inspecting Archives:
//   - List returns a Manifest of entries ordered by modification time
//   - Contains checks for a single entry
//   - Summarize aggregates a Manifest into a JSON friendly Summary
package archive
