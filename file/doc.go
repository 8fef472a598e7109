// Package file provides path wrappers and small file helpers.
//
// The functions here are deliberately thin: each one wraps one or two calls
// into os, io/fs or path/filepath and gives them a name that reads well at
// the call site.
//
// Path Inspection:
//   - FileExists, DirectoryExists, PathExists
//   - Filename, Extension, BaseName, ParentDirectory, JoinPaths
//   - PathsOverlap
//
// Recursive Listing:
//   - AllFilesAndDirectoriesRecursive, AllFilesRecursive
//   - FilesByExtension, FilesContaining, Glob
//   - CountFiles for bounded counting
//
// Manipulation:
//   - CreateDirectory, CopyFilesToDirectory, CopyToDirectory
//   - DeleteFile, DeleteDirectory, DeletePath, RenamePath
//   - ClearFileContents, WriteToFile
//
// Formats and Content:
//   - ReadJSONFile, WriteJSONFile, ReadCSVFile, ReadYAMLFile, ReadTOMLFile
//   - Hash, HashFiles, MimeType
//
// Permissions:
//   - ApplyPermission shells out to chown and chmod (through sudo by default)
//
// Listing functions accept ListOptions. When ExtendedPaths is set every
// returned path carries the Windows extended-length prefix, which lifts the
// MAX_PATH limit on that platform.
package file
