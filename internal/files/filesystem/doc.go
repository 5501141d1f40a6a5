// Package filesystem is the I/O boundary for control documents.
//
// OSFileSystem backs the commands. Its WriteFile goes through a temporary
// file and a rename, so a control file is never left half written.
// MemoryFileSystem backs tests; it resolves relative paths against its root
// and creates parent directories on write.
//
// Directory.Walk visits entries in lexical order and honours fs.SkipDir,
// which the scanner uses to prune hidden directories such as .git.
//
// Missing paths are reported with errors that wrap fs.ErrNotExist in both
// implementations.
package filesystem
