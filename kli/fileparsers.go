package kli

import (
	"os"
)

// access modes checked by the permission parsers
const (
	accessRead  = 1 << iota
	accessWrite = 1 << iota
)

// FileParser accepts the path of an existing regular file. The value is the
// path itself; the file is not opened.
func FileParser(raw string) Parsed[string] {
	info, err := os.Stat(raw)
	if err != nil || !info.Mode().IsRegular() {
		return Fail[string](HintNoSuchFile)
	}
	return Ok(raw)
}

// DirectoryParser accepts the path of an existing directory.
func DirectoryParser(raw string) Parsed[string] {
	info, err := os.Stat(raw)
	if err != nil || !info.IsDir() {
		return Fail[string](HintNoSuchDirectory)
	}
	return Ok(raw)
}

// ReadableFileParser accepts an existing regular file the process can read.
func ReadableFileParser(raw string) Parsed[string] {
	return requireAccess(FileParser, accessRead)(raw)
}

// WritableFileParser accepts an existing regular file the process can write.
func WritableFileParser(raw string) Parsed[string] {
	return requireAccess(FileParser, accessWrite)(raw)
}

// ReadableDirectoryParser accepts an existing directory the process can read.
func ReadableDirectoryParser(raw string) Parsed[string] {
	return requireAccess(DirectoryParser, accessRead)(raw)
}

// WritableDirectoryParser accepts an existing directory the process can write.
func WritableDirectoryParser(raw string) Parsed[string] {
	return requireAccess(DirectoryParser, accessWrite)(raw)
}

// RandomAccessFileParser opens an existing, readable and writable regular file
// for read-write access. The returned handle belongs to the caller, who must
// close it.
func RandomAccessFileParser(raw string) Parsed[*os.File] {
	checked := requireAccess(FileParser, accessRead|accessWrite)(raw)
	if !checked.OK() {
		return Fail[*os.File](checked.Hint())
	}
	f, err := os.OpenFile(raw, os.O_RDWR, 0)
	if err != nil {
		return Fail[*os.File]("Unable to open: " + err.Error())
	}
	return Ok(f)
}

// requireAccess chains a permission check after base; the first failure wins.
func requireAccess(base ValueParser[string], mode int) ValueParser[string] {
	return func(raw string) Parsed[string] {
		res := base(raw)
		if !res.OK() {
			return res
		}
		if mode&accessRead != 0 && !canAccess(raw, accessRead) {
			return Fail[string](HintNotReadable)
		}
		if mode&accessWrite != 0 && !canAccess(raw, accessWrite) {
			return Fail[string](HintNotWritable)
		}
		return res
	}
}
