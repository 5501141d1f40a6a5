// Package control reads and writes Debian package control documents.
//
// # Format
//
// A control document is a sequence of fields. Each field starts on an
// unindented line with its name, a colon, and an inline value. Values may be
// continued on following physical lines in one of two ways:
//
//	Build-Depends: debhelper (>= 10),
//	               libgtk-3-dev,
//	               valac
//	Description: A short summary
//	 A longer paragraph
//	 continued here
//
// A line ending with a comma (or following one) belongs to a folded list.
// An indented line that is not part of a folded list extends a multiline
// block. Blank lines and lines starting with "#" carry no content and are
// dropped before any line is classified.
//
// # Reading
//
// Parse classifies every remaining line by looking at its neighbours (see
// ClassifyLine) and folds the lines into Fields. Folded lists are kept
// sorted after every appended element. Variable references such as
// ${shlibs:Depends} are never mistaken for a "key: value" pair.
//
// # Writing
//
// Format renders Fields in the fixed priority order given by FieldOrder.
// Fields missing from that list follow in insertion order. The encoding of
// each field is decided by the shape of its Value alone (see Value.Kind).
//
// # Usage
//
//	doc := control.NewDocument("debian/control")
//	fields, err := doc.Read()
//	if err != nil {
//	    return err
//	}
//	fields.Set("Maintainer", control.Text("Jane Doe <jane@example.com>"))
//	if _, err := doc.Write(fields); err != nil {
//	    return err
//	}
//
// Document performs its I/O through a filesystem.FileSystemProvider, so tests
// can run the codec against an in-memory filesystem.
package control
