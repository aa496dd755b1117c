package font

import "os"
import "io"
import "io/fs"
import "errors"
import "strings"

import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](), but also including the font name
// in the returned values. The bytes must not be modified while
// the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	fontName, err := GetName(newFont)
	if errors.Is(err, ErrNotFound) { err = nil } // nameless fonts are still usable
	return newFont, fontName, err
}

// Attempts to parse a font located the given filepath and returns it
// along its name and any possible error. Supported formats are .ttf
// and .otf.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for embedded and other virtual
// filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseFontFileAndClose(file)
}

// Parses the given font bytes and wraps the result in a [Face].
func ParseFaceFromBytes(fontBytes []byte) (*Face, string, error) {
	sfntFont, name, err := ParseFromBytes(fontBytes)
	if err != nil { return nil, "", err }
	face, err := NewFace(sfntFont)
	return face, name, err
}

// Parses the font at the given path and wraps the result in a [Face].
func ParseFaceFromPath(path string) (*Face, string, error) {
	sfntFont, name, err := ParseFromPath(path)
	if err != nil { return nil, "", err }
	face, err := NewFace(sfntFont)
	return face, name, err
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil { return nil, "", err }
	return ParseFromBytes(fontBytes)
}

// Whether font path ends in .ttf or .otf. The extension is case
// sensitive.
func hasValidFontExtension(path string) bool {
	return strings.HasSuffix(path, ".ttf") || strings.HasSuffix(path, ".otf")
}
