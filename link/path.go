package link

import (
	"strings"

	"xdao.co/lumen/lumerr"
)

// ValidatePath checks a content metadata path from an untrusted source.
//
// Paths name files inside uploaded content and are later joined against
// local directories by consumers, so traversal and malformed shapes are
// rejected here rather than at every call site. A valid path is non-empty,
// relative, and contains no empty, ".", or ".." segment.
func ValidatePath(p string) error {
	if p == "" {
		return lumerr.New(lumerr.KindValidation, "LUM-LINK-301", "path is empty")
	}
	if strings.HasPrefix(p, "/") {
		return lumerr.New(lumerr.KindValidation, "LUM-LINK-302", "path must be relative: "+p)
	}
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "":
			return lumerr.New(lumerr.KindValidation, "LUM-LINK-303", "path contains an empty segment: "+p)
		case ".", "..":
			return lumerr.New(lumerr.KindValidation, "LUM-LINK-304", "path contains a traversal segment: "+p)
		}
	}
	return nil
}
