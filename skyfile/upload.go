package skyfile

import (
	"bytes"
	"encoding/json"

	"xdao.co/lumen/codec"
	"xdao.co/lumen/link"
	"xdao.co/lumen/lumerr"
)

// UploadHeaderSize is the fixed size of the upload-request header.
const UploadHeaderSize = 92

// uploadProtocolVersion rides inside the upload header.
const uploadProtocolVersion = "1.0"

// Metadata is the JSON metadata stored alongside file content in a base
// sector.
type Metadata struct {
	Filename string `json:"filename"`
	Length   uint64 `json:"length"`
}

// EncodeUploadHeader renders the 92-byte upload-request header for a link:
// two length-prefixed strings (protocol version, then the link) with zero
// padding to the fixed size.
func EncodeUploadHeader(l link.Link) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(codec.EncodePrefixedBytes([]byte(uploadProtocolVersion)))
	buf.Write(codec.EncodePrefixedBytes([]byte(l.String())))
	if buf.Len() > UploadHeaderSize {
		return nil, lumerr.New(lumerr.KindInternal, "LUM-FILE-101", "upload header overflows its fixed size")
	}
	out := make([]byte, UploadHeaderSize)
	copy(out, buf.Bytes())
	return out, nil
}

// DecodeUploadHeader parses a 92-byte upload-request header, returning the
// protocol version and the embedded link. Nonzero padding is rejected so
// that trailing garbage cannot ride along unnoticed.
func DecodeUploadHeader(b []byte) (string, link.Link, error) {
	if len(b) != UploadHeaderSize {
		return "", link.Link{}, lumerr.New(lumerr.KindValidation, "LUM-FILE-102", "upload header must be exactly 92 bytes")
	}
	version, rest, err := codec.DecodePrefixedBytes(b)
	if err != nil {
		return "", link.Link{}, lumerr.Wrap(lumerr.KindValidation, "LUM-FILE-103", "upload header version field", err)
	}
	linkStr, rest, err := codec.DecodePrefixedBytes(rest)
	if err != nil {
		return "", link.Link{}, lumerr.Wrap(lumerr.KindValidation, "LUM-FILE-104", "upload header link field", err)
	}
	for _, c := range rest {
		if c != 0 {
			return "", link.Link{}, lumerr.New(lumerr.KindValidation, "LUM-FILE-105", "upload header padding is not zero")
		}
	}
	l, err := link.FromString(string(linkStr))
	if err != nil {
		return "", link.Link{}, err
	}
	return string(version), l, nil
}

// BuildBaseSector assembles a base sector for a small file: layout header,
// metadata JSON, then the file bytes, zero padded to the full sector. It
// returns the padded sector and the content-derived link that addresses it.
//
// The link commits to the sector's Merkle root and to the exact length of
// the meaningful prefix, so a downloader can verify both without trusting
// the serving host.
func BuildBaseSector(filename string, fileData []byte) ([]byte, link.Link, error) {
	if err := link.ValidatePath(filename); err != nil {
		return nil, link.Link{}, err
	}
	md, err := json.Marshal(Metadata{Filename: filename, Length: uint64(len(fileData))})
	if err != nil {
		return nil, link.Link{}, lumerr.Wrap(lumerr.KindInternal, "LUM-FILE-106", "encoding metadata", err)
	}

	dataSize := uint64(LayoutSize) + uint64(len(md)) + uint64(len(fileData))
	if dataSize > link.SectorSize {
		return nil, link.Link{}, lumerr.New(lumerr.KindValidation, "LUM-FILE-107", "content does not fit in a base sector")
	}

	layout := Layout{
		Version:      LayoutVersion,
		Filesize:     uint64(len(fileData)),
		MetadataSize: uint64(len(md)),
		CipherType:   cipherTypePlaintext,
	}
	sector := make([]byte, link.SectorSize)
	n := copy(sector, layout.Encode())
	n += copy(sector[n:], md)
	copy(sector[n:], fileData)

	root, err := link.MerkleRoot(sector)
	if err != nil {
		return nil, link.Link{}, err
	}
	l, err := link.NewV1(root, dataSize)
	if err != nil {
		return nil, link.Link{}, err
	}
	return sector, l, nil
}

// ParseBaseSector slices a base sector back into its layout, metadata, and
// file content. The caller is expected to have verified the sector against
// its link first.
func ParseBaseSector(sector []byte) (Layout, Metadata, []byte, error) {
	if len(sector) < LayoutSize {
		return Layout{}, Metadata{}, nil, lumerr.New(lumerr.KindValidation, "LUM-FILE-108", "sector shorter than layout header")
	}
	layout, err := DecodeLayout(sector[:LayoutSize])
	if err != nil {
		return Layout{}, Metadata{}, nil, err
	}

	mdEnd := uint64(LayoutSize) + layout.MetadataSize
	fileEnd := mdEnd + layout.Filesize
	if mdEnd < uint64(LayoutSize) || fileEnd < mdEnd || fileEnd > uint64(len(sector)) {
		return Layout{}, Metadata{}, nil, lumerr.New(lumerr.KindValidation, "LUM-FILE-109", "layout sizes exceed sector bounds")
	}

	var md Metadata
	if err := json.Unmarshal(sector[LayoutSize:mdEnd], &md); err != nil {
		return Layout{}, Metadata{}, nil, lumerr.Wrap(lumerr.KindValidation, "LUM-FILE-110", "malformed sector metadata", err)
	}
	return layout, md, sector[mdEnd:fileEnd], nil
}
