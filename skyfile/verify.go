package skyfile

import (
	"xdao.co/lumen/fetch"
	"xdao.co/lumen/link"
	"xdao.co/lumen/lumerr"
)

// VerifyDownload checks a downloaded base sector against the version 1 link
// that addressed it. The body may arrive without its zero padding; it is
// re-padded before hashing because the committed root is defined over the
// full sector.
func VerifyDownload(l link.Link, body []byte) error {
	v, err := l.Version()
	if err != nil {
		return err
	}
	if v != 1 {
		return lumerr.New(lumerr.KindValidation, "LUM-FILE-201", "only version 1 addresses carry verifiable content")
	}
	if uint64(len(body)) > link.SectorSize {
		return lumerr.New(lumerr.KindChecksum, "LUM-FILE-202", "downloaded body exceeds a sector")
	}

	sector := body
	if len(body) < link.SectorSize {
		sector = make([]byte, link.SectorSize)
		copy(sector, body)
	}
	root, err := link.MerkleRoot(sector)
	if err != nil {
		return err
	}
	if root != l.Target() {
		return lumerr.New(lumerr.KindChecksum, "LUM-FILE-203", "sector root does not match address")
	}
	return nil
}

// DownloadVerifier adapts VerifyDownload into the fetch protocol, so that a
// host serving corrupted or substituted content is demoted instead of
// trusted.
func DownloadVerifier(l link.Link) fetch.Verifier {
	return func(r *fetch.Response) error {
		return VerifyDownload(l, r.Body)
	}
}
