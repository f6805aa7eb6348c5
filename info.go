package riffwave

import (
	"errors"
	"fmt"
	"io"
)

var (
	// See http://bwfmetaedit.sourceforge.net/listinfo.html
	markerIART    = [4]byte{'I', 'A', 'R', 'T'}
	markerISFT    = [4]byte{'I', 'S', 'F', 'T'}
	markerICRD    = [4]byte{'I', 'C', 'R', 'D'}
	markerICOP    = [4]byte{'I', 'C', 'O', 'P'}
	markerIARL    = [4]byte{'I', 'A', 'R', 'L'}
	markerINAM    = [4]byte{'I', 'N', 'A', 'M'}
	markerIENG    = [4]byte{'I', 'E', 'N', 'G'}
	markerIGNR    = [4]byte{'I', 'G', 'N', 'R'}
	markerIPRD    = [4]byte{'I', 'P', 'R', 'D'}
	markerISRC    = [4]byte{'I', 'S', 'R', 'C'}
	markerISBJ    = [4]byte{'I', 'S', 'B', 'J'}
	markerICMT    = [4]byte{'I', 'C', 'M', 'T'}
	markerITRK    = [4]byte{'I', 'T', 'R', 'K'}
	markerITRKBug = [4]byte{'i', 't', 'r', 'k'}
	markerITCH    = [4]byte{'I', 'T', 'C', 'H'}
	markerIKEY    = [4]byte{'I', 'K', 'E', 'Y'}
	markerIMED    = [4]byte{'I', 'M', 'E', 'D'}
)

// Info holds the text tags of a LIST/INFO chunk.
type Info struct {
	Artist       string
	Comments     string
	Copyright    string
	CreationDate string
	Engineer     string
	Technician   string
	Genre        string
	Keywords     string
	Medium       string
	Title        string
	Product      string
	Subject      string
	Software     string
	Source       string
	Location     string
	TrackNbr     string
}

// Empty reports whether no tag is set.
func (i *Info) Empty() bool {
	return i == nil || *i == Info{}
}

// listType returns the 4-byte type of a LIST chunk, or a zero value.
func listType(ch *Chunk) [4]byte {
	var lt [4]byte

	if ch == nil || !sameID(ch.ID, CIDList) || len(ch.Data) < 4 {
		return lt
	}

	copy(lt[:], ch.Data[:4])

	return lt
}

// decodeInfoList reads the entries of a LIST/INFO chunk into info.
// Unknown entries are skipped.
func decodeInfoList(ch *Chunk, info *Info) error {
	if ch == nil || info == nil {
		return errors.New("nil chunk or info")
	}

	if listType(ch) != CIDInfo {
		return nil
	}

	it := newChunkIterator(ch.Data[4:], ch.Offset+4)

	for {
		entry, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read INFO entry: %w", err)
		}

		value := nullTermStr(entry.Data)

		switch entry.ID {
		case markerIARL:
			info.Location = value
		case markerIART:
			info.Artist = value
		case markerISFT:
			info.Software = value
		case markerICRD:
			info.CreationDate = value
		case markerICOP:
			info.Copyright = value
		case markerINAM:
			info.Title = value
		case markerIENG:
			info.Engineer = value
		case markerIGNR:
			info.Genre = value
		case markerIPRD:
			info.Product = value
		case markerISRC:
			info.Source = value
		case markerISBJ:
			info.Subject = value
		case markerICMT:
			info.Comments = value
		case markerITRK, markerITRKBug:
			info.TrackNbr = value
		case markerITCH:
			info.Technician = value
		case markerIKEY:
			info.Keywords = value
		case markerIMED:
			info.Medium = value
		}
	}
}
