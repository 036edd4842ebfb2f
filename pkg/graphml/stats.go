package graphml

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
)

// ReadStats counts the node and edge elements under the first graph element
// of the document in r. ok is false when the document is malformed or has no
// graph element; no error is ever returned.
func ReadStats(r io.Reader) (st Stats, ok bool) {
	dec := xml.NewDecoder(r)
	depth := 0
	graphDepth := -1
	done := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Stats{}, false
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case done:
			case graphDepth < 0 && t.Name.Local == "graph":
				graphDepth = depth
			case graphDepth >= 0 && t.Name.Local == "node":
				st.Nodes++
			case graphDepth >= 0 && t.Name.Local == "edge":
				st.Edges++
			}
		case xml.EndElement:
			if depth == graphDepth && !done {
				done = true
			}
			depth--
		}
	}

	if graphDepth < 0 {
		return Stats{}, false
	}
	return st, true
}

// StatsFile is [ReadStats] over the file at path. A missing path, a directory
// or an unreadable file is reported as unavailable.
func StatsFile(path string) (Stats, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Stats{}, false
	}
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, false
	}
	defer f.Close()
	return ReadStats(f)
}
