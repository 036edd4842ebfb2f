package graphml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Document is a GraphML file read back into memory. Attribute values are
// resolved through the file's own key declarations, so any key ids work as
// long as the attribute names match.
type Document struct {
	Nodes []DocNode
	Edges []DocEdge
}

// DocNode is a node as stored in a GraphML file.
type DocNode struct {
	ID          string
	Label       string
	Type        string
	Community   string
	Description string
}

// DocEdge is an edge as stored in a GraphML file.
type DocEdge struct {
	ID              string
	Source          string
	Target          string
	Weight          float64
	HasWeight       bool
	Label           string
	FullDescription string
}

// Stats returns the node and edge counts of the document.
func (d *Document) Stats() Stats {
	return Stats{Nodes: len(d.Nodes), Edges: len(d.Edges)}
}

type xmlDoc struct {
	Keys   []xmlKey   `xml:"key"`
	Graphs []xmlGraph `xml:"graph"`
}

type xmlKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
}

type xmlGraph struct {
	Nodes []xmlElem `xml:"node"`
	Edges []xmlElem `xml:"edge"`
}

type xmlElem struct {
	ID     string    `xml:"id,attr"`
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Data   []xmlData `xml:"data"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// Read parses a GraphML document. Only the first graph is read.
func Read(r io.Reader) (*Document, error) {
	var raw xmlDoc
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode graphml: %w", err)
	}
	if len(raw.Graphs) == 0 {
		return nil, fmt.Errorf("decode graphml: no graph element")
	}

	names := make(map[string]string, len(raw.Keys)) // "domain/id" → attribute name
	for _, k := range raw.Keys {
		names[k.For+"/"+k.ID] = k.Name
	}
	attrs := func(domain string, data []xmlData) map[string]string {
		out := make(map[string]string, len(data))
		for _, d := range data {
			name, ok := names[domain+"/"+d.Key]
			if !ok {
				name, ok = names["all/"+d.Key]
			}
			if ok {
				out[name] = d.Value
			}
		}
		return out
	}

	g := raw.Graphs[0]
	doc := &Document{
		Nodes: make([]DocNode, 0, len(g.Nodes)),
		Edges: make([]DocEdge, 0, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		a := attrs("node", n.Data)
		doc.Nodes = append(doc.Nodes, DocNode{
			ID:          n.ID,
			Label:       a["label"],
			Type:        a[PropType],
			Community:   a[PropCommunity],
			Description: a[PropDescription],
		})
	}
	for _, e := range g.Edges {
		a := attrs("edge", e.Data)
		de := DocEdge{
			ID:              e.ID,
			Source:          e.Source,
			Target:          e.Target,
			Label:           a["label"],
			FullDescription: a[PropFullDescription],
		}
		if w, err := strconv.ParseFloat(a[PropWeight], 64); err == nil {
			de.Weight, de.HasWeight = w, true
		}
		doc.Edges = append(doc.Edges, de)
	}
	return doc, nil
}

// ReadFile parses the GraphML file at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
