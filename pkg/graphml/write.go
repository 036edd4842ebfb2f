package graphml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

const (
	nsGraphML      = "http://graphml.graphdrawing.org/xmlns"
	nsXSI          = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = nsGraphML + " http://graphml.graphdrawing.org/xmlns/1.0/graphml.xsd"
)

type attrKey struct {
	id, domain, name, typ string
}

// keys is the fixed attribute vocabulary, in declaration order.
var keys = []attrKey{
	{"d0", "node", "label", "string"},
	{"d1", "node", "type", "string"},
	{"d2", "node", "community", "string"},
	{"d3", "edge", "weight", "double"},
	{"d4", "edge", "label", "string"},
	{"d5", "node", "description", "string"},
	{"d6", "edge", "full_description", "string"},
}

// Marshal encodes nodes and edges as a GraphML document and returns the bytes
// along with the shape of what was actually written (dropped edges are not
// counted).
func Marshal(nodes []Node, edges []Edge) ([]byte, Stats, error) {
	var buf bytes.Buffer
	st, err := Write(&buf, nodes, edges)
	if err != nil {
		return nil, Stats{}, err
	}
	return buf.Bytes(), st, nil
}

// Write encodes nodes and edges as a GraphML document to w.
func Write(w io.Writer, nodes []Node, edges []Edge) (Stats, error) {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return Stats{}, err
	}

	e := &encoder{enc: xml.NewEncoder(w)}
	e.enc.Indent("", "  ")

	root := start("graphml",
		"xmlns", nsGraphML,
		"xmlns:xsi", nsXSI,
		"xsi:schemaLocation", schemaLocation,
	)
	e.open(root)
	for _, k := range keys {
		e.empty(start("key", "id", k.id, "for", k.domain, "attr.name", k.name, "attr.type", k.typ))
	}

	graph := start("graph", "id", "G", "edgedefault", "directed")
	e.open(graph)

	index := make(map[string]string, len(nodes))
	for i, n := range nodes {
		id := strconv.Itoa(i)
		index[n.ID] = id

		e.open(start("node", "id", id))
		e.data("d0", n.ID, true)
		e.value("d1", n.Properties[PropType])
		e.value("d2", n.Properties[PropCommunity])
		e.value("d5", n.Properties[PropDescription])
		e.close("node")
	}

	st := Stats{Nodes: len(nodes)}
	for i, ed := range edges {
		src, okS := index[ed.Start]
		dst, okT := index[ed.End]
		if !okS || !okT {
			continue
		}
		st.Edges++

		e.open(start("edge", "id", "e"+strconv.Itoa(i), "source", src, "target", dst))
		e.value("d3", ed.Properties[PropWeight])
		e.nonEmpty("d4", ed.Properties[PropShortLabel])
		e.nonEmpty("d6", ed.Properties[PropFullDescription])
		e.close("edge")
	}

	e.close(graph.Name.Local)
	e.close(root.Name.Local)
	if e.err == nil {
		e.err = e.enc.Flush()
	}
	if e.err != nil {
		return Stats{}, fmt.Errorf("encode graphml: %w", e.err)
	}
	return st, nil
}

// encoder keeps the first error so the element sequence reads linearly.
type encoder struct {
	enc *xml.Encoder
	err error
}

func start(name string, attrs ...string) xml.StartElement {
	se := xml.StartElement{Name: xml.Name{Local: name}}
	for i := 0; i+1 < len(attrs); i += 2 {
		se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: attrs[i]}, Value: attrs[i+1]})
	}
	return se
}

func (e *encoder) token(t xml.Token) {
	if e.err == nil {
		e.err = e.enc.EncodeToken(t)
	}
}

func (e *encoder) open(se xml.StartElement) { e.token(se) }

func (e *encoder) close(name string) { e.token(xml.EndElement{Name: xml.Name{Local: name}}) }

func (e *encoder) empty(se xml.StartElement) {
	e.open(se)
	e.close(se.Name.Local)
}

func (e *encoder) data(key, text string, ok bool) {
	if !ok {
		return
	}
	e.open(start("data", "key", key))
	e.token(xml.CharData(text))
	e.close("data")
}

func (e *encoder) value(key string, v any) {
	s, ok := formatValue(v)
	e.data(key, s, ok)
}

// nonEmpty writes v unless it is missing, not-a-number or renders empty.
func (e *encoder) nonEmpty(key string, v any) {
	s, ok := formatValue(v)
	e.data(key, s, ok && s != "")
}
