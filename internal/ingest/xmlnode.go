package ingest

import "encoding/xml"

// xmlNode is a generic recursive XML tree node. encoding/xml's ",any" tags
// let one struct decode an arbitrarily-shaped document, which is what an
// AST-shaped dump (heterogeneous node kinds, unknown ones simply descended
// into) needs — a typed struct per element kind would require a decoder
// rewrite every time the elaborator adds a node type.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []xmlNode  `xml:",any"`
}

// Attr returns the value of the named attribute and whether it was present.
func (n *xmlNode) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Children returns the direct child elements named tag, in document order.
func (n *xmlNode) Children(tag string) []xmlNode {
	var out []xmlNode
	for _, c := range n.Nodes {
		if c.XMLName.Local == tag {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first direct child element named tag, if any.
func (n *xmlNode) Child(tag string) (*xmlNode, bool) {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == tag {
			return &n.Nodes[i], true
		}
	}
	return nil, false
}
