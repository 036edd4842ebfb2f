package graphml

// Stats is the shape of one exported graph.
type Stats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// Node is a generic node record. ID is the entity name; it becomes the label
// attribute and is how edges refer to the node.
type Node struct {
	ID         string
	Properties map[string]any
}

// Edge is a generic directed edge record between two node IDs.
type Edge struct {
	Start      string
	End        string
	Properties map[string]any
}

// Property names read from Node.Properties and Edge.Properties.
const (
	PropType            = "type"
	PropCommunity       = "community"
	PropDescription     = "description"
	PropWeight          = "weight"
	PropShortLabel      = "short_label"
	PropFullDescription = "full_description"
)
